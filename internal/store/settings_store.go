package store

import (
	"path/filepath"
	"sync"

	"vaultsync/internal/domain"
)

const settingsFile = "settings.json"

// SettingsFileStore persists the sync settings record to disk.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// SaveSettings writes the full record. The write is atomic; a failure
// leaves the previously persisted record readable.
func (s *SettingsFileStore) SaveSettings(settings domain.SyncSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, settingsFile), settings, 0o600)
}

// LoadSettings reads the persisted record. The boolean reports whether
// a record existed.
func (s *SettingsFileStore) LoadSettings() (domain.SyncSettings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings domain.SyncSettings
	ok, err := readJSON(filepath.Join(s.dir, settingsFile), &settings)
	if err != nil {
		return domain.SyncSettings{}, false, err
	}
	return settings, ok, nil
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
