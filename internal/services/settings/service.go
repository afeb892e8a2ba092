package settings

import (
	"fmt"
	"sync"

	"vaultsync/internal/domain"
)

// Service caches the sync settings record over a backing store.
type Service struct {
	store domain.SettingsStore

	mu      sync.Mutex
	current domain.SyncSettings
	loaded  bool
}

// New returns a settings service backed by the given store.
func New(store domain.SettingsStore) *Service {
	return &Service{store: store}
}

// Load returns the current settings, reading the persisted record on
// first call and falling back to defaults when none exists.
func (s *Service) Load() (domain.SyncSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current, nil
	}
	persisted, ok, err := s.store.LoadSettings()
	if err != nil {
		return domain.SyncSettings{}, err
	}
	if !ok {
		persisted = domain.DefaultSyncSettings()
	}
	s.current = persisted
	s.loaded = true
	return s.current, nil
}

// Save merges the patch into the current record, persists the full
// result, and returns it. The in-memory record is only updated after
// the persist succeeds.
func (s *Service) Save(patch domain.SettingsPatch) (domain.SyncSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.current
	if !s.loaded {
		persisted, ok, err := s.store.LoadSettings()
		if err != nil {
			return domain.SyncSettings{}, err
		}
		if !ok {
			persisted = domain.DefaultSyncSettings()
		}
		base = persisted
		s.current = persisted
		s.loaded = true
	}

	merged := patch.Apply(base)
	if err := s.store.SaveSettings(merged); err != nil {
		return domain.SyncSettings{}, fmt.Errorf("%w: %v", domain.ErrPersistFailure, err)
	}
	s.current = merged
	return merged, nil
}

// Compile-time assertion that Service implements domain.SettingsService.
var _ domain.SettingsService = (*Service)(nil)
