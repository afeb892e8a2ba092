package interfaces

import domaintypes "vaultsync/internal/domain/types"

// IdentityStore persists the device's long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	HasIdentity() (bool, error)
}

// SettingsStore persists the sync settings record. Writes are atomic:
// a failed Save must leave the previously persisted record intact.
type SettingsStore interface {
	SaveSettings(s domaintypes.SyncSettings) error
	LoadSettings() (domaintypes.SyncSettings, bool, error)
}
