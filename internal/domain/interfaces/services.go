package interfaces

import (
	domaintypes "vaultsync/internal/domain/types"
)

// IdentityService owns the single current Identity and its lifecycle:
// create, unlock, export, import, two-phase regenerate, and derivation
// of the bearer token presented to the remote API.
//
// Import and regenerate are serialized against each other; a failed
// attempt leaves the current Identity untouched.
type IdentityService interface {
	Create(passphrase string) (domaintypes.Identity, domaintypes.Fingerprint, error)
	Unlock(passphrase string) error
	Current() (domaintypes.Identity, error)

	ExportBundle() (domaintypes.KeyExportBundle, error)
	// ImportBundle atomically replaces the current Identity. The
	// returned flag tells the caller that state derived from the old
	// identity (cached bearer token, decrypted views) is now stale.
	ImportBundle(bundle domaintypes.KeyExportBundle) (reloadRequired bool, err error)

	RequestRegenerate() (domaintypes.RegenerateIntent, error)
	ConfirmRegenerate(intent domaintypes.RegenerateIntent) (reloadRequired bool, err error)

	BearerToken() (domaintypes.BearerToken, error)
	MaskedSigningKey() (string, error)
	MaskedEncryptionKey() (string, error)
}

// SettingsService loads and saves the process-wide sync settings.
type SettingsService interface {
	Load() (domaintypes.SyncSettings, error)
	Save(patch domaintypes.SettingsPatch) (domaintypes.SyncSettings, error)
}
