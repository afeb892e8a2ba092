// Package store provides file-based persistence for the identity and
// sync-settings records.
//
// It contains concrete implementations of the domain storage
// interfaces, serialising data as JSON on disk. All methods are
// concurrency-safe via internal locking, and writes go through a
// temp-file-then-rename step so a failed save never clobbers the
// previously persisted record. Stored files live under the user's
// configured home directory.
//
// The package includes stores for:
//   - Identity keys, encrypted at rest (IdentityFileStore)
//   - Sync settings (SettingsFileStore)
package store
