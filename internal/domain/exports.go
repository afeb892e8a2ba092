package domain

import (
	interfaces "vaultsync/internal/domain/interfaces"
	types "vaultsync/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint       = types.Fingerprint
	BearerToken       = types.BearerToken
	Identity          = types.Identity
	SerializedKeyPair = types.SerializedKeyPair
	KeyExportBundle   = types.KeyExportBundle
	SyncSettings      = types.SyncSettings
	SettingsPatch     = types.SettingsPatch
	TimelineEvent     = types.TimelineEvent
	RegenerateIntent  = types.RegenerateIntent
	X25519Public      = types.X25519Public
	X25519Private     = types.X25519Private
	Ed25519Public     = types.Ed25519Public
	Ed25519Private    = types.Ed25519Private
)

// Algorithm identifiers re-exported alongside the bundle types.
const (
	AlgorithmX25519  = types.AlgorithmX25519
	AlgorithmEd25519 = types.AlgorithmEd25519
)

// DefaultSyncSettings re-exports the settings defaults.
func DefaultSyncSettings() SyncSettings { return types.DefaultSyncSettings() }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	SettingsService = interfaces.SettingsService
	IdentityStore   = interfaces.IdentityStore
	SettingsStore   = interfaces.SettingsStore
	ActivityClient  = interfaces.ActivityClient
	PushStream      = interfaces.PushStream
	RecordSink      = interfaces.RecordSink
)
