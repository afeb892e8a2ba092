package domain

import "errors"

// Error taxonomy shared across the core. Callers decide user-facing
// presentation; the core never swallows these.
var (
	// ErrCryptoUnavailable means the entropy source failed. Fatal, no retry.
	ErrCryptoUnavailable = errors.New("secure random source unavailable")

	// ErrMalformedKeyData means an import bundle failed validation.
	// The prior identity is untouched; the caller may retry with
	// corrected input.
	ErrMalformedKeyData = errors.New("malformed key data")

	// ErrPersistFailure means durable storage rejected a write. The
	// in-memory state was not advanced.
	ErrPersistFailure = errors.New("persist failed")

	// ErrSnapshotFetch means an activity snapshot fetch failed. The
	// view degrades to empty rather than presenting stale data as fresh.
	ErrSnapshotFetch = errors.New("activity snapshot fetch failed")

	// ErrPushStream means the live insert stream failed. The
	// last-known-good view is retained.
	ErrPushStream = errors.New("push stream error")

	// ErrNoIdentity means no identity has been created or unlocked yet.
	ErrNoIdentity = errors.New("no identity")

	// ErrRegenerateIntent means a regenerate confirmation carried an
	// unknown, already used, or expired intent.
	ErrRegenerateIntent = errors.New("invalid regenerate intent")
)
