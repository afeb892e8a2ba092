package types

import "time"

// RegenerateIntent is the first half of the two-phase key regeneration.
// Regeneration is destructive and irreversible, so the mutation only
// happens when the caller hands the intent back for confirmation.
type RegenerateIntent struct {
	ID        string    `json:"id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the intent is no longer confirmable at now.
func (i RegenerateIntent) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
