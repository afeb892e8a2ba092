// Package settings loads and saves the process-wide sync settings.
//
// Load is idempotent and falls back to defaults when nothing has been
// persisted. Save merges a partial patch into the current record and
// persists the full result; the in-memory record only advances after
// the persist succeeds, so a failed save leaves the previous record
// observable.
package settings
