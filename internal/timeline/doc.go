// Package timeline merges a bounded polled activity snapshot with an
// unbounded live insert stream into one deduplicated, ordered,
// length-capped view.
//
// The two sources are independently timed and untrusted: pushes may
// arrive in any order relative to snapshot fetches and may duplicate
// events already present. The reconciler keys uniqueness on event ID,
// keeps the view in non-increasing event-timestamp order, and always
// reflects the most recently issued snapshot fetch, discarding results
// of superseded ones.
package timeline
