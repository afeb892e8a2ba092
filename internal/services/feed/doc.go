// Package feed drives the live activity view: it issues snapshot
// fetches against the remote API, subscribes to the push stream, and
// reconciles both through the timeline reconciler.
//
// A failed snapshot fetch empties the view; push-stream failures are
// reported but leave the last-known-good view in place.
package feed
