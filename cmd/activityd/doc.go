// Package main runs the in-memory activity hub used by vaultsync during
// development and tests. It stores appended activity events, serves
// bounded snapshots, and broadcasts every insert to connected websocket
// subscribers.
//
// HTTP API
//
//	GET /v1/activity?limit=N
//	    Return up to N events, most recent first (default 10).
//
//	POST /v1/activity
//	    Append one event. Missing ID and timestamps are filled in.
//	    The event is broadcast to all stream subscribers.
//
//	POST /v1/records
//	    Append a batch of ingested records, each broadcast like an insert.
//
//	GET /v1/activity/stream
//	    Upgrade to a websocket; every subsequent insert is delivered as
//	    one JSON frame.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Requests must carry a bearer token; the hub only checks presence,
//     not validity, since it is a development stand-in.
//   - The default listen address is :8080.
package main
