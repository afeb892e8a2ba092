// Package api talks to the remote personal-data API.
//
// The HTTP client fetches bounded activity snapshots and uploads
// ingested records; the websocket stream delivers individual insert
// notifications. Every request carries the bearer token as the sole
// credential; private key material never crosses this boundary.
package api
