// Package identity manages the lifecycle of the local identity: create,
// unlock, export, import, two-phase regenerate, and derivation of the
// bearer token presented to the remote API.
//
// It holds the single current identity and serializes every mutation
// through one mutex, so concurrent import/regenerate calls can never
// interleave and leave mismatched key halves. A failed import or
// regenerate leaves the current identity untouched.
package identity
