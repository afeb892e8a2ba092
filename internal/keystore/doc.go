// Package keystore generates, serializes and validates the device
// identity: one X25519 key-agreement pair and one Ed25519 signing pair.
//
// Serialize and Deserialize round-trip losslessly through
// domain.KeyExportBundle; Deserialize validates the whole bundle before
// constructing anything, so a half-built Identity can never escape.
package keystore
