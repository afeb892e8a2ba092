package types

// Key algorithm identifiers carried inside export bundles so that a
// future format change is detectable on import.
const (
	AlgorithmX25519  = "x25519"
	AlgorithmEd25519 = "ed25519"
)

// Identity holds the device's long-term X25519 and Ed25519 keys.
//
// Both pairs are always present together; an Identity is only ever
// constructed whole, never half-initialized.
type Identity struct {
	XPub   X25519Public   `json:"xpub"`
	XPriv  X25519Private  `json:"xpriv"`
	EdPub  Ed25519Public  `json:"edpub"`
	EdPriv Ed25519Private `json:"edpriv"`
}

// SerializedKeyPair is the transferable form of a single key pair.
// Key bytes are base64 (standard, padded).
type SerializedKeyPair struct {
	Algorithm  string `json:"algorithm"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// KeyExportBundle is a clipboard-safe snapshot of an Identity, suitable
// for backup and later re-import on another device.
type KeyExportBundle struct {
	X25519  SerializedKeyPair `json:"x25519"`
	Ed25519 SerializedKeyPair `json:"ed25519"`
}
