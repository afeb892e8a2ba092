package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// BearerToken is the credential presented to the remote API. It is
// derived from the signing public key, never stored as ground truth.
type BearerToken string

// String returns the string form of the token.
func (t BearerToken) String() string { return string(t) }
