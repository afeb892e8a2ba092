// Package crypto exposes the minimal primitives the identity core
// orchestrates. It never reimplements primitives; generation, signing
// and key agreement come from crypto/ed25519 and golang.org/x/crypto.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - Short public-key fingerprints for display (Fingerprint)
//   - Deterministic bearer token derivation from the signing public key
//     (DeriveBearerToken)
//   - Fixed-width masking of private key material for display (MaskKey)
//
// All functions return fixed-size array types defined in internal/domain
// to avoid accidental reallocations.
package crypto
