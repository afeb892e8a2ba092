package crypto

import (
	"crypto/sha256"
	"encoding/base64"

	"vaultsync/internal/domain"
)

// tokenPrefix versions the token format so the server can reject
// tokens minted under a future derivation change.
const tokenPrefix = "vs1."

// DeriveBearerToken derives the API credential from the signing public
// key. The derivation is deterministic: the token is stable for the
// lifetime of the signing identity and changes only when the signing
// key is imported or regenerated.
func DeriveBearerToken(pub domain.Ed25519Public) domain.BearerToken {
	sum := sha256.Sum256(pub.Slice())
	return domain.BearerToken(tokenPrefix + base64.RawURLEncoding.EncodeToString(sum[:]))
}
