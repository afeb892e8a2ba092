package crypto

import "encoding/base64"

const (
	maskHead = 6
	maskTail = 4
)

// MaskKey produces a fixed-width, non-reversible display form of key
// material: the first 6 and last 4 characters of its base64url form
// with the middle elided. Display only; never an input to
// authentication or re-derivation.
func MaskKey(material []byte) string {
	enc := base64.RawURLEncoding.EncodeToString(material)
	if len(enc) <= maskHead+maskTail {
		return enc
	}
	return enc[:maskHead] + "..." + enc[len(enc)-maskTail:]
}
