package crypto_test

import (
	"strings"
	"testing"

	"vaultsync/internal/crypto"
)

func TestDeriveBearerToken_Deterministic(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}

	a := crypto.DeriveBearerToken(pub)
	b := crypto.DeriveBearerToken(pub)
	if a != b {
		t.Fatalf("token not stable: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a.String(), "vs1.") {
		t.Fatalf("token %q missing version prefix", a)
	}

	_, otherPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	if crypto.DeriveBearerToken(otherPub) == a {
		t.Fatal("distinct signing keys derived the same token")
	}
}

func TestDH_Commutes(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	bPriv, bPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}

	ab, err := crypto.DH(aPriv, bPub)
	if err != nil {
		t.Fatalf("DH: %v", err)
	}
	ba, err := crypto.DH(bPriv, aPub)
	if err != nil {
		t.Fatalf("DH: %v", err)
	}
	if ab != ba {
		t.Fatal("shared secrets differ")
	}
}

func TestPublicFromX25519_MatchesGenerated(t *testing.T) {
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	derived, err := crypto.PublicFromX25519(priv)
	if err != nil {
		t.Fatalf("PublicFromX25519: %v", err)
	}
	if derived != pub {
		t.Fatal("derived public key differs from generated one")
	}
}

func TestSignVerify(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	msg := []byte("signed payload")
	sig := crypto.SignEd25519(priv, msg)
	if !crypto.VerifyEd25519(pub, msg, sig) {
		t.Fatal("valid signature rejected")
	}
	if crypto.VerifyEd25519(pub, []byte("other payload"), sig) {
		t.Fatal("signature verified against the wrong message")
	}
}

func TestMaskKey_ShortInputNotElided(t *testing.T) {
	masked := crypto.MaskKey([]byte{1, 2, 3})
	if strings.Contains(masked, "...") {
		t.Fatalf("short input should not be elided, got %q", masked)
	}
}
