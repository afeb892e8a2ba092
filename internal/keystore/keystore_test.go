package keystore_test

import (
	"errors"
	"strings"
	"testing"

	"vaultsync/internal/crypto"
	"vaultsync/internal/domain"
	"vaultsync/internal/keystore"
)

func TestSerialize_Roundtrip(t *testing.T) {
	id, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := keystore.Deserialize(keystore.Serialize(id))
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if got.XPub != id.XPub || got.EdPub != id.EdPub {
		t.Fatal("public keys differ after roundtrip")
	}

	// Same signing behavior.
	msg := []byte("roundtrip probe")
	sig := crypto.SignEd25519(got.EdPriv, msg)
	if !crypto.VerifyEd25519(id.EdPub, msg, sig) {
		t.Fatal("signature by roundtripped key does not verify against original public key")
	}

	// Same key-agreement behavior.
	peer, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate peer: %v", err)
	}
	a, err := crypto.DH(id.XPriv, peer.XPub)
	if err != nil {
		t.Fatalf("dh original: %v", err)
	}
	b, err := crypto.DH(got.XPriv, peer.XPub)
	if err != nil {
		t.Fatalf("dh roundtripped: %v", err)
	}
	if a != b {
		t.Fatal("shared secrets differ after roundtrip")
	}
}

func TestDeserialize_Rejects(t *testing.T) {
	id, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	good := keystore.Serialize(id)

	otherID, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate other: %v", err)
	}
	other := keystore.Serialize(otherID)

	cases := []struct {
		name   string
		mutate func(*domain.KeyExportBundle)
	}{
		{"missing x25519 private", func(b *domain.KeyExportBundle) { b.X25519.PrivateKey = "" }},
		{"missing ed25519 public", func(b *domain.KeyExportBundle) { b.Ed25519.PublicKey = "" }},
		{"unknown algorithm", func(b *domain.KeyExportBundle) { b.X25519.Algorithm = "p256" }},
		{"swapped algorithms", func(b *domain.KeyExportBundle) {
			b.X25519.Algorithm, b.Ed25519.Algorithm = b.Ed25519.Algorithm, b.X25519.Algorithm
		}},
		{"bad base64", func(b *domain.KeyExportBundle) { b.Ed25519.PrivateKey = "%%%not-base64%%%" }},
		{"wrong key length", func(b *domain.KeyExportBundle) { b.X25519.PrivateKey = "c2hvcnQ=" }},
		{"mismatched ed25519 halves", func(b *domain.KeyExportBundle) {
			b.Ed25519.PublicKey = other.Ed25519.PublicKey
		}},
		{"mismatched x25519 halves", func(b *domain.KeyExportBundle) {
			b.X25519.PublicKey = other.X25519.PublicKey
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bundle := good
			tc.mutate(&bundle)
			if _, err := keystore.Deserialize(bundle); !errors.Is(err, domain.ErrMalformedKeyData) {
				t.Fatalf("want ErrMalformedKeyData, got %v", err)
			}
		})
	}
}

func TestMask_FixedWidthAndElided(t *testing.T) {
	id, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	masked := keystore.Mask(id.EdPriv.Slice())
	if !strings.Contains(masked, "...") {
		t.Fatalf("mask %q has no elision", masked)
	}
	if got, want := len(masked), 6+3+4; got != want {
		t.Fatalf("mask width = %d, want %d", got, want)
	}

	// Same-length inputs always mask to the same width.
	other, err := keystore.Generate()
	if err != nil {
		t.Fatalf("generate other: %v", err)
	}
	if len(keystore.Mask(other.EdPriv.Slice())) != len(masked) {
		t.Fatal("mask width varies across keys of equal length")
	}
}
