package keystore

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"vaultsync/internal/crypto"
	"vaultsync/internal/domain"
	"vaultsync/internal/util/memzero"
)

// Generate produces a fresh Identity: a new X25519 pair and a new
// Ed25519 pair from the system entropy source.
func Generate() (domain.Identity, error) {
	xPriv, xPub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Identity{}, err
	}
	edPriv, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{
		XPub:   xPub,
		XPriv:  xPriv,
		EdPub:  edPub,
		EdPriv: edPriv,
	}, nil
}

// Serialize encodes both key pairs, algorithm-tagged, into a bundle
// suitable for clipboard transfer and later re-import.
func Serialize(id domain.Identity) domain.KeyExportBundle {
	return domain.KeyExportBundle{
		X25519: domain.SerializedKeyPair{
			Algorithm:  domain.AlgorithmX25519,
			PublicKey:  base64.StdEncoding.EncodeToString(id.XPub.Slice()),
			PrivateKey: base64.StdEncoding.EncodeToString(id.XPriv.Slice()),
		},
		Ed25519: domain.SerializedKeyPair{
			Algorithm:  domain.AlgorithmEd25519,
			PublicKey:  base64.StdEncoding.EncodeToString(id.EdPub.Slice()),
			PrivateKey: base64.StdEncoding.EncodeToString(id.EdPriv.Slice()),
		},
	}
}

// Deserialize validates and decodes a bundle back into an Identity.
//
// Validation runs before anything is constructed: missing components,
// unrecognized algorithms, undecodable key material, wrong key lengths
// and internally inconsistent pairs all fail with
// domain.ErrMalformedKeyData and produce no Identity at all.
func Deserialize(b domain.KeyExportBundle) (domain.Identity, error) {
	xPrivRaw, xPubRaw, err := decodePair(b.X25519, domain.AlgorithmX25519, 32, 32)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(xPrivRaw)

	edPrivRaw, edPubRaw, err := decodePair(b.Ed25519, domain.AlgorithmEd25519, ed25519.PrivateKeySize, ed25519.PublicKeySize)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(edPrivRaw)

	// An Ed25519 private key embeds its public half; the two must agree.
	seedPub := ed25519.PrivateKey(edPrivRaw).Public().(ed25519.PublicKey)
	if !bytes.Equal(seedPub, edPubRaw) {
		return domain.Identity{}, fmt.Errorf("%w: ed25519 private/public mismatch", domain.ErrMalformedKeyData)
	}

	var id domain.Identity
	copy(id.XPriv[:], xPrivRaw)
	copy(id.XPub[:], xPubRaw)
	copy(id.EdPriv[:], edPrivRaw)
	copy(id.EdPub[:], edPubRaw)

	// The X25519 public key must be the basepoint multiple of the scalar.
	derived, err := crypto.PublicFromX25519(id.XPriv)
	if err != nil || derived != id.XPub {
		return domain.Identity{}, fmt.Errorf("%w: x25519 private/public mismatch", domain.ErrMalformedKeyData)
	}
	return id, nil
}

// Mask returns the fixed-width display form of private key material.
func Mask(material []byte) string {
	return crypto.MaskKey(material)
}

func decodePair(kp domain.SerializedKeyPair, algorithm string, privLen, pubLen int) (priv, pub []byte, err error) {
	if kp.PublicKey == "" || kp.PrivateKey == "" {
		return nil, nil, fmt.Errorf("%w: missing %s component", domain.ErrMalformedKeyData, algorithm)
	}
	if kp.Algorithm != algorithm {
		return nil, nil, fmt.Errorf("%w: unrecognized algorithm %q", domain.ErrMalformedKeyData, kp.Algorithm)
	}
	priv, err = base64.StdEncoding.DecodeString(kp.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s private key: %v", domain.ErrMalformedKeyData, algorithm, err)
	}
	pub, err = base64.StdEncoding.DecodeString(kp.PublicKey)
	if err != nil {
		memzero.Zero(priv)
		return nil, nil, fmt.Errorf("%w: %s public key: %v", domain.ErrMalformedKeyData, algorithm, err)
	}
	if len(priv) != privLen || len(pub) != pubLen {
		memzero.Zero(priv)
		return nil, nil, fmt.Errorf("%w: %s key length", domain.ErrMalformedKeyData, algorithm)
	}
	return priv, pub, nil
}
