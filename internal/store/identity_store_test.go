package store_test

import (
	"errors"
	"testing"

	"vaultsync/internal/domain"
	"vaultsync/internal/store"
)

func TestIdentity_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	id := domain.Identity{
		XPub:   domain.X25519Public{1},
		XPriv:  domain.X25519Private{2},
		EdPub:  domain.Ed25519Public{3},
		EdPriv: domain.Ed25519Private{4},
	}

	if err := ids.SaveIdentity(pass, id); err != nil {
		t.Fatalf("save identity: %v", err)
	}

	got, err := ids.LoadIdentity(pass)
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if got.XPub != id.XPub || got.EdPub != id.EdPub {
		t.Fatalf("mismatch after load")
	}
}

func TestIdentity_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ids domain.IdentityStore = store.NewIdentityFileStore(home)

	id := domain.Identity{XPub: domain.X25519Public{1}, XPriv: domain.X25519Private{2}}

	if err := ids.SaveIdentity("correct", id); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if _, err := ids.LoadIdentity("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestIdentity_MissingFile_IsNoIdentity(t *testing.T) {
	var ids domain.IdentityStore = store.NewIdentityFileStore(t.TempDir())

	if _, err := ids.LoadIdentity("any"); !errors.Is(err, domain.ErrNoIdentity) {
		t.Fatalf("want ErrNoIdentity, got %v", err)
	}

	ok, err := ids.HasIdentity()
	if err != nil {
		t.Fatalf("has identity: %v", err)
	}
	if ok {
		t.Fatal("HasIdentity true without a saved identity")
	}
}

func TestIdentity_Has_AfterSave(t *testing.T) {
	var ids domain.IdentityStore = store.NewIdentityFileStore(t.TempDir())

	if err := ids.SaveIdentity("pass", domain.Identity{}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	ok, err := ids.HasIdentity()
	if err != nil {
		t.Fatalf("has identity: %v", err)
	}
	if !ok {
		t.Fatal("HasIdentity false after save")
	}
}
