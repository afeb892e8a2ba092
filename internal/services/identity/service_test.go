package identity_test

import (
	"errors"
	"testing"

	"vaultsync/internal/domain"
	identitysvc "vaultsync/internal/services/identity"
	"vaultsync/internal/store"
)

const testPassphrase = "Str0ng-Enough!Pass"

// failableStore wraps an in-memory identity store whose writes can be
// forced to fail.
type failableStore struct {
	saved   *domain.Identity
	pass    string
	failSet bool
}

func (s *failableStore) SaveIdentity(passphrase string, id domain.Identity) error {
	if s.failSet {
		return errors.New("disk full")
	}
	copied := id
	s.saved = &copied
	s.pass = passphrase
	return nil
}

func (s *failableStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	if s.saved == nil {
		return domain.Identity{}, domain.ErrNoIdentity
	}
	if passphrase != s.pass {
		return domain.Identity{}, errors.New("wrong passphrase")
	}
	return *s.saved, nil
}

func (s *failableStore) HasIdentity() (bool, error) { return s.saved != nil, nil }

var _ domain.IdentityStore = (*failableStore)(nil)

// staticSettings serves a fixed settings record.
type staticSettings struct{ s domain.SyncSettings }

func (f *staticSettings) Load() (domain.SyncSettings, error) { return f.s, nil }
func (f *staticSettings) Save(p domain.SettingsPatch) (domain.SyncSettings, error) {
	f.s = p.Apply(f.s)
	return f.s, nil
}

var _ domain.SettingsService = (*staticSettings)(nil)

func newActiveService(t *testing.T) (*identitysvc.Service, *failableStore) {
	t.Helper()
	st := &failableStore{}
	svc := identitysvc.New(st, nil)
	if _, _, err := svc.Create(testPassphrase); err != nil {
		t.Fatalf("create: %v", err)
	}
	return svc, st
}

func TestCreate_RejectsWeakPassphrase(t *testing.T) {
	svc := identitysvc.New(&failableStore{}, nil)
	if _, _, err := svc.Create("short"); !errors.Is(err, identitysvc.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
}

func TestLocked_OperationsFail(t *testing.T) {
	svc := identitysvc.New(&failableStore{}, nil)
	if _, err := svc.ExportBundle(); !errors.Is(err, domain.ErrNoIdentity) {
		t.Fatalf("export on locked service: %v", err)
	}
	if _, err := svc.BearerToken(); !errors.Is(err, domain.ErrNoIdentity) {
		t.Fatalf("token on locked service: %v", err)
	}
}

func TestUnlock_RestoresPersistedIdentity(t *testing.T) {
	home := t.TempDir()
	fileStore := store.NewIdentityFileStore(home)

	first := identitysvc.New(fileStore, nil)
	created, _, err := first.Create(testPassphrase)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second := identitysvc.New(fileStore, nil)
	if err := second.Unlock(testPassphrase); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	got, err := second.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.EdPub != created.EdPub {
		t.Fatal("restored identity differs from created one")
	}
}

func TestBearerToken_StableAcrossCalls(t *testing.T) {
	svc, _ := newActiveService(t)

	a, err := svc.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	b, err := svc.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if a != b {
		t.Fatalf("token changed without import/regenerate: %q vs %q", a, b)
	}
}

func TestBearerToken_SettingsOverrideWins(t *testing.T) {
	st := &failableStore{}
	settings := &staticSettings{s: domain.SyncSettings{BearerTokenOverride: "operator-issued"}}
	svc := identitysvc.New(st, settings)
	if _, _, err := svc.Create(testPassphrase); err != nil {
		t.Fatalf("create: %v", err)
	}

	token, err := svc.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "operator-issued" {
		t.Fatalf("override ignored, got %q", token)
	}
}

func TestImportBundle_RoundtripFromExport(t *testing.T) {
	source, _ := newActiveService(t)
	bundle, err := source.ExportBundle()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	sourceToken, err := source.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	dest, _ := newActiveService(t)
	reload, err := dest.ImportBundle(bundle)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reload {
		t.Fatal("successful import did not flag a reload")
	}
	destToken, err := dest.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if destToken != sourceToken {
		t.Fatal("imported identity derives a different token")
	}
}

func TestImportBundle_MalformedLeavesIdentityUntouched(t *testing.T) {
	svc, _ := newActiveService(t)
	before, err := svc.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	bundle, err := svc.ExportBundle()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	bundle.Ed25519.PrivateKey = "" // missing component

	if _, err := svc.ImportBundle(bundle); !errors.Is(err, domain.ErrMalformedKeyData) {
		t.Fatalf("want ErrMalformedKeyData, got %v", err)
	}

	after, err := svc.BearerToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if before != after {
		t.Fatal("failed import mutated the identity")
	}
}

func TestImportBundle_PersistFailureLeavesIdentityUntouched(t *testing.T) {
	svc, st := newActiveService(t)
	before, _ := svc.BearerToken()

	other, _ := newActiveService(t)
	bundle, err := other.ExportBundle()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	st.failSet = true
	if _, err := svc.ImportBundle(bundle); !errors.Is(err, domain.ErrPersistFailure) {
		t.Fatalf("want ErrPersistFailure, got %v", err)
	}
	st.failSet = false

	after, _ := svc.BearerToken()
	if before != after {
		t.Fatal("failed persist advanced the in-memory identity")
	}
}

func TestRegenerate_TwoPhase(t *testing.T) {
	svc, _ := newActiveService(t)
	before, _ := svc.BearerToken()

	intent, err := svc.RequestRegenerate()
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	reload, err := svc.ConfirmRegenerate(intent)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !reload {
		t.Fatal("successful regenerate did not flag a reload")
	}

	after, _ := svc.BearerToken()
	if before == after {
		t.Fatal("token unchanged after regenerate")
	}
}

func TestRegenerate_UnknownIntentRejected(t *testing.T) {
	svc, _ := newActiveService(t)
	before, _ := svc.BearerToken()

	fake := domain.RegenerateIntent{ID: "not-issued"}
	if _, err := svc.ConfirmRegenerate(fake); !errors.Is(err, domain.ErrRegenerateIntent) {
		t.Fatalf("want ErrRegenerateIntent, got %v", err)
	}

	after, _ := svc.BearerToken()
	if before != after {
		t.Fatal("rejected intent mutated the identity")
	}
}

func TestRegenerate_IntentIsSingleUse(t *testing.T) {
	svc, _ := newActiveService(t)

	intent, err := svc.RequestRegenerate()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.ConfirmRegenerate(intent); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := svc.ConfirmRegenerate(intent); !errors.Is(err, domain.ErrRegenerateIntent) {
		t.Fatalf("want ErrRegenerateIntent on reuse, got %v", err)
	}
}

func TestMaskedKeys_AreElided(t *testing.T) {
	svc, _ := newActiveService(t)

	signing, err := svc.MaskedSigningKey()
	if err != nil {
		t.Fatalf("masked signing key: %v", err)
	}
	encryption, err := svc.MaskedEncryptionKey()
	if err != nil {
		t.Fatalf("masked encryption key: %v", err)
	}
	if len(signing) != 13 || len(encryption) != 13 {
		t.Fatalf("masked keys not fixed-width: %q, %q", signing, encryption)
	}
	if signing == encryption {
		t.Fatal("distinct keys mask to the same string")
	}
}
