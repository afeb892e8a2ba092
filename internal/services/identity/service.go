package identity

import (
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"vaultsync/internal/crypto"
	"vaultsync/internal/domain"
	"vaultsync/internal/keystore"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	// intentTTL is how long a regenerate intent stays confirmable.
	intentTTL = 5 * time.Minute
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrLocked is returned when an operation needs an unlocked identity.
	ErrLocked = fmt.Errorf("identity is locked: %w", domain.ErrNoIdentity)
)

// Service manages the single current identity using a backing store.
//
// The identity contains:
//   - X25519 key pair for key agreement (data encryption).
//   - Ed25519 key pair for signing (bearer token derivation).
//
// The passphrase supplied at Create or Unlock is retained for the life
// of the service so that import and regenerate can re-persist the
// replacement identity.
type Service struct {
	store    domain.IdentityStore
	settings domain.SettingsService // optional; consulted for token override

	mu         sync.Mutex
	current    domain.Identity
	active     bool
	passphrase string
	intents    map[string]domain.RegenerateIntent
	now        func() time.Time
}

// New returns an identity service backed by the given store. settings
// may be nil when no override chain is wanted.
func New(store domain.IdentityStore, settings domain.SettingsService) *Service {
	return &Service{
		store:    store,
		settings: settings,
		intents:  make(map[string]domain.RegenerateIntent),
		now:      time.Now,
	}
}

// Create generates a fresh identity, persists it encrypted with the
// passphrase, and activates it. It returns the identity plus a short
// fingerprint of the X25519 public key.
func (s *Service) Create(passphrase string) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := keystore.Generate()
	if err != nil {
		return domain.Identity{}, "", err
	}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", fmt.Errorf("%w: %v", domain.ErrPersistFailure, err)
	}
	s.current = id
	s.active = true
	s.passphrase = passphrase
	return id, domain.Fingerprint(crypto.Fingerprint(id.XPub.Slice())), nil
}

// Unlock restores the persisted identity and activates it.
func (s *Service) Unlock(passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return err
	}
	s.current = id
	s.active = true
	s.passphrase = passphrase
	return nil
}

// Current returns the active identity.
func (s *Service) Current() (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return domain.Identity{}, ErrLocked
	}
	return s.current, nil
}

// ExportBundle serializes the current identity. Read-only: clipboard
// delivery and success/failure notification belong to the caller.
func (s *Service) ExportBundle() (domain.KeyExportBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return domain.KeyExportBundle{}, ErrLocked
	}
	return keystore.Serialize(s.current), nil
}

// ImportBundle validates the bundle and atomically replaces the current
// identity. On any failure the existing identity is untouched. On
// success the returned flag tells the caller that anything derived from
// the old identity is now stale and must be reloaded.
func (s *Service) ImportBundle(bundle domain.KeyExportBundle) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false, ErrLocked
	}
	id, err := keystore.Deserialize(bundle)
	if err != nil {
		return false, err
	}
	if err := s.store.SaveIdentity(s.passphrase, id); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrPersistFailure, err)
	}
	s.current = id
	return true, nil
}

// RequestRegenerate issues a single-use intent for the destructive key
// regeneration. The mutation only happens when ConfirmRegenerate is
// called with the intent before it expires.
func (s *Service) RequestRegenerate() (domain.RegenerateIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return domain.RegenerateIntent{}, ErrLocked
	}
	issued := s.now()
	intent := domain.RegenerateIntent{
		ID:        uuid.NewString(),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(intentTTL),
	}
	s.intents[intent.ID] = intent
	return intent, nil
}

// ConfirmRegenerate consumes the intent and replaces the current
// identity with a freshly generated one. Irreversible: data encrypted
// under the prior encryption key becomes unrecoverable through this
// identity. The intent is consumed even when generation or persistence
// fails; the caller must request a new one to retry.
func (s *Service) ConfirmRegenerate(intent domain.RegenerateIntent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false, ErrLocked
	}
	stored, ok := s.intents[intent.ID]
	if !ok {
		return false, domain.ErrRegenerateIntent
	}
	delete(s.intents, intent.ID)
	if stored.Expired(s.now()) {
		return false, fmt.Errorf("%w: expired", domain.ErrRegenerateIntent)
	}

	id, err := keystore.Generate()
	if err != nil {
		return false, err
	}
	if err := s.store.SaveIdentity(s.passphrase, id); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrPersistFailure, err)
	}
	s.current = id
	return true, nil
}

// BearerToken returns the credential presented to the remote API: the
// settings override when one is set, otherwise the deterministic
// derivation from the current signing public key. Stable across calls;
// it changes only after a successful import or regenerate.
func (s *Service) BearerToken() (domain.BearerToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return "", ErrLocked
	}
	if s.settings != nil {
		settings, err := s.settings.Load()
		if err != nil {
			return "", err
		}
		if settings.BearerTokenOverride != "" {
			return domain.BearerToken(settings.BearerTokenOverride), nil
		}
	}
	return crypto.DeriveBearerToken(s.current.EdPub), nil
}

// MaskedSigningKey returns the display form of the signing private key.
func (s *Service) MaskedSigningKey() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return "", ErrLocked
	}
	return keystore.Mask(s.current.EdPriv.Slice()), nil
}

// MaskedEncryptionKey returns the display form of the encryption private key.
func (s *Service) MaskedEncryptionKey() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return "", ErrLocked
	}
	return keystore.Mask(s.current.XPriv.Slice()), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
