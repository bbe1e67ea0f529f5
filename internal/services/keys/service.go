package keys

import (
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"lilrsa/internal/crypto"
	"lilrsa/internal/domain"
	"lilrsa/internal/logging"
	"lilrsa/internal/protocol/textbook"
	"lilrsa/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages key pair creation and access using a backing store.
type Service struct {
	store  domain.KeyStore
	source domain.PrimeSource
	log    logrus.FieldLogger
	now    func() time.Time
}

// New returns a key service backed by the given store and prime source.
// A nil logger discards output.
func New(s domain.KeyStore, source domain.PrimeSource, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{
		store:  s,
		source: source,
		log:    log.WithField("component", "keys"),
		now:    time.Now,
	}
}

// Generate creates a key pair for tier, saves it encrypted with the
// passphrase, and returns its metadata and the pair.
func (s *Service) Generate(passphrase string, tier int) (domain.KeyMeta, *textbook.KeyPair, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyMeta{}, nil, ErrWeakPassphrase
	}

	kp, err := textbook.NewEngine(s.source).GenPair(tier)
	if err != nil {
		return domain.KeyMeta{}, nil, oops.Wrapf(err, "generate tier %d pair", tier)
	}
	fp, err := Fingerprint(kp)
	if err != nil {
		return domain.KeyMeta{}, nil, err
	}
	record, err := kp.EncodePrivateKeyRecord()
	if err != nil {
		return domain.KeyMeta{}, nil, err
	}
	defer memzero.Zero(record)

	meta := domain.KeyMeta{
		ID:          domain.KeyID(uuid.NewString()),
		Tier:        tier,
		Bits:        kp.Bits(),
		Fingerprint: fp,
		CreatedUTC:  s.now().UTC().Unix(),
	}
	if err := s.store.SaveKey(passphrase, meta, record); err != nil {
		return domain.KeyMeta{}, nil, err
	}

	s.log.WithFields(logrus.Fields{
		"id":          meta.ID,
		"tier":        tier,
		"bits":        meta.Bits,
		"fingerprint": fp,
	}).Info("generated key pair")
	return meta, kp, nil
}

// Load decrypts the record stored under id and rebuilds its key pair.
func (s *Service) Load(passphrase string, id domain.KeyID) (*textbook.KeyPair, domain.KeyMeta, error) {
	meta, record, err := s.store.LoadKey(passphrase, id)
	if err != nil {
		return nil, domain.KeyMeta{}, err
	}
	defer memzero.Zero(record)

	kp, err := textbook.ParsePrivateKeyRecord(record)
	if err != nil {
		return nil, domain.KeyMeta{}, oops.Wrapf(err, "key %s", id)
	}
	s.log.WithField("id", id).Debug("rebuilt key pair from record")
	return kp, meta, nil
}

// ExportPEM returns the PEM form of the key stored under id.
func (s *Service) ExportPEM(passphrase string, id domain.KeyID) ([]byte, error) {
	kp, _, err := s.Load(passphrase, id)
	if err != nil {
		return nil, err
	}
	return kp.EncodePrivateKeyPEM()
}

// List returns the metadata of all stored keys.
func (s *Service) List() ([]domain.KeyMeta, error) {
	return s.store.ListKeys()
}

// Fingerprint returns the short fingerprint of kp's public key record.
func Fingerprint(kp *textbook.KeyPair) (domain.Fingerprint, error) {
	pub, err := kp.PublicKey().EncodeRecord()
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(pub), nil
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
