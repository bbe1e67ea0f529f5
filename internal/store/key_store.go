package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"lilrsa/internal/domain"
	"lilrsa/internal/logging"
)

const (
	keysDir       = "keys"
	keyFileSuffix = ".key.json"
)

var (
	// ErrKeyNotFound is returned when no record exists for a key ID.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidKeyID is returned for IDs that are not UUIDs.
	ErrInvalidKeyID = errors.New("invalid key id")
	// ErrKeyMismatch is returned when a file holds a record saved under another ID.
	ErrKeyMismatch = errors.New("key file belongs to a different key")
)

// keyFile is the on-disk layout of one key.
type keyFile struct {
	Meta   domain.KeyMeta  `json:"meta"`
	Sealed json.RawMessage `json:"sealed"`
}

// KeyFileStore persists passphrase-protected key records to disk.
type KeyFileStore struct {
	dir     string
	scryptN int
	log     logrus.FieldLogger
	mu      sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at home. A scryptN of zero uses
// DefaultScryptN; a nil logger discards output.
func NewKeyFileStore(home string, scryptN int, log logrus.FieldLogger) *KeyFileStore {
	if scryptN == 0 {
		scryptN = DefaultScryptN
	}
	if log == nil {
		log = logging.Discard()
	}
	return &KeyFileStore{
		dir:     filepath.Join(home, keysDir),
		scryptN: scryptN,
		log:     log.WithField("component", "keystore"),
	}
}

func (s *KeyFileStore) path(id domain.KeyID) (string, error) {
	if _, err := uuid.Parse(id.String()); err != nil {
		return "", oops.Wrapf(ErrInvalidKeyID, "%q", id)
	}
	return filepath.Join(s.dir, id.String()+keyFileSuffix), nil
}

// SaveKey seals record with passphrase and writes it with meta.
func (s *KeyFileStore) SaveKey(passphrase string, meta domain.KeyMeta, record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(meta.ID)
	if err != nil {
		return err
	}
	ad, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	sealed, err := seal(passphrase, record, ad, s.scryptN)
	if err != nil {
		return oops.Wrapf(err, "seal key %s", meta.ID)
	}
	if err := writeJSON(path, keyFile{Meta: meta, Sealed: sealed}, 0o600); err != nil {
		return oops.Wrapf(err, "write key %s", meta.ID)
	}

	s.log.WithFields(logrus.Fields{
		"id":   meta.ID,
		"tier": meta.Tier,
		"bits": meta.Bits,
	}).Debug("saved key record")
	return nil
}

// LoadKey reads and unseals the record stored under id.
func (s *KeyFileStore) LoadKey(passphrase string, id domain.KeyID) (domain.KeyMeta, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(id)
	if err != nil {
		return domain.KeyMeta{}, nil, err
	}
	var kf keyFile
	found, err := readJSON(path, &kf)
	if err != nil {
		return domain.KeyMeta{}, nil, oops.Wrapf(err, "read key %s", id)
	}
	if !found {
		return domain.KeyMeta{}, nil, oops.Wrapf(ErrKeyNotFound, "%s", id)
	}
	if kf.Meta.ID != id {
		s.log.WithFields(logrus.Fields{"id": id, "found": kf.Meta.ID}).Warn("key file id mismatch")
		return domain.KeyMeta{}, nil, oops.Wrapf(ErrKeyMismatch, "%s holds %s", id, kf.Meta.ID)
	}

	ad, err := json.Marshal(kf.Meta)
	if err != nil {
		return domain.KeyMeta{}, nil, err
	}
	record, err := open(passphrase, kf.Sealed, ad)
	if err != nil {
		s.log.WithField("id", id).Warn("failed to open key record")
		return domain.KeyMeta{}, nil, oops.Wrapf(err, "open key %s", id)
	}
	s.log.WithField("id", id).Debug("loaded key record")
	return kf.Meta, record, nil
}

// ListKeys returns the metadata of every stored key, oldest first.
func (s *KeyFileStore) ListKeys() ([]domain.KeyMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "list %s", s.dir)
	}

	out := make([]domain.KeyMeta, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileSuffix) {
			continue
		}
		var kf keyFile
		if _, err := readJSON(filepath.Join(s.dir, e.Name()), &kf); err != nil {
			s.log.WithError(err).WithField("file", e.Name()).Warn("skipping unreadable key file")
			continue
		}
		if kf.Meta.ID.String()+keyFileSuffix != e.Name() {
			s.log.WithField("file", e.Name()).Warn("skipping key file saved under another id")
			continue
		}
		out = append(out, kf.Meta)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedUTC != out[j].CreatedUTC {
			return out[i].CreatedUTC < out[j].CreatedUTC
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
