package app

import (
	"os"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"lilrsa/internal/domain"
	"lilrsa/internal/logging"
	"lilrsa/internal/primes"
	keysvc "lilrsa/internal/services/keys"
	"lilrsa/internal/store"
)

// Wire bundles the store, services and logger for the CLI.
type Wire struct {
	Config Config
	Log    *logrus.Logger
	Store  domain.KeyStore
	Keys   *keysvc.Service
}

// NewWire constructs the dependency graph from cfg. A nil logger discards output.
func NewWire(cfg Config, log *logrus.Logger) (*Wire, error) {
	if log == nil {
		log = logging.Discard()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, oops.Wrapf(err, "create home %s", cfg.Home)
	}

	// File-based store
	keyStore := store.NewKeyFileStore(cfg.Home, cfg.ScryptN, log)

	// High-level services
	keys := keysvc.New(keyStore, primes.New(), log)

	log.WithField("home", cfg.Home).Debug("wired application")
	return &Wire{
		Config: cfg,
		Log:    log,
		Store:  keyStore,
		Keys:   keys,
	}, nil
}
