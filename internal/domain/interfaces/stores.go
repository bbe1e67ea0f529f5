package interfaces

import domaintypes "lilrsa/internal/domain/types"

// KeyStore persists passphrase-protected private key records.
type KeyStore interface {
	SaveKey(passphrase string, meta domaintypes.KeyMeta, record []byte) error
	LoadKey(passphrase string, id domaintypes.KeyID) (domaintypes.KeyMeta, []byte, error)
	ListKeys() ([]domaintypes.KeyMeta, error)
}
