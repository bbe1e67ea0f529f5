package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"

	"github.com/samber/oops"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"lilrsa/internal/util/memzero"
)

const (
	// The current supported version of the sealed record format stored on disk.
	envelopeFormatVersion = 1

	saltBytes = 16

	// DefaultScryptN is the scrypt cost used when none is configured.
	DefaultScryptN = 1 << 15
	scryptR        = 8
	scryptP        = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed record or its metadata has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key record")

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw, binding ad.
func seal(passphrase string, raw, ad []byte, n int) (json.RawMessage, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, oops.Wrapf(err, "read salt")
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], n, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, oops.Wrapf(err, "derive key")
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the salt makes every key unique
	ct := aead.Seal(nil, nonce[:], raw, associated(salt[:], ad))

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      n,
		R:      scryptR,
		P:      scryptP,
		Cipher: ct,
	})
}

// open reverses seal.
func open(passphrase string, b, ad []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, oops.Wrapf(err, "decode envelope")
	}
	if env.V > envelopeFormatVersion {
		return nil, oops.Errorf("unsupported key record version %d", env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, oops.Wrapf(err, "derive key")
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, associated(env.Salt, ad))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func associated(salt, ad []byte) []byte {
	out := make([]byte, 0, len(salt)+len(ad))
	out = append(out, salt...)
	return append(out, ad...)
}
