package textbook

import (
	"errors"
	"math/big"

	"github.com/samber/oops"

	"lilrsa/internal/domain"
	"lilrsa/internal/primes"
)

var (
	// ErrUninitializedKey is returned when an operation runs before GenPair.
	ErrUninitializedKey = errors.New("key pair has not been generated")
	// ErrInvalidPrimes is returned by SetPrimes for unusable primes.
	ErrInvalidPrimes = errors.New("invalid prime pair")
)

// Engine builds a KeyPair. It is not safe for concurrent use.
type Engine struct {
	source domain.PrimeSource
	p, q   *big.Int
	pair   *KeyPair
}

// NewEngine returns an Engine that draws primes from source. A nil source
// uses the fixed prime table.
func NewEngine(source domain.PrimeSource) *Engine {
	if source == nil {
		source = primes.New()
	}
	return &Engine{source: source}
}

// SetPrimes supplies p and q directly so GenPair skips the PrimeSource.
// Primality is not checked.
func (e *Engine) SetPrimes(p, q *big.Int) error {
	if p == nil || q == nil {
		return oops.Wrapf(ErrInvalidPrimes, "both p and q must be set")
	}
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return oops.Wrapf(ErrInvalidPrimes, "primes must be at least 2")
	}
	if p.Cmp(q) == 0 {
		return oops.Wrapf(ErrInvalidPrimes, "p and q must differ")
	}
	e.p = new(big.Int).Set(p)
	e.q = new(big.Int).Set(q)
	return nil
}

// GenPair derives n, phi and d and returns the resulting key pair.
//
// The first call without caller-supplied primes fetches them for tier; later
// calls reuse the same p and q whatever tier they pass, so the pair is
// recomputed deterministically rather than regenerated.
func (e *Engine) GenPair(tier int) (*KeyPair, error) {
	if e.p == nil && e.q == nil {
		p, q := e.source.SelectPrimes(tier)
		if err := e.SetPrimes(p, q); err != nil {
			return nil, oops.Wrapf(err, "prime source returned an unusable pair for tier %d", tier)
		}
	}
	kp, err := newKeyPair(e.p, e.q)
	if err != nil {
		return nil, err
	}
	e.pair = kp
	return kp, nil
}

// KeyPair returns the pair produced by the last GenPair.
func (e *Engine) KeyPair() (*KeyPair, error) {
	if e.pair == nil {
		return nil, ErrUninitializedKey
	}
	return e.pair, nil
}

// Encrypt encrypts message with the generated pair. See KeyPair.Encrypt.
func (e *Engine) Encrypt(message string) (*big.Int, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return nil, err
	}
	return kp.Encrypt(message)
}

// Decrypt decrypts ciphertext with the generated pair.
func (e *Engine) Decrypt(ciphertext *big.Int) (string, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return "", err
	}
	return kp.Decrypt(ciphertext)
}

// Sign signs message with the generated pair.
func (e *Engine) Sign(message string) (*big.Int, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return nil, err
	}
	return kp.Sign(message)
}

// Verify recovers the signed text from signature.
func (e *Engine) Verify(signature *big.Int) (string, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return "", err
	}
	return kp.Verify(signature)
}

// EncodePrivateKeyRecord returns the DER record of the generated pair.
func (e *Engine) EncodePrivateKeyRecord() ([]byte, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return nil, err
	}
	return kp.EncodePrivateKeyRecord()
}

// EncodePrivateKeyPEM returns the PEM form of the generated pair.
func (e *Engine) EncodePrivateKeyPEM() ([]byte, error) {
	kp, err := e.KeyPair()
	if err != nil {
		return nil, err
	}
	return kp.EncodePrivateKeyPEM()
}
