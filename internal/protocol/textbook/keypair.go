package textbook

import (
	"errors"
	"math/big"

	"github.com/samber/oops"

	"lilrsa/internal/crypto"
)

// PublicExponent is the fixed public exponent, the Fermat prime F4.
const PublicExponent = 65537

// ErrSignatureMismatch is returned by VerifyMessage when the recovered text
// differs from the expected message.
var ErrSignatureMismatch = errors.New("signature does not match message")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// KeyPair is a generated textbook RSA key pair. It is immutable and safe for
// concurrent use. The zero value is not usable; every method on it returns
// ErrUninitializedKey.
type KeyPair struct {
	p, q *big.Int
	n    *big.Int
	e    *big.Int
	phi  *big.Int
	d    *big.Int
}

// PublicKey is the public half of a KeyPair.
type PublicKey struct {
	n *big.Int
	e *big.Int
}

func newKeyPair(p, q *big.Int) (*KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	phi := pm1.Mul(pm1, qm1)
	e := big.NewInt(PublicExponent)

	d, err := crypto.ModInverse(e, phi)
	if err != nil {
		return nil, oops.Wrapf(err, "public exponent is not invertible mod phi(n)")
	}
	return &KeyPair{
		p:   new(big.Int).Set(p),
		q:   new(big.Int).Set(q),
		n:   n,
		e:   e,
		phi: phi,
		d:   d,
	}, nil
}

func (k *KeyPair) ready() error {
	if k == nil || k.n == nil || k.d == nil {
		return ErrUninitializedKey
	}
	return nil
}

// P returns a copy of the first prime.
func (k *KeyPair) P() *big.Int { return copyInt(k.p) }

// Q returns a copy of the second prime.
func (k *KeyPair) Q() *big.Int { return copyInt(k.q) }

// N returns a copy of the modulus.
func (k *KeyPair) N() *big.Int { return copyInt(k.n) }

// E returns a copy of the public exponent.
func (k *KeyPair) E() *big.Int { return copyInt(k.e) }

// D returns a copy of the private exponent.
func (k *KeyPair) D() *big.Int { return copyInt(k.d) }

// Phi returns a copy of Euler's totient of n.
func (k *KeyPair) Phi() *big.Int { return copyInt(k.phi) }

// Bits returns the bit length of the modulus. Encoded messages must stay
// below n, so a message can hold at most (Bits()-1)/8 bytes safely.
func (k *KeyPair) Bits() int {
	if k == nil || k.n == nil {
		return 0
	}
	return k.n.BitLen()
}

// PublicKey returns the public half of k.
func (k *KeyPair) PublicKey() PublicKey {
	if k == nil {
		return PublicKey{}
	}
	return PublicKey{n: k.n, e: k.e}
}

// Encrypt returns EncodeText(message)^e mod n.
//
// There is no padding and no range check: a message whose integer form is
// not below n silently wraps and will not decrypt to the same text.
func (k *KeyPair) Encrypt(message string) (*big.Int, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.PublicKey().Encrypt(message)
}

// Decrypt returns the text whose integer is ciphertext^d mod n.
func (k *KeyPair) Decrypt(ciphertext *big.Int) (string, error) {
	if err := k.ready(); err != nil {
		return "", err
	}
	if ciphertext == nil {
		return "", oops.Errorf("decrypt: nil ciphertext")
	}
	m, err := crypto.ModPow(ciphertext, k.d, k.n)
	if err != nil {
		return "", err
	}
	return crypto.DecodeText(m)
}

// Sign returns EncodeText(message)^d mod n.
func (k *KeyPair) Sign(message string) (*big.Int, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return crypto.ModPow(crypto.EncodeText(message), k.d, k.n)
}

// Verify returns the text recovered from signature with the public exponent.
// Comparing it with the expected message is up to the caller; VerifyMessage
// does both.
func (k *KeyPair) Verify(signature *big.Int) (string, error) {
	if err := k.ready(); err != nil {
		return "", err
	}
	return k.PublicKey().Verify(signature)
}

// VerifyMessage checks that signature recovers exactly expected.
func (k *KeyPair) VerifyMessage(signature *big.Int, expected string) error {
	if err := k.ready(); err != nil {
		return err
	}
	return k.PublicKey().VerifyMessage(signature, expected)
}

// N returns a copy of the modulus.
func (pk PublicKey) N() *big.Int { return copyInt(pk.n) }

// E returns a copy of the public exponent.
func (pk PublicKey) E() *big.Int { return copyInt(pk.e) }

func (pk PublicKey) ready() error {
	if pk.n == nil || pk.e == nil {
		return ErrUninitializedKey
	}
	return nil
}

// Encrypt returns EncodeText(message)^e mod n.
func (pk PublicKey) Encrypt(message string) (*big.Int, error) {
	if err := pk.ready(); err != nil {
		return nil, err
	}
	return crypto.ModPow(crypto.EncodeText(message), pk.e, pk.n)
}

// Verify returns the text whose integer is signature^e mod n.
func (pk PublicKey) Verify(signature *big.Int) (string, error) {
	if err := pk.ready(); err != nil {
		return "", err
	}
	if signature == nil {
		return "", oops.Errorf("verify: nil signature")
	}
	m, err := crypto.ModPow(signature, pk.e, pk.n)
	if err != nil {
		return "", err
	}
	return crypto.DecodeText(m)
}

// VerifyMessage checks that signature recovers exactly expected. The
// comparison is done on integers, so a forged signature reports
// ErrSignatureMismatch rather than a decode failure. Messages too long for n
// never verify.
func (pk PublicKey) VerifyMessage(signature *big.Int, expected string) error {
	if err := pk.ready(); err != nil {
		return err
	}
	if signature == nil {
		return oops.Errorf("verify: nil signature")
	}
	m, err := crypto.ModPow(signature, pk.e, pk.n)
	if err != nil {
		return err
	}
	if m.Cmp(crypto.EncodeText(expected)) != 0 {
		return oops.Wrapf(ErrSignatureMismatch, "signature over %d-bit modulus", pk.n.BitLen())
	}
	return nil
}

func copyInt(z *big.Int) *big.Int {
	if z == nil {
		return nil
	}
	return new(big.Int).Set(z)
}
