package crypto

import (
	"errors"
	"math/big"

	"github.com/samber/oops"
)

var (
	// ErrInvalidModulus is returned when the modulus is zero or negative.
	ErrInvalidModulus = errors.New("modulus must be positive")
	// ErrNegativeExponent is returned by ModPow for exponents below zero.
	ErrNegativeExponent = errors.New("exponent must not be negative")
	// ErrNoInverse is returned when gcd(a, modulus) != 1.
	ErrNoInverse = errors.New("no modular inverse exists")
)

var one = big.NewInt(1)

// ModPow returns base^exponent mod modulus in [0, modulus).
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, oops.Wrapf(ErrInvalidModulus, "modpow: modulus %s", modulus)
	}
	if exponent.Sign() < 0 {
		return nil, oops.Wrapf(ErrNegativeExponent, "modpow: exponent %s", exponent)
	}
	b := new(big.Int).Mod(base, modulus)
	return b.Exp(b, exponent, modulus), nil
}

// ModInverse returns d in [0, modulus) with a*d = 1 (mod modulus), found with
// the extended Euclidean algorithm.
func ModInverse(a, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, oops.Wrapf(ErrInvalidModulus, "modinverse: modulus %s", modulus)
	}
	r := new(big.Int).Mod(a, modulus)
	x := new(big.Int)
	g := new(big.Int).GCD(x, nil, r, modulus)
	if g.Cmp(one) != 0 {
		return nil, oops.Wrapf(ErrNoInverse, "modinverse: gcd(%s, %s) = %s", a, modulus, g)
	}
	return x.Mod(x, modulus), nil
}
