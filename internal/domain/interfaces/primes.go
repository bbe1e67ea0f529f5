package interfaces

import "math/big"

// PrimeSource supplies the two primes a key pair is built from.
type PrimeSource interface {
	// SelectPrimes returns distinct primes p and q for the given tier.
	SelectPrimes(tier int) (p, q *big.Int)
}
