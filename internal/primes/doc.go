// Package primes supplies the fixed prime pairs used to build textbook RSA keys.
//
// A tier names a rough bit-length class. Each recognised tier maps to one
// pre-verified pair of distinct primes; every other tier value falls back to a
// small default pair. Nothing here is random: the same tier always yields the
// same primes.
//
// # Tiers
//
//	8    ~27-bit primes, 53-bit modulus
//	16   ~53-bit primes, 105-bit modulus
//	32   ~106-bit primes, 211-bit modulus
//	64   ~213-bit primes, 425-bit modulus (DefaultTier)
//	128  ~424-bit primes, 846-bit modulus
//	256  ~849-bit primes, 1698-bit modulus
//
// Table implements domain.PrimeSource, so a probabilistic generator can be
// dropped in later without touching the key engine.
package primes
