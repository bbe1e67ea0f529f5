// Package keys manages creation, encrypted storage and loading of key pairs.
//
// It enforces passphrase policy, builds textbook RSA pairs from the configured
// PrimeSource, and persists their PKCS#1 records via the domain.KeyStore.
// Stored keys are reloaded by parsing the record and rebuilding the pair from
// its primes.
package keys
