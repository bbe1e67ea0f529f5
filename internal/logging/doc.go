// Package logging builds the logrus logger shared by the CLI, the services
// and the key store.
//
// # Levels
//
//	debug  store and service internals
//	info   key generation and exports
//	warn   default; failed unseals, skipped files
//	error  command failures
//
// The number-theoretic core (primes, crypto, protocol/textbook) never logs.
package logging
