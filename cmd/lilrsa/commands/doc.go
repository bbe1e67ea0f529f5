// Package commands defines the lilrsa CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a key pair for a tier and store it encrypted
//   - list         List stored keys
//   - fingerprint  Print a stored key's fingerprint
//   - encrypt      Encrypt text to a decimal ciphertext
//   - decrypt      Decrypt a decimal ciphertext
//   - sign         Sign text, printing a decimal signature
//   - verify       Recover signed text, optionally checking it
//   - export       Write a stored key as an RSA PRIVATE KEY PEM block
//   - demo         Walk through every operation on a throwaway pair
//
// # Implementation
//
// The root command loads configuration through viper and builds the
// dependency graph (logger, key store, key service) before any subcommand
// runs, so handlers share one app context. Ciphertexts and signatures are
// plain base-10 integers on the command line.
package commands
