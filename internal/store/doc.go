// Package store provides file-based persistence for lilrsa key records.
//
// KeyFileStore implements domain.KeyStore. Each key lives in its own JSON file
// under <home>/keys, holding clear metadata next to the private key record
// sealed with a passphrase-derived key (scrypt + ChaCha20-Poly1305). The
// metadata is bound to the ciphertext as associated data, so editing it on
// disk makes the record fail to open.
//
// Writes go through a temp file and rename. All methods are safe for
// concurrent use via internal locking.
package store
