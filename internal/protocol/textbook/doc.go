// Package textbook implements unpadded ("textbook") RSA over integer-encoded
// text.
//
// # Overview
//
// An Engine is a mutable builder. It either takes two primes supplied by the
// caller (SetPrimes) or asks its PrimeSource for the pair registered for a
// tier. GenPair derives
//
//	n   = p*q
//	phi = (p-1)(q-1)
//	d   = e^-1 mod phi, with e = 65537
//
// and returns an immutable KeyPair. The four operations are plain modular
// exponentiation on the integer form of the text:
//
//	Encrypt(m)   = m^e mod n
//	Decrypt(c)   = c^d mod n
//	Sign(m)      = m^d mod n
//	Verify(s)    = s^e mod n
//
// # Serialization
//
// EncodePrivateKeyRecord produces the PKCS#1 RSAPrivateKey DER structure
// SEQUENCE { 0, n, e, d, p, q, d mod (p-1), d mod (q-1), q^-1 mod p }.
// The CRT values are derived on demand and never stored on the pair.
// EncodePrivateKeyPEM wraps that record in an "RSA PRIVATE KEY" PEM block.
// ParsePrivateKeyRecord and ParsePrivateKeyPEM read records back and rebuild
// the pair from p and q.
//
// # Security notes
//
// There is no padding. Encryption is deterministic and every textbook RSA
// attack applies. Messages whose integer form is not below n wrap modulo n and
// do not decrypt to the original text. Do not use this for anything that
// matters.
//
// # Errors
//
// ErrUninitializedKey is returned by every operation before GenPair has run.
// ErrInvalidPrimes rejects bad caller-supplied primes, ErrSignatureMismatch is
// returned by VerifyMessage and ErrMalformedRecord by the parsers. Arithmetic
// and decoding failures surface crypto.ErrNoInverse and crypto.ErrDecode.
package textbook
