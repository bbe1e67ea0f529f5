// Package crypto exposes the number-theoretic and encoding primitives used by
// lilrsa.
//
// Contents
//
//   - Modular exponentiation and modular inverse over math/big integers
//     (ModPow, ModInverse)
//   - Lossless text <-> integer conversion (EncodeText, DecodeText)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Errors
//
// ErrInvalidModulus, ErrNegativeExponent and ErrNoInverse report violated
// preconditions of the arithmetic helpers. ErrDecode is returned when an
// integer does not render to valid UTF-8 text. All are wrapped with context and
// remain matchable with errors.Is.
//
// # Notes
//
// None of these functions run in constant time. They are numerically correct
// and nothing more.
package crypto
