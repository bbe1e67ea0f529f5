package crypto

import (
	"errors"
	"math/big"
	"unicode/utf8"

	"github.com/samber/oops"
)

// ErrDecode is returned when an integer does not render to valid UTF-8 text.
var ErrDecode = errors.New("integer does not decode to text")

// EncodeText reads the UTF-8 bytes of s as a big-endian unsigned integer.
// The empty string encodes to zero.
func EncodeText(s string) *big.Int {
	return new(big.Int).SetBytes([]byte(s))
}

// DecodeText renders v as its minimal big-endian byte sequence
// (ceil(bitlen/8) bytes) and returns it as text. Zero decodes to "".
//
// Leading zero bytes of the original text cannot be recovered.
func DecodeText(v *big.Int) (string, error) {
	if v.Sign() < 0 {
		return "", oops.Wrapf(ErrDecode, "negative value")
	}
	b := v.Bytes()
	if !utf8.Valid(b) {
		return "", oops.Wrapf(ErrDecode, "%d bytes are not valid utf-8", len(b))
	}
	return string(b), nil
}
