package textbook

import (
	"errors"
	"math/big"

	"github.com/samber/oops"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"lilrsa/internal/crypto"
)

// ErrMalformedRecord is returned when a DER or PEM key record cannot be read
// or does not describe a pair this engine would produce.
var ErrMalformedRecord = errors.New("malformed key record")

const (
	recordVersion = 0
	// version, n, e, d, p, q, dP, dQ, qInv
	privateRecordFields = 9
)

// crtParams holds the Chinese Remainder Theorem values of a PKCS#1 record.
type crtParams struct {
	dP, dQ, qInv *big.Int
}

func (k *KeyPair) crt() (crtParams, error) {
	dP := new(big.Int).Mod(k.d, new(big.Int).Sub(k.p, one))
	dQ := new(big.Int).Mod(k.d, new(big.Int).Sub(k.q, one))
	qInv, err := crypto.ModInverse(k.q, k.p)
	if err != nil {
		return crtParams{}, oops.Wrapf(err, "q has no inverse mod p")
	}
	return crtParams{dP: dP, dQ: dQ, qInv: qInv}, nil
}

// EncodePrivateKeyRecord returns the PKCS#1 RSAPrivateKey DER encoding
// SEQUENCE { 0, n, e, d, p, q, dP, dQ, qInv }.
func (k *KeyPair) EncodePrivateKeyRecord() ([]byte, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	c, err := k.crt()
	if err != nil {
		return nil, err
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(recordVersion)
		for _, v := range []*big.Int{k.n, k.e, k.d, k.p, k.q, c.dP, c.dQ, c.qInv} {
			b.AddASN1BigInt(v)
		}
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, oops.Wrapf(err, "encode private key record")
	}
	return der, nil
}

// EncodeRecord returns the PKCS#1 RSAPublicKey DER encoding SEQUENCE { n, e }.
func (pk PublicKey) EncodeRecord() ([]byte, error) {
	if err := pk.ready(); err != nil {
		return nil, err
	}
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(pk.n)
		b.AddASN1BigInt(pk.e)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, oops.Wrapf(err, "encode public key record")
	}
	return der, nil
}

// ParsePrivateKeyRecord reads a record written by EncodePrivateKeyRecord.
//
// The pair is rebuilt from p and q, and every other field of the record must
// match what that rebuild derives.
func ParsePrivateKeyRecord(der []byte) (*KeyPair, error) {
	fields, err := readIntegerSequence(der, privateRecordFields)
	if err != nil {
		return nil, err
	}
	if fields[0].Sign() != recordVersion {
		return nil, oops.Wrapf(ErrMalformedRecord, "unsupported version %s", fields[0])
	}

	eng := NewEngine(nil)
	if err := eng.SetPrimes(fields[4], fields[5]); err != nil {
		return nil, oops.Wrapf(ErrMalformedRecord, "primes: %v", err)
	}
	kp, err := eng.GenPair(0)
	if err != nil {
		return nil, oops.Wrapf(ErrMalformedRecord, "rebuild: %v", err)
	}
	c, err := kp.crt()
	if err != nil {
		return nil, oops.Wrapf(ErrMalformedRecord, "crt: %v", err)
	}

	want := []*big.Int{kp.n, kp.e, kp.d, kp.p, kp.q, c.dP, c.dQ, c.qInv}
	for i, w := range want {
		if fields[i+1].Cmp(w) != 0 {
			return nil, oops.Wrapf(ErrMalformedRecord, "field %d does not match the rebuilt key", i+1)
		}
	}
	return kp, nil
}

// ParsePublicKeyRecord reads a record written by PublicKey.EncodeRecord.
func ParsePublicKeyRecord(der []byte) (PublicKey, error) {
	fields, err := readIntegerSequence(der, 2)
	if err != nil {
		return PublicKey{}, err
	}
	if fields[0].Sign() <= 0 || fields[1].Sign() <= 0 {
		return PublicKey{}, oops.Wrapf(ErrMalformedRecord, "modulus and exponent must be positive")
	}
	return PublicKey{n: fields[0], e: fields[1]}, nil
}

// readIntegerSequence reads a DER SEQUENCE holding exactly count INTEGERs.
func readIntegerSequence(der []byte, count int) ([]*big.Int, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return nil, oops.Wrapf(ErrMalformedRecord, "not a DER sequence")
	}
	if !input.Empty() {
		return nil, oops.Wrapf(ErrMalformedRecord, "trailing data after sequence")
	}

	out := make([]*big.Int, count)
	for i := range out {
		out[i] = new(big.Int)
		if !seq.ReadASN1Integer(out[i]) {
			return nil, oops.Wrapf(ErrMalformedRecord, "field %d is not an integer", i)
		}
	}
	if !seq.Empty() {
		return nil, oops.Wrapf(ErrMalformedRecord, "more than %d fields", count)
	}
	return out, nil
}
