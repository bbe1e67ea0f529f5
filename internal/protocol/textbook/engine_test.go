package textbook_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilrsa/internal/crypto"
	"lilrsa/internal/primes"
	"lilrsa/internal/protocol/textbook"
)

// genPair builds a pair from the fixed table for tier.
func genPair(t *testing.T, tier int) *textbook.KeyPair {
	t.Helper()
	kp, err := textbook.NewEngine(primes.New()).GenPair(tier)
	require.NoError(t, err, "GenPair(%d)", tier)
	return kp
}

func TestGenPair_AllTiers(t *testing.T) {
	src := primes.New()
	for _, tier := range append(primes.Tiers(), 7) {
		kp := genPair(t, tier)
		p, q := src.SelectPrimes(tier)

		assert.Equal(t, 0, kp.P().Cmp(p), "tier %d", tier)
		assert.Equal(t, 0, kp.Q().Cmp(q), "tier %d", tier)
		assert.NotEqual(t, 0, kp.P().Cmp(kp.Q()))
		assert.Equal(t, 0, kp.N().Cmp(new(big.Int).Mul(p, q)))
		assert.Equal(t, int64(textbook.PublicExponent), kp.E().Int64())

		ed := new(big.Int).Mul(kp.E(), kp.D())
		assert.Equal(t, "1", ed.Mod(ed, kp.Phi()).String(), "tier %d", tier)
	}
}

func TestGenPair_Tier8(t *testing.T) {
	kp := genPair(t, 8)
	assert.Equal(t, "71113279", kp.P().String())
	assert.Equal(t, "98327129", kp.Q().String())
	assert.Equal(t, "6992364557845991", kp.N().String())
	assert.Equal(t, "3089413662979265", kp.D().String())
	assert.Equal(t, 53, kp.Bits())
}

func TestGenPair_ReusesPrimes(t *testing.T) {
	eng := textbook.NewEngine(nil)
	first, err := eng.GenPair(8)
	require.NoError(t, err)

	second, err := eng.GenPair(256)
	require.NoError(t, err)
	assert.Equal(t, 0, first.N().Cmp(second.N()))
	assert.Equal(t, 0, first.D().Cmp(second.D()))
}

func TestGenPair_ExternalPrimes(t *testing.T) {
	eng := textbook.NewEngine(nil)
	require.NoError(t, eng.SetPrimes(big.NewInt(61), big.NewInt(53)))

	kp, err := eng.GenPair(64)
	require.NoError(t, err)
	assert.Equal(t, "3233", kp.N().String())
	assert.Equal(t, "3120", kp.Phi().String())
}

func TestGenPair_ExternalPrimesWithoutInverse(t *testing.T) {
	// 917519 - 1 = 14 * 65537, so e divides phi.
	p := big.NewInt(917519)
	eng := textbook.NewEngine(nil)
	require.NoError(t, eng.SetPrimes(p, big.NewInt(7)))

	_, err := eng.GenPair(0)
	assert.ErrorIs(t, err, crypto.ErrNoInverse)
}

func TestSetPrimes_Invalid(t *testing.T) {
	eng := textbook.NewEngine(nil)
	assert.ErrorIs(t, eng.SetPrimes(big.NewInt(7), nil), textbook.ErrInvalidPrimes)
	assert.ErrorIs(t, eng.SetPrimes(nil, big.NewInt(7)), textbook.ErrInvalidPrimes)
	assert.ErrorIs(t, eng.SetPrimes(big.NewInt(7), big.NewInt(7)), textbook.ErrInvalidPrimes)
	assert.ErrorIs(t, eng.SetPrimes(big.NewInt(1), big.NewInt(7)), textbook.ErrInvalidPrimes)
}

func TestEngine_UninitializedKey(t *testing.T) {
	eng := textbook.NewEngine(nil)

	_, err := eng.Encrypt("A")
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.Decrypt(big.NewInt(1))
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.Sign("A")
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.Verify(big.NewInt(1))
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.EncodePrivateKeyRecord()
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.EncodePrivateKeyPEM()
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = eng.KeyPair()
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
}

func TestKeyPair_ZeroValue(t *testing.T) {
	var kp textbook.KeyPair
	_, err := kp.Encrypt("A")
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = kp.Sign("A")
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	assert.ErrorIs(t, kp.VerifyMessage(big.NewInt(1), "A"), textbook.ErrUninitializedKey)

	var pk textbook.PublicKey
	_, err = pk.Encrypt("A")
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
	_, err = pk.EncodeRecord()
	assert.ErrorIs(t, err, textbook.ErrUninitializedKey)
}

func TestEngine_DelegatesToPair(t *testing.T) {
	eng := textbook.NewEngine(nil)
	_, err := eng.GenPair(8)
	require.NoError(t, err)

	c, err := eng.Encrypt("A")
	require.NoError(t, err)
	m, err := eng.Decrypt(c)
	require.NoError(t, err)
	assert.Equal(t, "A", m)

	s, err := eng.Sign("A")
	require.NoError(t, err)
	v, err := eng.Verify(s)
	require.NoError(t, err)
	assert.Equal(t, "A", v)
}
