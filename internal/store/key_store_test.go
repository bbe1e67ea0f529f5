package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lilrsa/internal/domain"
	"lilrsa/internal/store"
)

// testScryptN keeps key derivation cheap in tests.
const testScryptN = 1 << 4

func newMeta(created int64) domain.KeyMeta {
	return domain.KeyMeta{
		ID:          domain.KeyID(uuid.NewString()),
		Tier:        8,
		Bits:        53,
		Fingerprint: "aaaa:bbbb:cccc:dddd:eeee",
		CreatedUTC:  created,
	}
}

func TestKey_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var ks domain.KeyStore = store.NewKeyFileStore(home, testScryptN, nil)

	meta := newMeta(100)
	record := []byte{0x30, 0x03, 0x02, 0x01, 0x00}
	require.NoError(t, ks.SaveKey("pass", meta, record))

	gotMeta, gotRecord, err := ks.LoadKey("pass", meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta, gotMeta)
	assert.Equal(t, record, gotRecord)

	info, err := os.Stat(filepath.Join(home, "keys", meta.ID.String()+".key.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKey_WrongPassphrase_Fails(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir(), testScryptN, nil)
	meta := newMeta(1)
	require.NoError(t, ks.SaveKey("correct", meta, []byte("record")))

	_, _, err := ks.LoadKey("wrong", meta.ID)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKey_TamperedMeta_Fails(t *testing.T) {
	home := t.TempDir()
	ks := store.NewKeyFileStore(home, testScryptN, nil)
	meta := newMeta(1)
	require.NoError(t, ks.SaveKey("pass", meta, []byte("record")))

	path := filepath.Join(home, "keys", meta.ID.String()+".key.json")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	tampered := meta
	tampered.Tier = 256
	doc["meta"], err = json.Marshal(tampered)
	require.NoError(t, err)
	raw, err = json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	_, _, err = ks.LoadKey("pass", meta.ID)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKey_FileCopiedOverAnotherID_Fails(t *testing.T) {
	home := t.TempDir()
	ks := store.NewKeyFileStore(home, testScryptN, nil)
	a, b := newMeta(1), newMeta(2)
	require.NoError(t, ks.SaveKey("pass", a, []byte("A-record")))
	require.NoError(t, ks.SaveKey("pass", b, []byte("B-record")))

	keyPath := func(m domain.KeyMeta) string {
		return filepath.Join(home, "keys", m.ID.String()+".key.json")
	}
	raw, err := os.ReadFile(keyPath(a))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(keyPath(b), raw, 0o600))

	meta, record, err := ks.LoadKey("pass", b.ID)
	assert.ErrorIs(t, err, store.ErrKeyMismatch)
	assert.Empty(t, meta.ID)
	assert.Nil(t, record)

	_, record, err = ks.LoadKey("pass", a.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("A-record"), record)

	list, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Equal(t, []domain.KeyMeta{a}, list)
}

func TestKey_NotFound(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir(), testScryptN, nil)
	_, _, err := ks.LoadKey("pass", domain.KeyID(uuid.NewString()))
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestKey_InvalidID(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir(), testScryptN, nil)
	_, _, err := ks.LoadKey("pass", "../../etc/passwd")
	assert.ErrorIs(t, err, store.ErrInvalidKeyID)

	meta := newMeta(1)
	meta.ID = "not-a-uuid"
	assert.ErrorIs(t, ks.SaveKey("pass", meta, nil), store.ErrInvalidKeyID)
}

func TestKey_List(t *testing.T) {
	home := t.TempDir()
	ks := store.NewKeyFileStore(home, testScryptN, nil)

	empty, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, empty)

	second := newMeta(200)
	first := newMeta(100)
	require.NoError(t, ks.SaveKey("a", second, []byte("2")))
	require.NoError(t, ks.SaveKey("b", first, []byte("1")))
	require.NoError(t, os.WriteFile(filepath.Join(home, "keys", "notes.txt"), []byte("x"), 0o600))

	got, err := ks.ListKeys()
	require.NoError(t, err)
	assert.Equal(t, []domain.KeyMeta{first, second}, got)
}
