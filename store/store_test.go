package store

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sss/bigint"
	"sss/config"
	"sss/recon"
)

func points(pairs ...int64) []recon.Point {
	out := make([]recon.Point, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, recon.Point{X: bigint.New(pairs[i]), Y: bigint.New(pairs[i+1])})
	}
	return out
}

func openMem(t *testing.T) *Store {
	t.Helper()
	s, err := Open(config.StoreConfig{Enabled: true, InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(2, "", points(1, 5, 2, 7))
	assert.Len(t, a, 32)
	assert.Equal(t, a, Fingerprint(2, "", points(1, 5, 2, 7)))

	assert.False(t, bytes.Equal(a, Fingerprint(3, "", points(1, 5, 2, 7))))
	assert.False(t, bytes.Equal(a, Fingerprint(2, "bn256", points(1, 5, 2, 7))))
	assert.False(t, bytes.Equal(a, Fingerprint(2, "", points(1, 5, 2, 8))))
	// "1:57" 与 "15:7" 不能碰撞
	assert.False(t, bytes.Equal(Fingerprint(1, "", points(1, 57)), Fingerprint(1, "", points(15, 7))))
}

func TestPutGet(t *testing.T) {
	s := openMem(t)
	fp := Fingerprint(2, "", points(1, 5, 2, 7))

	_, ok, err := s.Get(fp)
	require.NoError(t, err)
	assert.False(t, ok)

	secret, err := bigint.Parse("-79836264049851")
	require.NoError(t, err)
	e := Entry{Secret: secret, K: 2, Xs: []string{"1", "2"}, Created: time.Unix(1700000000, 0).UTC()}
	require.NoError(t, s.Put(fp, e))

	got, ok, err := s.Get(fp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Secret.Equal(secret))
	assert.Equal(t, 2, got.K)
	assert.Equal(t, []string{"1", "2"}, got.Xs)
	assert.True(t, got.Created.Equal(e.Created))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// 覆盖写不增加条目
	require.NoError(t, s.Put(fp, e))
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOnDiskReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ledger")
	cfg := config.StoreConfig{Enabled: true, Path: dir}
	fp := Fingerprint(1, "", points(5, 42))

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Put(fp, Entry{Secret: bigint.New(42), K: 1, Xs: []string{"5"}}))
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(fp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42", got.Secret.String())
}

func TestClosedStoreErrorsAreWrapped(t *testing.T) {
	s, err := Open(config.StoreConfig{Enabled: true, InMemory: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Count()
	require.ErrorIs(t, err, badger.ErrDBClosed)
	assert.Contains(t, err.Error(), "failed to count results")

	_, _, err = s.Get(Fingerprint(1, "", points(1, 1)))
	require.ErrorIs(t, err, badger.ErrDBClosed)
	assert.Contains(t, err.Error(), "failed to read result")
}
