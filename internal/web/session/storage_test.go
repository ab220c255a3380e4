package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshelf/linkshelf/internal/db/dbtest"
)

func newTestStorage(t *testing.T) (*GormStorage, *time.Time) {
	t.Helper()

	clock := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := NewGormStorage(dbtest.New(t))
	s.now = func() time.Time { return clock }

	return s, &clock
}

func TestGormStorageSetGet(t *testing.T) {
	s, _ := newTestStorage(t)

	v, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set("k", []byte("one"), time.Hour))
	require.NoError(t, s.Set("k", []byte("two"), time.Hour))

	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	require.NoError(t, s.Delete("k"))
	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGormStorageExpiry(t *testing.T) {
	s, clock := newTestStorage(t)

	require.NoError(t, s.Set("short", []byte("x"), time.Minute))
	require.NoError(t, s.Set("forever", []byte("y"), 0))

	*clock = clock.Add(2 * time.Minute)

	v, err := s.Get("short")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = s.Get("forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), v)

	n, err := s.GC()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGormStorageReset(t *testing.T) {
	s, _ := newTestStorage(t)

	require.NoError(t, s.Set("a", []byte("1"), time.Hour))
	require.NoError(t, s.Set("b", []byte("2"), time.Hour))
	require.NoError(t, s.Reset())

	v, err := s.Get("a")
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, s.Close())
}
