package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPadsToFiveDigits(t *testing.T) {
	assert.Equal(t, "00000", Key(0))
	assert.Equal(t, "00042", Key(42))
	assert.Equal(t, "99999", Key(99999))
}

func TestInsertLoadsFixedDataset(t *testing.T) {
	db := New()
	assert.Equal(t, 0, db.Len())

	db.Insert()
	assert.Equal(t, Size, db.Len())
	assert.Equal(t, uint32(10186), db.Get("10186"))
	assert.Equal(t, uint32(10852), db.Get("10852"))
	assert.Equal(t, uint32(0), db.Get("00000"))
	assert.Equal(t, uint32(99999), db.Get("99999"))
}

func TestInsertIsIdempotent(t *testing.T) {
	db := New()
	db.Insert()
	db.Insert()
	assert.Equal(t, Size, db.Len())
	assert.Equal(t, uint32(12345), db.Get("12345"))
}

func TestGetMissingKeyReturnsZero(t *testing.T) {
	db := New()
	assert.Equal(t, uint32(0), db.Get("10186"), "empty database")

	db.Insert()
	for _, zip := range []string{"", "1018", "100000", "abcde", "10186 "} {
		assert.Equal(t, uint32(0), db.Get(zip), "zip %q", zip)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry[*Database]()
	h := r.Put(New())
	assert.NotZero(t, h)
	assert.Equal(t, 1, r.Live())

	db, err := r.Get(h)
	require.NoError(t, err)
	db.Insert()

	again, err := r.Get(h)
	require.NoError(t, err)
	assert.Same(t, db, again)

	taken, err := r.Take(h)
	require.NoError(t, err)
	assert.Same(t, db, taken)
	assert.Equal(t, 0, r.Live())

	_, err = r.Get(h)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	_, err = r.Take(h)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestRegistryNeverReusesHandles(t *testing.T) {
	r := NewRegistry[int]()
	first := r.Put(1)
	_, err := r.Take(first)
	require.NoError(t, err)

	second := r.Put(2)
	assert.NotEqual(t, first, second)

	_, err = r.Get(0)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestRegistryDrain(t *testing.T) {
	r := NewRegistry[string]()
	a := r.Put("a")
	r.Put("b")
	r.Put("c")
	_, err := r.Take(a)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, r.Drain())
	assert.Zero(t, r.Live())
	assert.Empty(t, r.Drain())
}
