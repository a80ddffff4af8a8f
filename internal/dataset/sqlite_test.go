package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreMatchesDatabase(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite("")
	require.NoError(t, err)
	defer s.Close()

	pop, err := s.Get(ctx, "10186")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), pop, "empty store")

	require.NoError(t, s.Insert(ctx))

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size, n)

	ref := New()
	ref.Insert()
	for _, zip := range []string{"00000", "10186", "10852", "99999", "nope"} {
		got, err := s.Get(ctx, zip)
		require.NoError(t, err)
		assert.Equal(t, ref.Get(zip), got, "zip %q", zip)
	}
}

func TestSQLiteStoreInsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Insert(ctx))
	require.NoError(t, s.Insert(ctx))

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, Size, n)
}

func TestSQLiteMemoryStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, err := OpenSQLite("")
	require.NoError(t, err)
	defer a.Close()
	b, err := OpenSQLite("")
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.Name(), b.Name())
	require.NoError(t, a.Insert(ctx))

	n, err := b.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteWritePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pop.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, func(put func(string, uint32) error) error {
		return put("10852", 10852)
	}))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	pop, err := reopened.Get(ctx, "10852")
	require.NoError(t, err)
	assert.Equal(t, uint32(10852), pop)
	assert.Equal(t, path, reopened.Name())
}

func TestSQLiteWriteRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite("")
	require.NoError(t, err)
	defer s.Close()

	boom := errors.New("boom")
	err = s.Write(ctx, func(put func(string, uint32) error) error {
		require.NoError(t, put("10186", 1))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteScopedStoresShareFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pop.db")

	a, err := OpenSQLiteScoped(path)
	require.NoError(t, err)
	b, err := OpenSQLiteScoped(path)
	require.NoError(t, err)
	defer b.Close()
	assert.NotEqual(t, a.Scope(), b.Scope())

	require.NoError(t, a.Insert(ctx))

	pop, err := b.Get(ctx, "10186")
	require.NoError(t, err)
	assert.Zero(t, pop, "other scope is invisible")
	n, err := b.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, a.Close())

	c, err := OpenSQLiteScoped(path)
	require.NoError(t, err)
	defer c.Close()
	pop, err = c.Get(ctx, "10186")
	require.NoError(t, err)
	assert.Zero(t, pop, "fresh scope starts empty")

	var total int
	require.NoError(t, c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM populations").Scan(&total))
	assert.Zero(t, total, "closed scope left rows behind")
}

func TestSQLiteUnscopedRowsSurviveScopedClose(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pop.db")

	u, err := OpenSQLite(path)
	require.NoError(t, err)
	defer u.Close()
	assert.Empty(t, u.Scope())
	require.NoError(t, u.Write(ctx, func(put func(string, uint32) error) error {
		return put("10852", 10852)
	}))

	s, err := OpenSQLiteScoped(path)
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx))
	require.NoError(t, s.Close())

	pop, err := u.Get(ctx, "10852")
	require.NoError(t, err)
	assert.Equal(t, uint32(10852), pop)
	n, err := u.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
