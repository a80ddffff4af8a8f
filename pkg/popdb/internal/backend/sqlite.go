package backend

import (
	"context"
	"errors"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
)

const sqliteVersion = "sqlite"

type sqliteBackend struct {
	path   string
	stores *dataset.Registry[*dataset.SQLiteStore]
}

// NewSQLite returns a backend that opens one SQLite connection per handle.
// With an empty path each handle gets a private memory database; otherwise
// the handles share the file at path, each confined to its own scope, and
// Free deletes the handle's rows.
func NewSQLite(path string) Backend {
	return &sqliteBackend{path: path, stores: dataset.NewRegistry[*dataset.SQLiteStore]()}
}

func (b *sqliteBackend) Name() string { return SQLite }

func (b *sqliteBackend) New(ctx context.Context) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s, err := dataset.OpenSQLiteScoped(b.path)
	if err != nil {
		return 0, err
	}
	return b.stores.Put(s), nil
}

func (b *sqliteBackend) Free(h Handle) error {
	s, err := b.stores.Take(h)
	if err != nil {
		return err
	}
	return s.Close()
}

func (b *sqliteBackend) Insert(ctx context.Context, h Handle) error {
	s, err := b.stores.Get(h)
	if err != nil {
		return err
	}
	return s.Insert(ctx)
}

func (b *sqliteBackend) Query(ctx context.Context, h Handle, zip string) (uint32, error) {
	s, err := b.stores.Get(h)
	if err != nil {
		return 0, err
	}
	return s.Get(ctx, zip)
}

func (b *sqliteBackend) Version() string { return sqliteVersion }

func (b *sqliteBackend) Close() error {
	var errs []error
	for _, s := range b.stores.Drain() {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
