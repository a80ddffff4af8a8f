package backend

import (
	"context"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
)

// builtinVersion is reported in place of a native library version.
const builtinVersion = "builtin"

type builtinBackend struct {
	dbs *dataset.Registry[*dataset.Database]
}

// NewBuiltin returns a backend that keeps every database in this process.
func NewBuiltin() Backend {
	return &builtinBackend{dbs: dataset.NewRegistry[*dataset.Database]()}
}

func (b *builtinBackend) Name() string { return Builtin }

func (b *builtinBackend) New(ctx context.Context) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.dbs.Put(dataset.New()), nil
}

func (b *builtinBackend) Free(h Handle) error {
	_, err := b.dbs.Take(h)
	return err
}

func (b *builtinBackend) Insert(ctx context.Context, h Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db, err := b.dbs.Get(h)
	if err != nil {
		return err
	}
	db.Insert()
	return nil
}

func (b *builtinBackend) Query(ctx context.Context, h Handle, zip string) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	db, err := b.dbs.Get(h)
	if err != nil {
		return 0, err
	}
	return db.Get(zip), nil
}

func (b *builtinBackend) Version() string { return builtinVersion }

func (b *builtinBackend) Close() error {
	b.dbs.Drain()
	return nil
}
