package backend

import (
	"context"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
	"github.com/hsiuhsiu/popdb-go/internal/loader"
)

type nativeBackend struct {
	lib     *loader.Library
	handles *dataset.Registry[uintptr]
}

// OpenNative loads libpopdb from dir. An empty name means loader.DefaultBase.
func OpenNative(dir, name string) (Backend, error) {
	if name == "" {
		name = loader.DefaultBase
	}
	lib, err := loader.Open(dir, name)
	if err != nil {
		return nil, err
	}
	return &nativeBackend{lib: lib, handles: dataset.NewRegistry[uintptr]()}, nil
}

func (b *nativeBackend) Name() string { return Native }

func (b *nativeBackend) New(ctx context.Context) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ptr := b.lib.New()
	if ptr == 0 {
		return 0, ErrNullHandle
	}
	return b.handles.Put(ptr), nil
}

func (b *nativeBackend) Free(h Handle) error {
	ptr, err := b.handles.Take(h)
	if err != nil {
		return err
	}
	b.lib.Free(ptr)
	return nil
}

func (b *nativeBackend) Insert(ctx context.Context, h Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ptr, err := b.handles.Get(h)
	if err != nil {
		return err
	}
	b.lib.Insert(ptr)
	return nil
}

func (b *nativeBackend) Query(ctx context.Context, h Handle, zip string) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ptr, err := b.handles.Get(h)
	if err != nil {
		return 0, err
	}
	return b.lib.Query(ptr, zip), nil
}

func (b *nativeBackend) Version() string {
	return b.lib.Version()
}

func (b *nativeBackend) Close() error {
	for _, ptr := range b.handles.Drain() {
		b.lib.Free(ptr)
	}
	return nil
}
