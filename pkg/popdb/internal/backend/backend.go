// Package backend hosts the implementations behind a popdb Library. The
// native backend talks to libpopdb through internal/loader; the builtin and
// sqlite backends answer the same four operations in process.
//
// Every backend hands out registry handles rather than raw native values, so
// a handle that was already freed is reported as ErrUnknownHandle instead of
// reaching the library a second time.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
)

// Handle identifies one database inside a Backend.
type Handle = dataset.Handle

// Backend names.
const (
	Native  = "native"
	Builtin = "builtin"
	SQLite  = "sqlite"
)

var (
	// ErrUnknownHandle reports a handle that was never issued or is freed.
	ErrUnknownHandle = dataset.ErrUnknownHandle

	// ErrUnknownBackend reports an unsupported backend name.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrNullHandle reports that database_new returned NULL.
	ErrNullHandle = errors.New("backend: native library returned a null handle")
)

// Backend is the create/insert/query/destroy contract of popdb.
//
// Close must not overlap any other call: a handle looked up before Close
// drains the registry would reach freed native memory. popdb.Library
// serialises Close against everything else.
type Backend interface {
	Name() string
	New(ctx context.Context) (Handle, error)
	Free(h Handle) error
	Insert(ctx context.Context, h Handle) error
	Query(ctx context.Context, h Handle, zip string) (uint32, error)
	Version() string

	// Close frees every handle still live.
	Close() error
}

// Options carries the settings that any backend may need.
type Options struct {
	LibraryDir  string
	LibraryName string
	SQLitePath  string
}

// Open returns the backend called name.
func Open(name string, opts Options) (Backend, error) {
	switch name {
	case Native:
		return OpenNative(opts.LibraryDir, opts.LibraryName)
	case Builtin:
		return NewBuiltin(), nil
	case SQLite:
		return NewSQLite(opts.SQLitePath), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
