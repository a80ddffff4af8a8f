package popdb

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb/internal/backend"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/logging"
)

// Database owns one handle of a Library. The handle is created by
// NewDatabase and released exactly once by Close; every later call returns
// ErrDatabaseClosed.
//
// A Database is not safe for concurrent use, although concurrent Close calls
// still release the handle only once.
type Database struct {
	lib    *Library
	id     string
	logger logging.Logger

	mu sync.Mutex
	h  backend.Handle
}

// NewDatabase creates a new handle (database_new for the native backend).
func (l *Library) NewDatabase(ctx context.Context) (*Database, error) {
	if l == nil {
		return nil, opError("NewDatabase", ErrLibraryClosed)
	}
	if err := l.acquire(); err != nil {
		return nil, opError("NewDatabase", err)
	}
	h, err := l.be.New(ctx)
	l.release()
	if err != nil {
		return nil, opError("NewDatabase", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	d := &Database{lib: l, id: id, h: h, logger: l.logger.With("db", id)}
	runtime.SetFinalizer(d, func(d *Database) { _ = d.Close() })
	d.logger.Debug(ctx, "database created")
	return d, nil
}

// ID identifies the database in log output.
func (d *Database) ID() string {
	return d.id
}

// handle returns the live handle with the library read-locked. d.mu must be
// held; on success the caller must call d.lib.release after the backend call.
func (d *Database) handle() (backend.Handle, error) {
	if d.h == 0 {
		return 0, ErrDatabaseClosed
	}
	if err := d.lib.acquire(); err != nil {
		return 0, err
	}
	return d.h, nil
}

// Insert loads the fixed dataset (database_insert). Calling it again leaves
// the contents unchanged.
func (d *Database) Insert(ctx context.Context) error {
	if d == nil {
		return opError("Insert", ErrDatabaseClosed)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.handle()
	if err != nil {
		return opError("Insert", err)
	}
	err = d.lib.be.Insert(ctx, h)
	d.lib.release()
	if err != nil {
		return opError("Insert", err)
	}
	d.logger.Debug(ctx, "dataset inserted")
	runtime.KeepAlive(d)
	return nil
}

// Query returns the population for zip (database_query). The code is
// normalised with NormalizeZip first. Unknown codes yield 0 with no error.
func (d *Database) Query(ctx context.Context, zip string) (uint32, error) {
	if d == nil {
		return 0, opError("Query", ErrDatabaseClosed)
	}
	z, err := NormalizeZip(zip)
	if err != nil {
		return 0, opError("Query", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.handle()
	if err != nil {
		return 0, opError("Query", err)
	}
	pop, err := d.lib.be.Query(ctx, h, z)
	d.lib.release()
	if err != nil {
		return 0, opError("Query", err)
	}
	d.logger.Debug(ctx, "query", "zip", z, "population", pop)
	runtime.KeepAlive(d)
	return pop, nil
}

// Close releases the handle (database_free). It returns ErrDatabaseClosed
// when called again. If the owning Library was closed first the handle has
// already been reclaimed and Close only marks the Database released.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.h == 0 {
		return ErrDatabaseClosed
	}
	runtime.SetFinalizer(d, nil)
	h := d.h
	d.h = 0

	// A closed library has already reclaimed the handle.
	if d.lib.acquire() != nil {
		d.logger.Debug(context.Background(), "database released")
		return nil
	}
	err := d.lib.be.Free(h)
	d.lib.release()
	if errors.Is(err, backend.ErrUnknownHandle) {
		err = nil
	}
	if err != nil {
		return opError("Close", err)
	}
	d.logger.Debug(context.Background(), "database released")
	return nil
}
