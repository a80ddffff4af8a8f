package popdb

import (
	"sync"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb/internal/backend"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/logging"
)

// Library represents an opened popdb backend. For the native backend this is
// the loaded and bound shared library.
//
// A Library is safe for concurrent use; the Databases it creates are not.
// Every backend call runs under mu's read lock, so Close waits for calls in
// flight and no call starts after the handles are reclaimed.
type Library struct {
	cfg    Config
	be     backend.Backend
	logger logging.Logger

	mu     sync.RWMutex
	closed bool
}

// Open validates cfg, then loads and binds the selected backend. Failing to
// find the shared library returns ErrLibraryNotFound; a library without the
// required exports returns ErrSymbolNotFound.
func Open(cfg Config) (*Library, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	be, err := backend.Open(cfg.Backend, cfg.toBackend())
	if err != nil {
		return nil, opError("Open", err)
	}

	logger = logger.With("backend", be.Name())
	return &Library{cfg: cfg, be: be, logger: logger}, nil
}

// Close releases every Database still open on the library. It returns
// ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	return opError("Close", l.be.Close())
}

// Backend reports the name of the backend in use.
func (l *Library) Backend() string {
	return l.be.Name()
}

// Version returns the version reported by the backend. For the native backend
// it is the string exported by database_version, or "" if there is none.
func (l *Library) Version() string {
	return l.be.Version()
}

// Config returns the effective configuration, defaults applied.
func (l *Library) Config() Config {
	return l.cfg
}

// acquire read-locks l for one backend call. It fails once l is closed.
func (l *Library) acquire() error {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return ErrLibraryClosed
	}
	return nil
}

func (l *Library) release() {
	l.mu.RUnlock()
}
