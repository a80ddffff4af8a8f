package popdb

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/popdb-go/internal/loader"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/internal/backend"
)

var (
	// ErrLibraryNotFound indicates the shared library could not be opened.
	ErrLibraryNotFound = loader.ErrLibraryNotFound

	// ErrSymbolNotFound indicates the shared library lacks a required export.
	ErrSymbolNotFound = loader.ErrSymbolNotFound

	// ErrUnknownBackend indicates Config.Backend names no known backend.
	ErrUnknownBackend = backend.ErrUnknownBackend

	// ErrLibraryClosed indicates the Library has been closed.
	ErrLibraryClosed = errors.New("popdb: library closed")

	// ErrDatabaseClosed indicates the Database handle has been released.
	ErrDatabaseClosed = errors.New("popdb: database closed")

	// ErrInvalidZip indicates a postal code that cannot be passed to the
	// library.
	ErrInvalidZip = errors.New("popdb: invalid postal code")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("popdb: invalid config")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("popdb.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: RemapError(err)}
}

// RemapError converts backend errors to public API errors.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrUnknownHandle) {
		return ErrDatabaseClosed
	}
	return err
}
