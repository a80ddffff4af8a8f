// Package loader finds, opens and binds the popdb shared library.
//
// Every branch on the host platform lives in this package: ResolveFilename
// for the naming convention and the dl_*.go files for the dynamic linker.
// Calls go through purego, so the client itself needs no cgo.
package loader

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

var (
	// ErrLibraryNotFound reports that the shared library could not be opened.
	ErrLibraryNotFound = errors.New("loader: library not found")

	// ErrSymbolNotFound reports that a required export is missing.
	ErrSymbolNotFound = errors.New("loader: symbol not found")
)

// Exported symbol names.
const (
	SymNew     = "database_new"
	SymFree    = "database_free"
	SymInsert  = "database_insert"
	SymQuery   = "database_query"
	SymVersion = "database_version"
)

// Library is an opened popdb shared library with its functions bound.
//
// Handles are the raw database_t pointers returned by the library. They are
// only ever passed back to it. A Library is never unloaded: the Go runtime
// inside libpopdb cannot be torn down once started.
type Library struct {
	path   string
	handle uintptr

	dbNew     func() uintptr
	dbFree    func(uintptr)
	dbInsert  func(uintptr)
	dbQuery   func(uintptr, string) uint32
	dbVersion func() string
}

// Open loads the library called base from dir using the host naming
// convention.
func Open(dir, base string) (*Library, error) {
	return Load(ResolveFilename(runtime.GOOS, dir, base))
}

// Load opens the shared library at path and binds its exports. The four
// database_* functions are required; database_version is optional.
func Load(path string) (*Library, error) {
	h, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, path, err)
	}

	l := &Library{path: path, handle: h}
	if err := l.bind(); err != nil {
		closeLibrary(h)
		return nil, err
	}
	return l, nil
}

type binding struct {
	name     string
	fptr     any
	required bool
}

func (l *Library) bind() error {
	// The declared Go types must match popdb.h exactly; a wrong return type
	// truncates the handle instead of failing.
	bindings := []binding{
		{SymNew, &l.dbNew, true},
		{SymFree, &l.dbFree, true},
		{SymInsert, &l.dbInsert, true},
		{SymQuery, &l.dbQuery, true},
		{SymVersion, &l.dbVersion, false},
	}
	for _, b := range bindings {
		addr, err := lookupSymbol(l.handle, b.name)
		if err != nil || addr == 0 {
			if !b.required {
				continue
			}
			return fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, b.name, l.path)
		}
		purego.RegisterFunc(b.fptr, addr)
	}
	return nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// New calls database_new.
func (l *Library) New() uintptr {
	return l.dbNew()
}

// Free calls database_free.
func (l *Library) Free(h uintptr) {
	l.dbFree(h)
}

// Insert calls database_insert.
func (l *Library) Insert(h uintptr) {
	l.dbInsert(h)
}

// Query calls database_query. purego copies zip into a NUL-terminated buffer
// that lives for the duration of the call.
func (l *Library) Query(h uintptr, zip string) uint32 {
	return l.dbQuery(h, zip)
}

// Version returns the library's self-reported version, or "" when it does not
// export database_version.
func (l *Library) Version() string {
	if l.dbVersion == nil {
		return ""
	}
	return l.dbVersion()
}
