// Command libpopdb is the popdb native library. It is not meant to be run;
// build it as a shared object and load it from any language with a C FFI:
//
//	go build -buildmode=c-shared -o lib/libpopdb.so ./cmd/libpopdb
//
// The exported ABI is declared in popdb.h. Handles returned to C are small
// C-allocated tokens, never Go pointers, so foreign callers may hold them for
// as long as they like.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct database_S database_t;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
)

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// cVersion is allocated once and never freed; callers only borrow it.
var cVersion = C.CString(Version)

// databases maps live tokens to their state.
var databases sync.Map

func newDatabase() unsafe.Pointer {
	ptr := C.malloc(1)
	if ptr == nil {
		panic("libpopdb: out of memory")
	}
	databases.Store(ptr, dataset.New())
	return ptr
}

func lookup(ptr unsafe.Pointer) (*dataset.Database, bool) {
	if ptr == nil {
		return nil, false
	}
	v, ok := databases.Load(ptr)
	if !ok {
		return nil, false
	}
	return v.(*dataset.Database), true
}

func freeDatabase(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	// Unknown tokens were not allocated here; leave them alone.
	if _, loaded := databases.LoadAndDelete(ptr); !loaded {
		return
	}
	C.free(ptr)
}

func insertDatabase(ptr unsafe.Pointer) {
	if db, ok := lookup(ptr); ok {
		db.Insert()
	}
}

func queryDatabase(ptr unsafe.Pointer, zip string) uint32 {
	db, ok := lookup(ptr)
	if !ok {
		return 0
	}
	return db.Get(zip)
}

//export database_new
func database_new() *C.database_t {
	return (*C.database_t)(newDatabase())
}

//export database_free
func database_free(ptr *C.database_t) {
	freeDatabase(unsafe.Pointer(ptr))
}

//export database_insert
func database_insert(ptr *C.database_t) {
	insertDatabase(unsafe.Pointer(ptr))
}

//export database_query
func database_query(ptr *C.database_t, zip *C.char) C.uint32_t {
	if zip == nil {
		return 0
	}
	return C.uint32_t(queryDatabase(unsafe.Pointer(ptr), C.GoString(zip)))
}

//export database_version
func database_version() *C.char {
	return cVersion
}

func main() {}
