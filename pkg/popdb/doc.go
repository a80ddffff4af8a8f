// Package popdb is the Go client for libpopdb, a native library that answers
// population lookups by postal code through four C functions:
//
//	database_new, database_insert, database_query, database_free
//
// Open loads and binds the library; NewDatabase creates a handle, and the
// returned Database releases it exactly once in Close. WithDatabase scopes a
// Database to a function call:
//
//	lib, err := popdb.Open(popdb.Config{Library: popdb.LibraryConfig{Dir: "lib"}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer lib.Close()
//
//	err = popdb.WithDatabase(ctx, lib, func(db *popdb.Database) error {
//		if err := db.Insert(ctx); err != nil {
//			return err
//		}
//		pop, err := db.Query(ctx, "10186")
//		...
//	})
//
// # Backends
//
// Config.Backend picks where the four operations run. "native" calls the
// shared library; "builtin" and "sqlite" implement the same contract in
// process, which is what the tests and machines without the library use.
//
// # Errors
//
// Loading failures return ErrLibraryNotFound or ErrSymbolNotFound. Using a
// Database after Close returns ErrDatabaseClosed. The library itself has no
// error channel: an unknown postal code simply yields 0.
package popdb
