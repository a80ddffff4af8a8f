// Package dataset holds the state that sits behind a popdb handle: a table of
// populations keyed by postal code, plus the registries that hand out opaque
// handles for it.
//
// The package is pure Go. The native library in cmd/libpopdb and the
// in-process backend of pkg/popdb both build on it, so every backend answers
// queries from the same data.
package dataset

import "fmt"

// Size is the number of postal codes loaded by Insert.
const Size = 100000

// Key formats i the way Insert does: five digits, zero padded.
func Key(i int) string {
	return fmt.Sprintf("%05d", i)
}

// Database maps postal codes to population figures.
//
// A Database is not safe for concurrent use.
type Database struct {
	data map[string]uint32
}

// New returns an empty Database.
func New() *Database {
	return &Database{data: make(map[string]uint32)}
}

// Insert loads the fixed test dataset: every code in [00000, 99999] maps to
// its own numeric value. Calling it again leaves the contents unchanged.
func (d *Database) Insert() {
	for i := 0; i < Size; i++ {
		d.data[Key(i)] = uint32(i)
	}
}

// Get returns the population for zip, or 0 when zip is unknown.
func (d *Database) Get(zip string) uint32 {
	return d.data[zip]
}

// Len reports how many postal codes are stored.
func (d *Database) Len() int {
	return len(d.data)
}
