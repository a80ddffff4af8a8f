package popdb

import (
	"context"
	"errors"
)

// WithDatabase creates a Database, passes it to fn and releases it when fn
// returns, including when fn panics. The error from fn takes precedence; a
// failed release is joined to it.
func WithDatabase(ctx context.Context, lib *Library, fn func(*Database) error) (err error) {
	db, err := lib.NewDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(db)
}
