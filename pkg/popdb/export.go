package popdb

import (
	"context"

	"github.com/hsiuhsiu/popdb-go/internal/dataset"
)

// ExportSQLite inserts the dataset into a fresh Database and copies every
// postal code it answers for into the SQLite file at path. It returns the
// number of rows written.
func ExportSQLite(ctx context.Context, lib *Library, path string) (int, error) {
	store, err := dataset.OpenSQLite(path)
	if err != nil {
		return 0, opError("ExportSQLite", err)
	}
	defer store.Close()

	rows := 0
	err = WithDatabase(ctx, lib, func(db *Database) error {
		if err := db.Insert(ctx); err != nil {
			return err
		}
		return store.Write(ctx, func(put func(string, uint32) error) error {
			for i := 0; i < dataset.Size; i++ {
				zip := dataset.Key(i)
				pop, err := db.Query(ctx, zip)
				if err != nil {
					return err
				}
				if err := put(zip, pop); err != nil {
					return err
				}
				rows++
			}
			return nil
		})
	})
	if err != nil {
		return 0, opError("ExportSQLite", err)
	}
	lib.logger.Info(ctx, "export finished", "path", path, "rows", rows)
	return rows, nil
}
