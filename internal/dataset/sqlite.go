package dataset

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps a population table in SQLite. It answers the same
// operations as Database, but the rows can live on disk.
//
// Every row carries a scope. A store reads and writes only its own scope, so
// several stores can share one file without seeing each other's rows.
type SQLiteStore struct {
	db    *sql.DB
	name  string
	scope string
}

// OpenSQLite opens or creates the SQLite database at path. An empty path
// opens a private in-memory database that disappears on Close. The store
// uses the unnamed scope and its rows outlive Close.
func OpenSQLite(path string) (*SQLiteStore, error) {
	return openSQLite(path, "")
}

// OpenSQLiteScoped is OpenSQLite with a fresh scope. The store starts empty
// even when the file holds rows, and Close deletes what it wrote.
func OpenSQLiteScoped(path string) (*SQLiteStore, error) {
	return openSQLite(path, uuid.Must(uuid.NewV7()).String())
}

func openSQLite(path, scope string) (*SQLiteStore, error) {
	name := path
	dsn := path
	if path == "" {
		name = "popdb-" + uuid.Must(uuid.NewV7()).String()
		dsn = "file:" + name + "?mode=memory&cache=shared"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One writer; the idle connection also keeps a memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if path != "" {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragmas: %w", err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &SQLiteStore{db: db, name: name, scope: scope}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Name is the file path, or the generated name of a memory database.
func (s *SQLiteStore) Name() string {
	return s.name
}

// Scope is the row scope of the store; "" for OpenSQLite.
func (s *SQLiteStore) Scope() string {
	return s.scope
}

// Close closes the database connection. A scoped store deletes its rows
// first.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	var errs []error
	if s.scope != "" {
		if _, err := s.db.Exec("DELETE FROM populations WHERE scope = ?", s.scope); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete scope %s: %w", s.scope, err))
		}
	}
	errs = append(errs, s.db.Close())
	s.db = nil
	return errors.Join(errs...)
}

// Insert loads the same fixed dataset as Database.Insert in one transaction.
func (s *SQLiteStore) Insert(ctx context.Context) error {
	return s.Write(ctx, func(put func(string, uint32) error) error {
		for i := 0; i < Size; i++ {
			if err := put(Key(i), uint32(i)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Write runs fill inside one transaction. Every put replaces the row with the
// same key. An error from fill rolls the transaction back.
func (s *SQLiteStore) Write(ctx context.Context, fill func(put func(string, uint32) error) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO populations (scope, zip, population) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	put := func(zip string, pop uint32) error {
		if _, err := stmt.ExecContext(ctx, s.scope, zip, int64(pop)); err != nil {
			return fmt.Errorf("failed to insert %q: %w", zip, err)
		}
		return nil
	}
	if err := fill(put); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Get returns the population for zip, or 0 when zip is unknown.
func (s *SQLiteStore) Get(ctx context.Context, zip string) (uint32, error) {
	var pop int64
	err := s.db.QueryRowContext(ctx, "SELECT population FROM populations WHERE scope = ? AND zip = ?", s.scope, zip).Scan(&pop)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query %q: %w", zip, err)
	}
	return uint32(pop), nil
}

// Len reports how many postal codes are stored.
func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM populations WHERE scope = ?", s.scope).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
