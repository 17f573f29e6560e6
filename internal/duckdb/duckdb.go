// Package duckdb wraps the DuckDB driver behind the small surface the
// loader and dashboard need: an opened handle, queries, and table metadata.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/dugout-labs/rotodash/internal/fault"
)

// DB is an open DuckDB database handle.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// Open opens (creating if necessary) the DuckDB file at path for writing.
// Use ":memory:" for an in-memory database.
func Open(ctx context.Context, path string) (*DB, error) {
	return open(ctx, path, false)
}

// OpenReadOnly opens an existing DuckDB file for reading. A missing file is
// a NotFoundError so the dashboard can show an empty state instead of
// creating an empty database as a side effect of browsing.
func OpenReadOnly(ctx context.Context, path string) (*DB, error) {
	if path != ":memory:" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, &fault.NotFoundError{Resource: "database file " + path}
		}
	}
	return open(ctx, path, true)
}

func open(ctx context.Context, path string, readOnly bool) (*DB, error) {
	dsn := path
	if readOnly && path != ":memory:" {
		dsn = path + "?access_mode=read_only"
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, &fault.StorageError{Path: path, Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &fault.StorageError{Path: path, Err: err}
	}

	return &DB{db: db, path: path, readOnly: readOnly}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Path returns the database file path this handle was opened with.
func (d *DB) Path() string { return d.path }

// Handle exposes the underlying *sql.DB for ad-hoc queries (CLI query
// command, tests).
func (d *DB) Handle() *sql.DB { return d.db }

// ExecContext executes a statement that returns no rows.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) error {
	if d.db == nil {
		return &fault.StorageError{Path: d.path, Err: errNotOpen}
	}
	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return &fault.StorageError{Path: d.path, Err: err}
	}
	return nil
}

// QueryContext executes a query returning rows. rows.Err() must be checked
// by the caller after iteration.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if d.db == nil {
		return nil, &fault.StorageError{Path: d.path, Err: errNotOpen}
	}
	//nolint:rowserrcheck // rows.Err() is the caller's responsibility
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &fault.StorageError{Path: d.path, Err: err}
	}
	return rows, nil
}

// BeginTx starts a transaction.
func (d *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	if d.db == nil {
		return nil, &fault.StorageError{Path: d.path, Err: errNotOpen}
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &fault.StorageError{Path: d.path, Err: err}
	}
	return tx, nil
}

// TableExists reports whether a table is present in the main schema.
func (d *DB) TableExists(ctx context.Context, table string) (bool, error) {
	if d.db == nil {
		return false, &fault.StorageError{Path: d.path, Err: errNotOpen}
	}

	var count int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'main' AND table_name = ?
	`, table).Scan(&count)
	if err != nil {
		return false, &fault.StorageError{Path: d.path, Err: err}
	}
	return count > 0, nil
}

// Column describes one column of a table.
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Position int
}

// TableMetadata returns column metadata and an approximate row count for a
// table in the main schema. An absent table is a NotFoundError.
func (d *DB) TableMetadata(ctx context.Context, table string) ([]Column, int64, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, ordinal_position
		FROM information_schema.columns
		WHERE table_schema = 'main' AND table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	var columns []Column
	for rows.Next() {
		var col Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.Type, &nullable, &col.Position); err != nil {
			return nil, 0, fmt.Errorf("scanning column metadata: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating column metadata: %w", err)
	}

	if len(columns) == 0 {
		return nil, 0, &fault.NotFoundError{Resource: "table " + table}
	}

	var rowCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM main.%s", table) //nolint:gosec // table name comes from information_schema above
	if err := d.db.QueryRowContext(ctx, countQuery).Scan(&rowCount); err != nil {
		rowCount = 0
	}

	return columns, rowCount, nil
}

var errNotOpen = fmt.Errorf("database connection not established")
