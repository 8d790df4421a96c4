// Package database persists tracker progress in a SQLite settings table used
// as a flat key-value store.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle holding the settings table.
type Database struct {
	DB     *sql.DB
	dbFile string
	closed bool
}

// Open connects to the SQLite file at path, creating it and its schema when
// missing.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Key: path, Err: err}
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Path returns the file backing the database.
func (d *Database) Path() string {
	return d.dbFile
}

// Close releases the connection. Further calls return ErrStoreClosed.
func (d *Database) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create table", Key: "settings", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}
