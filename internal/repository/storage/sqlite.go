package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

const createResultsTable = `CREATE TABLE IF NOT EXISTS results (
	id          TEXT PRIMARY KEY,
	width       INTEGER NOT NULL,
	rules       TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	moves       INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
)`

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the results table when it does not exist yet.
func (that *Storage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, createResultsTable); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
