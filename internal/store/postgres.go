package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Postgres implements Store on top of a bounded sqlx connection pool.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres connects to the database and sizes the pool. The caller is
// expected to treat a returned error as fatal at startup.
func NewPostgres(databaseURL string, maxOpenConns int) (*Postgres, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Healthcheck verifies the pool can still reach the database
func (s *Postgres) Healthcheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool
func (s *Postgres) Close() error {
	return s.db.Close()
}

// rowsAffected maps a zero-row update/delete to ErrNotFound so callers can
// distinguish "not found" from "success".
func rowsAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
