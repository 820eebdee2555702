// Package db provides database interface and connection management for
// ClubReads.
package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

// DB is the database connection.
type DB struct {
	*sqlx.DB
	logger *log.Logger
}

// Open opens a database connection.
func Open(ctx context.Context, driverName string, dsn string) (*DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err //nolint:wrapcheck
	}

	d := &DB{
		DB:     db,
		logger: log.FromContext(ctx).WithPrefix("db"),
	}

	return d, nil
}

// Tx is a database transaction.
type Tx struct {
	*sqlx.Tx
	logger *log.Logger
}

// Transaction executes the given function within a transaction.
func (d *DB) Transaction(fn func(tx *Tx) error) error {
	return d.TransactionContext(context.Background(), fn)
}

// TransactionContext executes the given function within a transaction.
// If the function returns an error, the transaction is rolled back.
func (d *DB) TransactionContext(ctx context.Context, fn func(tx *Tx) error) error {
	txx, err := d.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err //nolint:wrapcheck
	}

	tx := &Tx{Tx: txx, logger: d.logger}
	if err := fn(tx); err != nil {
		if rerr := txx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			d.logger.Error("failed to rollback transaction", "err", rerr)
		}

		return err
	}

	return txx.Commit() //nolint:wrapcheck
}
