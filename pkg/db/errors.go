package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)

// WrapError translates driver errors into the package's sentinel errors.
// Errors that don't map to a sentinel are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateKey
	}

	// modernc.org/sqlite reports constraint violations as plain strings.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") {
		return ErrDuplicateKey
	}

	return err
}
