package store

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	// ErrNotFound means the doctor, patient or email does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint was violated.
	ErrConflict = errors.New("duplicate record")
	// ErrNoFields means an update was requested with nothing to change.
	ErrNoFields = errors.New("no fields to update")
)

// Store runs all SQL against the pool. Every call acquires its own connection
// and releases it on all exit paths.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
