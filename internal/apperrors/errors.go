// Package apperrors defines the error taxonomy shared by the repository,
// service, and handler layers. Every domain operation reports exactly one
// of these outcomes; handlers map them to HTTP statuses.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested entity, association, or
	// collection is absent. An empty collection is deliberately reported
	// as not-found rather than an empty success.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness or referential-integrity
	// constraint was violated at commit time.
	ErrConflict = errors.New("conflict")
)

// NotFound wraps ErrNotFound with a caller-facing message.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflict wraps ErrConflict with a caller-facing message.
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Postgres SQLSTATE classes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromDB translates a storage error into the taxonomy. GORM is opened with
// TranslateError, so duplicate-key and foreign-key violations arrive as
// gorm sentinels for both the Postgres and SQLite drivers; the pgconn
// check covers driver errors that escape that translation. Anything else
// passes through as an unexpected failure.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	return err
}
