// Package postgres implements the store interfaces against a PostgreSQL
// database accessed through database/sql with the pgx driver.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wrenhall/newsdesk-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// invalidTextRepresentationCode is the PostgreSQL error code for cast
	// failures, e.g. a non-numeric string reaching an integer column
	invalidTextRepresentationCode = "22P02"

	// numericValueOutOfRangeCode is the PostgreSQL error code for numeric
	// overflow during coercion
	numericValueOutOfRangeCode = "22003"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
// This function is the single place storage failures are classified; every
// database operation routes its errors through it so that callers only ever
// see the store sentinels, never raw driver errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w (%s): %v",
				store.ErrForeignKeyViolation,
				pgErr.ConstraintName,
				err,
			)
		case invalidTextRepresentationCode, numericValueOutOfRangeCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidType, err)
		}
	}

	// Anything else propagates unclassified.
	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key
// constraint violation. This occurs when an insert references a row that does
// not exist, e.g. a comment posted under an unknown username.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsNotFoundError checks if the given error represents a "not found" scenario.
// This handles both sql.ErrNoRows and errors that are or wrap store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}

// CheckRowsAffected examines the number of rows affected by a database
// operation. If no rows were affected, it returns a not-found error, wrapping
// notFoundErr when one is supplied. This makes a single conditional UPDATE or
// DELETE report the same outcome as a lookup of an absent row, without a
// separate existence round-trip.
func CheckRowsAffected(result sql.Result, notFoundErr error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFoundErr == nil {
			return store.ErrNotFound
		}
		return notFoundErr
	}

	return nil
}
