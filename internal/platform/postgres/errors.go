package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store-level error conditions. Callers match these with errors.Is; the
// underlying driver error stays wrapped for debugging.
var (
	// ErrNotFound indicates that the requested question does not exist.
	ErrNotFound = errors.New("question not found")

	// ErrDuplicate indicates a unique constraint violation, typically a
	// question text that is already stored.
	ErrDuplicate = errors.New("question already exists")

	// ErrInvalidRecord indicates the record violated a schema constraint.
	ErrInvalidRecord = errors.New("invalid question record")
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// mapError maps a database error to a store-level error, preserving the
// original error in the chain. Every database operation routes its errors
// through here so callers see a consistent taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case foreignKeyViolationCode, checkViolationCode, notNullViolationCode:
			return fmt.Errorf(
				"%w: constraint violation (%s): %v",
				ErrInvalidRecord,
				pgErr.ConstraintName,
				err,
			)
		}
	}

	return err
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
