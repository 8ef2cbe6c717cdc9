package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals that a lookup by id or key matched no row.
	ErrNotFound = errors.New("not found")

	// ErrConstraint signals that the store rejected a write because of a
	// uniqueness or foreign-key rule.
	ErrConstraint = errors.New("constraint violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError translates store-native failures into the access layer's error
// taxonomy. pgx.ErrNoRows becomes ErrNotFound; unique and foreign-key
// violations become ErrConstraint carrying the constraint name. Anything else
// (connectivity failures included) passes through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
		}
	}
	return err
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraint reports whether err is (or wraps) ErrConstraint.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
