package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError_Nil(t *testing.T) {
	if err := MapError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	err := MapError(fmt.Errorf("scan appointment: %w", pgx.ErrNoRows))
	if !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique"}
	err := MapError(pgErr)
	if !IsConstraint(err) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
	if err.Error() != "constraint violation: users_email_unique" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "doctors_user_id_fkey"}
	if !IsConstraint(MapError(pgErr)) {
		t.Error("expected ErrConstraint for foreign-key violation")
	}
}

func TestMapError_OtherPgErrorPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	err := MapError(pgErr)
	if IsNotFound(err) || IsConstraint(err) {
		t.Fatalf("expected pass-through, got %v", err)
	}
	var out *pgconn.PgError
	if !errors.As(err, &out) {
		t.Error("expected original *pgconn.PgError to survive")
	}
}

func TestMapError_ConnectivityPassesThrough(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	err := MapError(cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected connectivity error unchanged, got %v", err)
	}
}
