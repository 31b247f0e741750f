package sql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations (Class 23).
const (
	pgIntegrityClass      = "23"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// sqlStateError is implemented by driver errors exposing a SQLSTATE code.
type sqlStateError interface {
	SQLState() string
}

// SQLState extracts the SQLSTATE code from a lib/pq, pgx or other
// SQLSTATE-aware driver error anywhere in the error chain.
func SQLState(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	var se sqlStateError
	if errors.As(err, &se) {
		return se.SQLState(), true
	}
	return "", false
}

// ConstraintName returns the name of the violated constraint, if the
// driver reported one.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsConstraintError returns true if the error resulted from any integrity
// constraint violation.
func IsConstraintError(err error) bool {
	if code, ok := SQLState(err); ok {
		return strings.HasPrefix(code, pgIntegrityClass)
	}
	return IsUniqueConstraintError(err) ||
		IsForeignKeyConstraintError(err) ||
		IsNotNullConstraintError(err) ||
		IsCheckConstraintError(err)
}

// IsUniqueConstraintError reports if the error resulted from a uniqueness
// constraint violation, e.g. creating an entity whose key already exists.
func IsUniqueConstraintError(err error) bool {
	return hasState(err, pgUniqueViolation, "violates unique constraint")
}

// IsForeignKeyConstraintError reports if the error resulted from a
// foreign-key constraint violation, e.g. a relation column pointing at a
// missing row.
func IsForeignKeyConstraintError(err error) bool {
	return hasState(err, pgForeignKeyViolation, "violates foreign key constraint")
}

// IsNotNullConstraintError reports if the error resulted from writing NULL
// into a NOT NULL column.
func IsNotNullConstraintError(err error) bool {
	return hasState(err, pgNotNullViolation, "violates not-null constraint")
}

// IsCheckConstraintError reports if the error resulted from a check
// constraint violation.
func IsCheckConstraintError(err error) bool {
	return hasState(err, pgCheckViolation, "violates check constraint")
}

// hasState matches the SQLSTATE code when the driver exposes one, and
// falls back to the server message otherwise.
func hasState(err error, code, message string) bool {
	if err == nil {
		return false
	}
	if c, ok := SQLState(err); ok {
		return c == code
	}
	return strings.Contains(err.Error(), message)
}
