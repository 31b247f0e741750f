package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/georm"
)

type stateErr string

func (e stateErr) Error() string    { return "state " + string(e) }
func (e stateErr) SQLState() string { return string(e) }

func TestConstraintErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "PQUnique", err: &pq.Error{Code: "23505"}, unique: true},
		{name: "PQForeignKey", err: &pq.Error{Code: "23503"}, foreignKey: true},
		{name: "PgxNotNull", err: &pgconn.PgError{Code: "23502"}, notNull: true},
		{name: "PgxCheck", err: &pgconn.PgError{Code: "23514"}, check: true},
		{name: "SQLStateUnique", err: stateErr("23505"), unique: true},
		{name: "Wrapped", err: georm.NewMutationError("Book", "create", fmt.Errorf("exec: %w", &pq.Error{Code: "23505"})), unique: true},
		{name: "MessageFallback", err: errors.New(`duplicate key value violates unique constraint "books_pkey"`), unique: true},
		{name: "OtherState", err: &pq.Error{Code: "42P01"}},
		{name: "Plain", err: errors.New("boom")},
		{name: "Nil", err: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueConstraintError(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyConstraintError(tt.err))
			assert.Equal(t, tt.notNull, IsNotNullConstraintError(tt.err))
			assert.Equal(t, tt.check, IsCheckConstraintError(tt.err))
			assert.Equal(t, tt.unique || tt.foreignKey || tt.notNull || tt.check, IsConstraintError(tt.err))
		})
	}
}

func TestSQLState(t *testing.T) {
	code, ok := SQLState(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "40001"}))
	assert.True(t, ok)
	assert.Equal(t, "40001", code)

	_, ok = SQLState(errors.New("plain"))
	assert.False(t, ok)
	_, ok = SQLState(nil)
	assert.False(t, ok)
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "books_pkey", ConstraintName(&pq.Error{Code: "23505", Constraint: "books_pkey"}))
	assert.Equal(t, "books_author_id_fkey", ConstraintName(&pgconn.PgError{Code: "23503", ConstraintName: "books_author_id_fkey"}))
	assert.Empty(t, ConstraintName(errors.New("plain")))
}
