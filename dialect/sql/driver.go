package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/syssam/georm/dialect"
)

// ExecQuerier is the connection handed to generated operations.
type ExecQuerier = dialect.ExecQuerier

// Open validates the driver name against the supported dialects and wraps
// the database/sql.Open method.
func Open(driverName, source string) (*sql.DB, error) {
	if _, err := dialect.Normalize(driverName); err != nil {
		return nil, err
	}
	return sql.Open(driverName, source)
}

// OpenContext opens the database and verifies the connection with a ping.
func OpenContext(ctx context.Context, driverName, source string) (*sql.DB, error) {
	db, err := Open(driverName, source)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("dialect/sql: ping: %w", err), db.Close())
	}
	return db, nil
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including when fn panics.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (rerr error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dialect/sql: begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("dialect/sql: rolling back transaction: %w", rerr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dialect/sql: commit transaction: %w", err)
	}
	return nil
}

type (
	// Result is an alias to sql.Result.
	Result = sql.Result
	// NullBool is an alias to sql.NullBool.
	NullBool = sql.NullBool
	// NullInt32 is an alias to sql.NullInt32.
	NullInt32 = sql.NullInt32
	// NullInt64 is an alias to sql.NullInt64.
	NullInt64 = sql.NullInt64
	// NullString is an alias to sql.NullString.
	NullString = sql.NullString
	// NullFloat64 is an alias to sql.NullFloat64.
	NullFloat64 = sql.NullFloat64
	// NullTime represents a time.Time that may be null.
	NullTime = sql.NullTime
)
