package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect names supported by georm.
const (
	Postgres = "postgres"
)

// ExecQuerier wraps the standard ExecContext and QueryContext methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ ExecQuerier = (*sql.DB)(nil)
	_ ExecQuerier = (*sql.Tx)(nil)
	_ ExecQuerier = (*sql.Conn)(nil)
)

// Normalize maps a driver name to its dialect. Driver names such as "pgx"
// or "postgres-traced" resolve to Postgres.
func Normalize(name string) (string, error) {
	switch n := strings.ToLower(name); {
	case n == "":
		return Postgres, nil
	case strings.HasPrefix(n, Postgres), strings.HasPrefix(n, "pgx"):
		return Postgres, nil
	default:
		return "", fmt.Errorf("dialect: unsupported dialect %q", name)
	}
}
