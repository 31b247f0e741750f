// Package dialect names the database dialects georm generates code for and
// defines the connection contract shared by generated code and the runtime.
//
// # Supported Dialects
//
// Only PostgreSQL is supported:
//
//	dialect.Postgres = "postgres"
//
// # ExecQuerier Interface
//
// Every generated operation takes an ExecQuerier. The standard library's
// *sql.DB, *sql.Tx and *sql.Conn all satisfy it, so the same operation can
// run on a pool, inside a transaction, or on a pinned connection:
//
//	type ExecQuerier interface {
//	    ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
//	    QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
//	}
//
// # Sub-packages
//
//   - dialect/sql: query helpers, insert builder, constraint error checks and
//     statistics used by generated code
package dialect
