package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syssam/georm"
)

// Scanner is implemented by generated entities. ScanDest returns one scan
// destination per result column; columns the entity does not map are
// scanned into throwaway values.
type Scanner interface {
	ScanDest(columns []string) []any
}

// scannerPtr is satisfied by *T when *T implements Scanner.
type scannerPtr[T any] interface {
	*T
	Scanner
}

// QueryAll runs the query and returns every result row as a *T.
func QueryAll[T any, P scannerPtr[T]](ctx context.Context, db ExecQuerier, query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: query: %w", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: columns: %w", err)
	}
	nodes := make([]*T, 0)
	for rows.Next() {
		node, err := scanRow[T, P](rows, columns)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dialect/sql: rows: %w", err)
	}
	return nodes, nil
}

// QueryOptional runs the query and returns its single result row, or nil
// when the query yields no rows. More than one row is a
// *georm.NotSingularError labeled with label.
func QueryOptional[T any, P scannerPtr[T]](ctx context.Context, db ExecQuerier, label, query string, args ...any) (*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: query: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("dialect/sql: rows: %w", err)
		}
		return nil, nil
	}
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: columns: %w", err)
	}
	node, err := scanRow[T, P](rows, columns)
	if err != nil {
		return nil, err
	}
	if rows.Next() {
		return nil, georm.NewNotSingularError(label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dialect/sql: rows: %w", err)
	}
	return node, nil
}

// QueryOne is like QueryOptional, but a query that yields no rows is a
// *georm.NotFoundError labeled with label.
func QueryOne[T any, P scannerPtr[T]](ctx context.Context, db ExecQuerier, label, query string, args ...any) (*T, error) {
	node, err := QueryOptional[T, P](ctx, db, label, query, args...)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, georm.NewNotFoundError(label)
	}
	return node, nil
}

// Exec runs the statement and returns the number of affected rows.
func Exec(ctx context.Context, db ExecQuerier, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("dialect/sql: exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("dialect/sql: rows affected: %w", err)
	}
	return n, nil
}

func scanRow[T any, P scannerPtr[T]](rows *sql.Rows, columns []string) (*T, error) {
	node := new(T)
	if err := rows.Scan(P(node).ScanDest(columns)...); err != nil {
		return nil, fmt.Errorf("dialect/sql: scan: %w", err)
	}
	return node, nil
}
