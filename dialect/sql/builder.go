package sql

import (
	"strconv"
	"strings"
)

// Placeholder returns the Postgres positional placeholder for the i-th
// argument, starting at 1.
func Placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

// InsertBuilder renders an INSERT ... RETURNING * statement from an ordered
// list of (column, value) pairs. The column list, the VALUES placeholders
// and the argument list are all derived from the same pairs, so they can
// never disagree.
type InsertBuilder struct {
	table   string
	columns []string
	args    []any
}

// Insert returns a builder for inserting into table.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set appends a column and its value.
func (b *InsertBuilder) Set(column string, v any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.args = append(b.args, v)
	return b
}

// Columns returns the columns appended so far.
func (b *InsertBuilder) Columns() []string {
	return b.columns
}

// Query returns the statement and its arguments. A builder without columns
// inserts a row made entirely of column defaults.
func (b *InsertBuilder) Query() (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.table)
	if len(b.columns) == 0 {
		sb.WriteString(" DEFAULT VALUES RETURNING *")
		return sb.String(), nil
	}
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(") VALUES (")
	for i := range b.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Placeholder(i + 1))
	}
	sb.WriteString(") RETURNING *")
	return sb.String(), b.args
}
