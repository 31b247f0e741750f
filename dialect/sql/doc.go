// Package sql is the runtime used by georm generated code.
//
// Generated operations are thin wrappers over the helpers in this package:
//
//   - QueryAll, QueryOne and QueryOptional run a statement and scan every
//     result row through the entity's ScanDest method
//   - Exec runs a statement and reports the affected row count
//   - InsertBuilder renders an INSERT whose column list, VALUES list and
//     argument list come from a single slice of (column, value) pairs
//
// # Connections
//
// Every helper takes a dialect.ExecQuerier, so *sql.DB, *sql.Tx and
// *sql.Conn work interchangeably:
//
//	db, err := sql.Open("postgres", dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	book, err := models.FindBook(ctx, db, 1)
//
// Wrap the connection with NewStatsDB to collect statement statistics and
// log slow statements:
//
//	stats := sql.NewStatsDB(db, sql.WithSlowThreshold(200*time.Millisecond), sql.WithSlowQueryLog())
//	books, err := models.FindAllBooks(ctx, stats)
//
// # Constraint Errors
//
// IsUniqueConstraintError, IsForeignKeyConstraintError,
// IsNotNullConstraintError and IsCheckConstraintError classify backend
// errors from both lib/pq and pgx:
//
//	if _, err := book.Create(ctx, db); sql.IsUniqueConstraintError(err) {
//	    // a book with this key already exists
//	}
package sql
