// Package sql provides the Postgres dialect of the Jennifer generator.
//
// For every entity it renders one file next to the declaration:
//
//	{entity}_georm.go
//	├── {Entity}Table, {Entity}Columns   table name and column list
//	├── {Entity}ID                       composite key type, if any
//	├── ScanDest, GetID                  row mapping and key access
//	├── FindAll{Entities}, Find{Entity}  lookups
//	├── Create, Update, CreateOrUpdate   writes returning the stored row
//	├── Delete, Delete{Entity}ByID       deletes reporting affected rows
//	├── Get{Relation}                    relation accessors
//	└── {Entity}Default                  insert with database defaults
//
// Usage:
//
//	import (
//	    "github.com/syssam/georm/compiler/gen"
//	    "github.com/syssam/georm/compiler/gen/sql"
//	)
//
//	generator := gen.NewJenniferGenerator(graph)
//	generator.WithDialect(sql.NewDialect(generator))
//	generator.Generate(ctx)
package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/gen"
	"github.com/syssam/georm/dialect"
)

// Generate is a convenience function to generate the code of every entity
// of the graph using the Jennifer generator.
//
// Example:
//
//	import "github.com/syssam/georm/compiler/gen/sql"
//	err := sql.Generate(ctx, graph)
func Generate(ctx context.Context, g *gen.Graph) error {
	_, err := GenerateFiles(ctx, g)
	return err
}

// GenerateFiles is like Generate and returns the paths of the files it
// wrote.
func GenerateFiles(ctx context.Context, g *gen.Graph) ([]string, error) {
	generator := gen.NewJenniferGenerator(g)
	generator.WithDialect(NewDialect(generator))
	if err := generator.Generate(ctx); err != nil {
		return nil, err
	}
	return generator.Written(), nil
}

// Dialect implements gen.MinimalDialect for PostgreSQL.
//
// Generated statements use $n placeholders, RETURNING * on writes and
// INSERT ... ON CONFLICT for CreateOrUpdate, unless the fallback-upsert
// feature is enabled.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new SQL dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return dialect.Postgres
}

// GenEntity generates the entity file ({entity}_georm.go).
func (d *Dialect) GenEntity(t *gen.Type) (*jen.File, error) {
	return genEntity(d.helper, t)
}

// Compile-time check that Dialect implements gen.MinimalDialect.
var _ gen.MinimalDialect = (*Dialect)(nil)
