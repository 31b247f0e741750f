// Package compiler runs the georm code generation pipeline: it loads the
// entity declarations of Go packages, builds the schema graph and writes one
// {entity}_georm.go file per entity.
//
//	written, err := compiler.Generate(ctx, []string{"./models"},
//	    gen.WithFeatures(gen.FeatureFallbackUpsert),
//	)
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/georm/compiler/gen"
	"github.com/syssam/georm/compiler/gen/sql"
	"github.com/syssam/georm/compiler/load"
)

// LoadGraph loads the packages matching patterns and builds their schema
// graph.
func LoadGraph(ctx context.Context, patterns []string, opts ...gen.Option) (*gen.Graph, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	schemas, err := load.Packages(ctx, patterns...)
	if err != nil {
		return nil, err
	}
	if len(schemas) == 0 {
		return nil, fmt.Errorf("compiler: no entities found in %v", patterns)
	}
	return gen.NewGraph(cfg, schemas...)
}

// Generate loads the packages matching patterns and generates the code of
// their entities. It returns the paths of the files written.
func Generate(ctx context.Context, patterns []string, opts ...gen.Option) ([]string, error) {
	graph, err := LoadGraph(ctx, patterns, opts...)
	if err != nil {
		return nil, err
	}
	return sql.GenerateFiles(ctx, graph)
}
