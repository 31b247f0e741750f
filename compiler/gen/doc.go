// Package gen turns entity declarations into a graph of types and renders
// the database access code of every entity.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Entity declarations (//georm: directives, db and georm tags)
//	        ↓
//	   compiler/load (load.Schema)
//	        ↓
//	   Graph (types, key shapes, resolved relations)
//	        ↓
//	   Queries (SQL text with bind sources, validated)
//	        ↓
//	   MinimalDialect (compiler/gen/sql)
//	        ↓
//	   <entity>_georm.go next to each declaration
//
// # Key Types
//
//   - Graph: Holds all Type definitions and the diagnostics of the run
//   - Type: An entity with its table, fields, key shape and relations
//   - Field: A mapped struct field and its column
//   - IDShape: SimpleID or CompositeID
//   - Relation: FieldOneToOne, OneToOne, OneToMany or ManyToMany
//   - Query: A statement and the source of each of its arguments
//   - Config: Global configuration for code generation
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: Invalid entity declarations
//   - ConfigError: Configuration errors
//   - RelationError: Unresolvable or conflicting relations
//   - GenerationError: Query validation, rendering and write errors
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, schemas...)
//	if err != nil {
//	    if gen.IsRelationError(err) {
//	        // Handle relation-specific error
//	    }
//	    return err
//	}
//
// Relations declared on an entity with a composite key are not generated.
// NewGraph records a Diagnostic for each of them and logs it at WARN
// level, or fails with a RelationError when FeatureStrictRelations is
// enabled.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithFeatures(gen.FeatureFallbackUpsert),
//	    gen.WithWorkers(4),
//	    gen.WithLogger(logger),
//	)
//
// # Usage
//
// The recommended way to generate code is through the sql package:
//
//	import "github.com/syssam/georm/compiler/gen/sql"
//
//	err := sql.Generate(ctx, graph)
package gen
