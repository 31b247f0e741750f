package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/georm/compiler/load"
)

// EntityGenerator generates per-entity code.
// GenEntity is called once per entity type in the graph.
type EntityGenerator interface {
	// GenEntity generates the entity file (<entity>_georm.go).
	GenEntity(t *Type) (*jen.File, error)
}

// MinimalDialect is the interface a dialect must implement.
type MinimalDialect interface {
	// Name returns the dialect name (e.g., "postgres").
	Name() string
	EntityGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file in the package of the entity,
	// with the standard header comment.
	NewFile(t *Type) *jen.File

	// GoType returns the Jennifer code for a field type.
	GoType(info *load.TypeInfo) jen.Code

	// EntityType returns the Jennifer code for the entity type itself.
	EntityType(t *Type) jen.Code

	// KeyType returns the Jennifer code for the key type of an entity: the
	// field type of a simple key, or the generated key struct.
	KeyType(t *Type) jen.Code

	// GeormPkg returns the import path for the georm runtime package.
	GeormPkg() string

	// SQLPkg returns the import path for the dialect/sql package.
	SQLPkg() string

	// Graph returns the schema graph.
	Graph() *Graph

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
