package gen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/georm/compiler/load"
)

const (
	// georm runtime packages referenced by generated code.
	geormPkg = "github.com/syssam/georm"
	sqlPkg   = "github.com/syssam/georm/dialect/sql"
)

// JenniferGenerator renders the entities of a graph with a dialect and
// writes one file per entity.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	dialect MinimalDialect

	mu      sync.Mutex
	written []string
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/georm/compiler/gen/sql"
//
//	generator := gen.NewJenniferGenerator(graph)
//	generator.WithDialect(sql.NewDialect(generator))
//	err := generator.Generate(ctx)
func NewJenniferGenerator(g *Graph) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: g.workers(),
	}
}

// WithWorkers sets the number of parallel workers for code generation.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d MinimalDialect) *JenniferGenerator {
	g.dialect = d
	return g
}

// Written returns the paths of the files written by the last Generate
// call, sorted.
func (g *JenniferGenerator) Written() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Sorted(slices.Values(g.written))
}

// Generate validates every statement of the graph, renders each entity in
// parallel and writes the files. Generated files left over from entities
// that no longer exist are removed.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	for _, t := range g.graph.Nodes {
		for _, q := range t.Queries() {
			if err := q.Query.Validate(); err != nil {
				return NewGenerationError("query", t.FileName(), "statement "+q.Name, err)
			}
		}
	}
	snap, err := g.snapshots()
	if err != nil {
		return err
	}
	g.written = nil

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, t := range g.graph.Nodes {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(g.outDir(t), t.FileName())
			if snap != nil && snap.unchanged(t, path) {
				g.graph.logger().Debug("georm: entity unchanged", "entity", t.Name, "file", path)
				return nil
			}
			if err := g.writeEntity(t, path); err != nil {
				return err
			}
			if snap != nil {
				snap.commit(t)
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	if err := g.prune(); err != nil {
		return err
	}
	if snap != nil {
		return snap.save()
	}
	return nil
}

// writeEntity renders the file of t into memory and writes it to path, so
// a rendering failure never leaves a truncated file behind.
func (g *JenniferGenerator) writeEntity(t *Type, path string) error {
	f, err := g.dialect.GenEntity(t)
	if err != nil {
		return NewGenerationError("generate", t.FileName(), t.Name, err)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", t.FileName(), t.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewGenerationError("write", path, "", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewGenerationError("write", path, "", err)
	}
	g.mu.Lock()
	g.written = append(g.written, path)
	g.mu.Unlock()
	g.graph.logger().Info("georm: wrote file", "entity", t.Name, "file", path)
	return nil
}

// outDir returns the directory the file of t is written to.
func (g *JenniferGenerator) outDir(t *Type) string {
	switch {
	case g.graph.Target != "":
		return g.graph.Target
	case t.Dir != "":
		return t.Dir
	default:
		return "."
	}
}

// dirs returns the output directories with the file names expected in
// each of them.
func (g *JenniferGenerator) dirs() map[string][]string {
	dirs := make(map[string][]string)
	for _, t := range g.graph.Nodes {
		dir := g.outDir(t)
		dirs[dir] = append(dirs[dir], t.FileName())
	}
	return dirs
}

// prune removes generated files of the output directories that no entity
// produces anymore. Only files starting with the generated header are
// considered.
func (g *JenniferGenerator) prune() error {
	header := renderedHeader(g.graph.Header)
	for dir, expected := range g.dirs() {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+load.GeneratedSuffix))
		if err != nil {
			return NewGenerationError("prune", dir, "", err)
		}
		for _, path := range matches {
			if slices.Contains(expected, filepath.Base(path)) {
				continue
			}
			ok, err := hasHeader(path, header)
			if err != nil {
				return NewGenerationError("prune", path, "", err)
			}
			if !ok {
				continue
			}
			if err := os.Remove(path); err != nil {
				return NewGenerationError("prune", path, "", err)
			}
			g.graph.logger().Info("georm: removed stale file", "file", path)
		}
	}
	return nil
}

// renderedHeader returns the header comment as jennifer writes it above the
// package clause: line comments, or a block comment for multi-line headers.
func renderedHeader(header string) string {
	f := jen.NewFile("p")
	f.HeaderComment(header)
	head, _, _ := strings.Cut(f.GoString(), "package p")
	return strings.TrimSpace(head)
}

// hasHeader reports whether the file starts with the rendered header.
func hasHeader(path, header string) (bool, error) {
	if header == "" {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	buf := make([]byte, len(header))
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return string(buf) == header, nil
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(t *Type) *jen.File {
	f := jen.NewFilePathName(t.PkgPath, t.PkgName)
	f.HeaderComment(g.graph.Header)
	return f
}

// GoType returns the Jennifer code for a field type.
func (g *JenniferGenerator) GoType(info *load.TypeInfo) jen.Code {
	switch info.Kind {
	case load.KindPointer:
		return jen.Op("*").Add(g.GoType(info.Elem))
	case load.KindSlice:
		return jen.Index().Add(g.GoType(info.Elem))
	case load.KindArray:
		return jen.Index(jen.Id(info.Len)).Add(g.GoType(info.Elem))
	case load.KindMap:
		return jen.Map(g.GoType(info.Key)).Add(g.GoType(info.Elem))
	case load.KindNamed:
		typ := jen.Id(info.Name)
		if info.PkgPath != "" {
			typ = jen.Qual(info.PkgPath, info.Name)
		}
		if len(info.Args) > 0 {
			args := make([]jen.Code, len(info.Args))
			for i, a := range info.Args {
				args[i] = g.GoType(a)
			}
			typ = typ.Types(args...)
		}
		return typ
	}
	return jen.Id(info.Name)
}

// EntityType returns the Jennifer code for the entity type.
func (g *JenniferGenerator) EntityType(t *Type) jen.Code {
	return jen.Qual(t.PkgPath, t.Name)
}

// KeyType returns the Jennifer code for the key type of t.
func (g *JenniferGenerator) KeyType(t *Type) jen.Code {
	switch id := t.ID.(type) {
	case *SimpleID:
		return g.GoType(id.Field.Type)
	case *CompositeID:
		return jen.Qual(t.PkgPath, id.Name)
	default:
		panic("gen: unknown key shape")
	}
}

// GeormPkg returns the import path for the georm runtime package.
func (g *JenniferGenerator) GeormPkg() string { return geormPkg }

// SQLPkg returns the import path for the dialect/sql package.
func (g *JenniferGenerator) SQLPkg() string { return sqlPkg }

// Graph returns the schema graph.
func (g *JenniferGenerator) Graph() *Graph { return g.graph }

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	return g.graph.FeatureEnabled(name)
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)
