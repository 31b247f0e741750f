package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/georm/compiler/load"
)

// Graph holds the entities of one generation run with their relations
// resolved.
type Graph struct {
	*Config
	// Nodes are the entities, sorted by package path and name.
	Nodes []*Type
	// Schemas are the declarations the graph was built from.
	Schemas []*load.Schema
	// Diagnostics are the non-fatal findings of NewGraph.
	Diagnostics []Diagnostic
}

// Diagnostic is a non-fatal finding about a declaration. The declaration
// is accepted, but part of it is ignored.
type Diagnostic struct {
	Type     string
	Relation string
	Pos      string
	Message  string
}

// String formats the diagnostic like a compiler message.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos != "" {
		b.WriteString(d.Pos)
		b.WriteString(": ")
	}
	b.WriteString(d.Type)
	if d.Relation != "" {
		b.WriteString(".")
		b.WriteString(d.Relation)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// methodNames are the methods generated on every entity, which a relation
// accessor must not take.
var methodNames = []string{"GetID", "Create", "Update", "CreateOrUpdate", "Delete", "ScanDest"}

// NewGraph creates a new Graph for the code generation from the given
// schema definitions. It fails if one of the schemas is invalid.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing configuration")
	}
	g := &Graph{Config: c, Schemas: schemas}
	for _, s := range schemas {
		t, err := NewType(c, s)
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, t)
	}
	if err := g.checkPackages(); err != nil {
		return nil, err
	}
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	for _, t := range g.Nodes {
		if err := g.resolve(t); err != nil {
			return nil, err
		}
	}
	for _, t := range g.Nodes {
		if err := g.checkComposite(t); err != nil {
			return nil, err
		}
	}
	slices.SortFunc(g.Nodes, func(a, b *Type) int {
		if c := strings.Compare(a.PkgPath, b.PkgPath); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return g, nil
}

// Type returns the entity with the given name. When several packages
// declare it, the first in sort order is returned.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// checkPackages rejects a shared output directory for entities declared in
// different packages.
func (g *Graph) checkPackages() error {
	if g.Target == "" {
		return nil
	}
	var pkgs []string
	for _, t := range g.Nodes {
		if !slices.Contains(pkgs, t.PkgPath) {
			pkgs = append(pkgs, t.PkgPath)
		}
	}
	if len(pkgs) > 1 {
		return NewConfigError("Target", g.Target, fmt.Sprintf("entities of %d packages (%s) cannot share one target directory", len(pkgs), strings.Join(pkgs, ", ")))
	}
	return nil
}

// checkNames rejects entities whose generated identifiers clash with each
// other's within a package.
func (g *Graph) checkNames() error {
	owners := make(map[string]string)
	declare := func(t *Type, name string) error {
		key := t.PkgPath + "." + name
		if prev, ok := owners[key]; ok {
			if prev == t.Name && name == t.Name {
				return NewSchemaError(t.Name, "", fmt.Sprintf("entity is declared twice in package %s", t.PkgPath), nil)
			}
			return NewSchemaError(t.Name, "", fmt.Sprintf("generated identifier %s conflicts with entity %s", name, prev), nil)
		}
		owners[key] = t.Name
		return nil
	}
	// Entity names are registered first, so a clash with a generated
	// identifier always names the generated one.
	for _, t := range g.Nodes {
		if err := declare(t, t.Name); err != nil {
			return err
		}
	}
	for _, t := range g.Nodes {
		names := []string{t.TableConst(), t.ColumnsVar(), t.FindAllName(), t.FindName(), t.DeleteByIDName()}
		if k := t.KeyName(); k != "" {
			names = append(names, k)
		}
		if t.HasDefaultable() {
			names = append(names, t.DefaultName())
		}
		for _, name := range names {
			if err := declare(t, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve binds the relations of t to their targets and applies the table
// default.
func (g *Graph) resolve(t *Type) error {
	accessors := make(map[string]string)
	for _, r := range t.Relations {
		target, err := g.lookup(t, r)
		if err != nil {
			return err
		}
		r.Target = target
		if r.Table == "" {
			r.Table = target.Table
		}
		if r.Kind == ManyToMany {
			if _, ok := target.ID.(*SimpleID); !ok {
				return NewRelationError(t.Name, target.Name, r.Name, "many-to-many target must have a simple key", nil)
			}
		}
		name := r.Accessor()
		switch {
		case slices.Contains(methodNames, name):
			return NewRelationError(t.Name, target.Name, r.Name, fmt.Sprintf("accessor %s conflicts with a generated method", name), nil)
		case accessors[name] != "":
			return NewRelationError(t.Name, target.Name, r.Name, fmt.Sprintf("accessor %s is already generated for relation %q", name, accessors[name]), nil)
		}
		if _, ok := t.FieldByName(name); ok {
			return NewRelationError(t.Name, target.Name, r.Name, fmt.Sprintf("accessor %s conflicts with a field of the same name", name), nil)
		}
		accessors[name] = r.Name
	}
	return nil
}

// lookup finds the target entity of r. An entity of the owner's package is
// preferred; otherwise the name must be unique among the loaded packages.
func (g *Graph) lookup(owner *Type, r *Relation) (*Type, error) {
	var found []*Type
	for _, t := range g.Nodes {
		if t.Name != r.entity {
			continue
		}
		if t.PkgPath == owner.PkgPath {
			return t, nil
		}
		found = append(found, t)
	}
	switch len(found) {
	case 0:
		return nil, NewRelationError(owner.Name, r.entity, r.Name, "unknown entity", nil)
	case 1:
		return found[0], nil
	default:
		return nil, NewRelationError(owner.Name, r.entity, r.Name, fmt.Sprintf("entity is declared in %d packages", len(found)), nil)
	}
}

// checkComposite drops the relations of an entity with a composite key,
// recording a diagnostic for each, or fails in strict mode.
func (g *Graph) checkComposite(t *Type) error {
	if !t.HasCompositeID() || len(t.Relations) == 0 {
		return nil
	}
	strict := g.FeatureEnabled(FeatureStrictRelations.Name)
	for _, r := range t.Relations {
		const msg = "relations are not supported on entities with a composite key"
		if strict {
			return NewRelationError(t.Name, r.entity, r.Name, msg, nil)
		}
		d := Diagnostic{Type: t.Name, Relation: r.Name, Pos: r.Pos, Message: msg + "; relation ignored"}
		g.Diagnostics = append(g.Diagnostics, d)
		g.logger().Warn("georm: relation ignored", "entity", t.Name, "relation", r.Name, "pos", r.Pos)
		if r.Field != nil {
			r.Field.Relation = nil
		}
	}
	t.Relations = nil
	return nil
}
