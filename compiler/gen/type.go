package gen

import (
	"fmt"
	"go/token"
	"slices"

	"github.com/syssam/georm/compiler/load"
)

type (
	// Type represents one entity of the graph: a struct type bound to a
	// table, with its columns, key shape and relations.
	Type struct {
		*Config
		schema *load.Schema
		// Name is the Go type name of the entity.
		Name string
		// Table is the table the entity is stored in.
		Table string
		// PkgName and PkgPath identify the package declaring the entity.
		PkgName string
		PkgPath string
		// Dir is the directory of the declaring package.
		Dir string
		// Fields holds all mapped fields in declaration order, key fields
		// included.
		Fields []*Field
		// ID is the key shape of the entity.
		ID IDShape
		// Relations holds the field relations followed by the struct-level
		// ones, each group in declaration order.
		Relations []*Relation
		// Pos is the source position of the declaration.
		Pos   string
		field map[string]*Field
	}

	// Field of an entity.
	Field struct {
		typ *Type
		// Name is the Go field name.
		Name string
		// Column is the column name: the db tag, or the snake_case form of
		// the field name when no tag is present.
		Column string
		// Type holds the Go type of the field as written in source.
		Type *load.TypeInfo
		// ID indicates that the field is part of the key.
		ID bool
		// Defaultable indicates that the column has a database default and
		// may be omitted on insert.
		Defaultable bool
		// Relation is the relation held by this field, if any.
		Relation *Relation
		Pos      string
	}
)

// NewType creates a new type and its fields from the given schema.
// Relation targets are left unresolved; NewGraph binds them.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if err := ValidSchemaName(schema.Name); err != nil {
		return nil, NewSchemaError(schema.Name, "", "invalid entity name", err)
	}
	if schema.Table == "" {
		return nil, NewSchemaError(schema.Name, "", "missing table name", nil)
	}
	t := &Type{
		Config:  c,
		schema:  schema,
		Name:    schema.Name,
		Table:   schema.Table,
		PkgName: schema.PkgName,
		PkgPath: schema.PkgPath,
		Dir:     schema.Dir,
		Pos:     schema.Pos,
		Fields:  make([]*Field, 0, len(schema.Fields)),
		field:   make(map[string]*Field, len(schema.Fields)),
	}
	columns := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		tf := &Field{
			typ:         t,
			Name:        f.Name,
			Column:      f.Column,
			Type:        f.Type,
			ID:          f.ID,
			Defaultable: f.Defaultable,
			Pos:         f.Pos,
		}
		if tf.Column == "" {
			tf.Column = snake(f.Name)
		}
		if prev, ok := columns[tf.Column]; ok {
			return nil, NewSchemaError(t.Name, f.Name, fmt.Sprintf("column %q is already mapped by field %s", tf.Column, prev), nil)
		}
		columns[tf.Column] = f.Name
		if r := f.Relation; r != nil {
			tf.Relation = &Relation{
				Kind:     FieldOneToOne,
				Name:     r.Name,
				Owner:    t,
				Table:    r.Table,
				RemoteID: r.RemoteID,
				Nullable: r.Nullable,
				Field:    tf,
				Pos:      r.Pos,
				entity:   r.Entity,
			}
			t.Relations = append(t.Relations, tf.Relation)
		}
		t.Fields = append(t.Fields, tf)
		t.field[tf.Name] = tf
	}
	for _, r := range schema.Relations {
		rel := &Relation{
			Name:     r.Name,
			Owner:    t,
			Table:    r.Table,
			RemoteID: r.RemoteID,
			Nullable: r.Nullable,
			Link:     r.Link,
			Pos:      r.Pos,
			entity:   r.Entity,
		}
		switch r.Kind {
		case load.OneToOne:
			rel.Kind = OneToOne
		case load.OneToMany:
			rel.Kind = OneToMany
		case load.ManyToMany:
			rel.Kind = ManyToMany
			if r.Link == nil {
				return nil, NewRelationError(t.Name, r.Entity, r.Name, "many-to-many relation without link table", nil)
			}
		default:
			return nil, NewRelationError(t.Name, r.Entity, r.Name, fmt.Sprintf("unknown relation kind %q", r.Kind), nil)
		}
		t.Relations = append(t.Relations, rel)
	}
	id, err := newIDShape(t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

// ValidSchemaName reports an error if the name cannot be used as an entity
// type name.
func ValidSchemaName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name")
	case !token.IsIdentifier(name):
		return fmt.Errorf("%q is not a Go identifier", name)
	case !token.IsExported(name):
		return fmt.Errorf("%q is not exported", name)
	}
	return nil
}

// Schema returns the declaration the type was built from.
func (t Type) Schema() *load.Schema { return t.schema }

// Label returns the label used in errors reported by generated code.
func (t Type) Label() string { return t.Name }

// Receiver returns the receiver name of the generated methods.
func (t Type) Receiver() string { return receiver(t.Name) }

// Plural returns the plural form of the type name.
func (t Type) Plural() string { return plural(t.Name) }

// FileName returns the name of the generated file.
//
//	Book      => book_georm.go
//	BookGenre => book_genre_georm.go
func (t Type) FileName() string { return snake(t.Name) + load.GeneratedSuffix }

// TableConst returns the name of the generated table constant.
func (t Type) TableConst() string { return t.Name + "Table" }

// ColumnsVar returns the name of the generated column list.
func (t Type) ColumnsVar() string { return t.Name + "Columns" }

// FindAllName returns the name of the generated function listing all rows.
func (t Type) FindAllName() string { return "FindAll" + t.Plural() }

// FindName returns the name of the generated lookup function.
func (t Type) FindName() string { return "Find" + t.Name }

// DeleteByIDName returns the name of the generated delete-by-key function.
func (t Type) DeleteByIDName() string { return "Delete" + t.Name + "ByID" }

// DefaultName returns the name of the defaultable companion type.
func (t Type) DefaultName() string { return t.Name + "Default" }

// DefaultReceiver returns the receiver name of the defaultable companion.
func (t Type) DefaultReceiver() string { return receiver(t.DefaultName()) }

// FieldByName returns the field with the given Go name.
func (t Type) FieldByName(name string) (*Field, bool) {
	f, ok := t.field[name]
	return f, ok
}

// Columns returns the column names in declaration order.
func (t Type) Columns() []string {
	columns := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		columns[i] = f.Column
	}
	return columns
}

// IDFields returns the key fields in declaration order.
func (t Type) IDFields() []*Field {
	return t.ID.Fields()
}

// NonIDFields returns the fields that are not part of the key.
func (t Type) NonIDFields() []*Field {
	var fields []*Field
	for _, f := range t.Fields {
		if !f.ID {
			fields = append(fields, f)
		}
	}
	return fields
}

// DefaultableFields returns the fields whose columns have database
// defaults.
func (t Type) DefaultableFields() []*Field {
	var fields []*Field
	for _, f := range t.Fields {
		if f.Defaultable {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasDefaultable reports whether the entity gets a defaultable companion.
func (t Type) HasDefaultable() bool {
	return slices.ContainsFunc(t.Fields, func(f *Field) bool { return f.Defaultable })
}

// HasCompositeID reports whether the key spans more than one field.
func (t Type) HasCompositeID() bool {
	_, ok := t.ID.(*CompositeID)
	return ok
}

// Owner returns the entity that declares the field.
func (f Field) Owner() *Type { return f.typ }

// IsRelation reports whether the field holds a foreign key.
func (f Field) IsRelation() bool { return f.Relation != nil }
