// Package load extracts georm entity declarations from Go source.
//
// An entity is a struct type whose doc comment carries a //georm:table
// directive. Field metadata comes from the db and georm struct tags, and
// struct-level relations from //georm:one_to_one, //georm:one_to_many and
// //georm:many_to_many directives. The result is a list of Schema values
// recording exactly what was declared; defaults such as column names and
// relation tables are derived later by compiler/gen.
package load

// Schema represents an entity declared in a user package.
type Schema struct {
	Name      string      `msgpack:"name"`
	Table     string      `msgpack:"table"`
	PkgName   string      `msgpack:"pkg_name"`
	PkgPath   string      `msgpack:"pkg_path"`
	Dir       string      `msgpack:"dir"`
	Pos       string      `msgpack:"-"`
	Fields    []*Field    `msgpack:"fields"`
	Relations []*Relation `msgpack:"relations,omitempty"`
}

// Field represents a struct field of an entity.
type Field struct {
	// Name is the Go field name.
	Name string `msgpack:"name"`
	// Column is the db tag name. Empty when the field has no db tag.
	Column      string    `msgpack:"column,omitempty"`
	Type        *TypeInfo `msgpack:"type"`
	ID          bool      `msgpack:"id,omitempty"`
	Defaultable bool      `msgpack:"defaultable,omitempty"`
	// Relation is set for a field holding the key of another entity.
	Relation *Relation `msgpack:"relation,omitempty"`
	Pos      string    `msgpack:"-"`
}

// RelationKind identifies the shape of a relation.
type RelationKind string

// Relation kinds.
const (
	OneToOne   RelationKind = "one_to_one"
	OneToMany  RelationKind = "one_to_many"
	ManyToMany RelationKind = "many_to_many"
)

// Relation is a declared relation. Field relations are always OneToOne and
// owned by the Field that holds the foreign key.
type Relation struct {
	Kind   RelationKind `msgpack:"kind"`
	Name   string       `msgpack:"name"`
	Entity string       `msgpack:"entity"`
	// Table is the target table. Empty means the target entity's table.
	Table string `msgpack:"table,omitempty"`
	// RemoteID is the column matched on the target side: the target key
	// for field and many-to-many relations, the foreign key column of the
	// target table for struct-level one-to-one and one-to-many relations.
	RemoteID string `msgpack:"remote_id"`
	Nullable bool   `msgpack:"nullable,omitempty"`
	Link     *Link  `msgpack:"link,omitempty"`
	Pos      string `msgpack:"-"`
}

// Link describes the join table of a many-to-many relation.
type Link struct {
	Table string `msgpack:"table"`
	From  string `msgpack:"from"`
	To    string `msgpack:"to"`
}

// IDs returns the fields marked as key fields, in declaration order.
func (s *Schema) IDs() []*Field {
	var ids []*Field
	for _, f := range s.Fields {
		if f.ID {
			ids = append(ids, f)
		}
	}
	return ids
}
