package gen

import "github.com/syssam/georm/compiler/load"

// RelationKind is the shape of a relation.
type RelationKind uint8

// Relation kinds.
const (
	// FieldOneToOne is declared on a field holding the key of the target.
	FieldOneToOne RelationKind = iota + 1
	// OneToOne is declared on the struct; the target table holds a foreign
	// key to this entity.
	OneToOne
	// OneToMany is declared on the struct; the target table holds a foreign
	// key to this entity.
	OneToMany
	// ManyToMany goes through a link table.
	ManyToMany
)

// String returns the relation kind name.
func (k RelationKind) String() string {
	switch k {
	case FieldOneToOne:
		return "field_one_to_one"
	case OneToOne:
		return "one_to_one"
	case OneToMany:
		return "one_to_many"
	case ManyToMany:
		return "many_to_many"
	default:
		return "unknown"
	}
}

// Relation between two entities.
type Relation struct {
	Kind RelationKind
	// Name of the relation. The accessor is Get<Name>.
	Name string
	// Owner is the entity declaring the relation.
	Owner *Type
	// Target is the related entity.
	Target *Type
	// Table is the target table.
	Table string
	// RemoteID is the column matched on the target side.
	RemoteID string
	// Nullable is set on field relations whose foreign key may be absent.
	Nullable bool
	// Field holds the foreign key of a FieldOneToOne relation.
	Field *Field
	// Link is the join table of a ManyToMany relation.
	Link *load.Link
	Pos  string
	// entity is the declared target name, resolved by NewGraph.
	entity string
}

// Entity returns the declared target entity name.
func (r Relation) Entity() string { return r.entity }

// Accessor returns the name of the generated accessor method.
//
//	author       => GetAuthor
//	book_reviews => GetBookReviews
func (r Relation) Accessor() string { return "Get" + pascal(r.Name) }

// Many reports whether the accessor returns a slice.
func (r Relation) Many() bool {
	return r.Kind == OneToMany || r.Kind == ManyToMany
}

// Optional reports whether the accessor returns nil when no row matches.
// A required field relation reports a not-found error instead.
func (r Relation) Optional() bool {
	switch r.Kind {
	case OneToOne:
		return true
	case FieldOneToOne:
		return r.Nullable
	default:
		return false
	}
}
