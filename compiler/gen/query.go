package gen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ArgSource tells the binder where the value of a bind argument comes from.
type ArgSource uint8

// Argument sources.
const (
	// ArgField binds a field of the receiver.
	ArgField ArgSource = iota + 1
	// ArgKey binds the key parameter, or one member of it.
	ArgKey
	// ArgSelfID binds the key of the receiver.
	ArgSelfID
)

// String returns the source name.
func (s ArgSource) String() string {
	switch s {
	case ArgField:
		return "field"
	case ArgKey:
		return "key"
	case ArgSelfID:
		return "self_id"
	default:
		return "unknown"
	}
}

// Arg is a bind argument. The n-th Arg binds placeholder $n.
type Arg struct {
	Source ArgSource
	// Field is the bound field: the receiver field for ArgField, the key
	// member for ArgKey and the key field for ArgSelfID.
	Field *Field
}

// Query is a parameterised SQL statement together with the sources of its
// bind arguments.
type Query struct {
	Text string
	Args []Arg
}

// NamedQuery is a query labeled with the operation it implements.
type NamedQuery struct {
	Name  string
	Query *Query
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Placeholders returns the placeholder numbers in order of appearance.
func (q *Query) Placeholders() []int {
	var nums []int
	for _, m := range placeholderRe.FindAllStringSubmatch(q.Text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// Validate checks that the placeholders of the statement are exactly
// $1..$n in order, with n the number of arguments.
func (q *Query) Validate() error {
	nums := q.Placeholders()
	if len(nums) != len(q.Args) {
		return fmt.Errorf("query %q has %d placeholders for %d arguments", q.Text, len(nums), len(q.Args))
	}
	for i, n := range nums {
		if n != i+1 {
			return fmt.Errorf("query %q: placeholder %d is $%d, want $%d", q.Text, i+1, n, i+1)
		}
	}
	return nil
}

// placeholders renders "$from, $from+1, ..." for n arguments.
func placeholders(from, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(p, ", ")
}

func columnsOf(fields []*Field) []string {
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Column
	}
	return columns
}

// keyMatch renders "a = $from AND b = $from+1" over the key fields.
func keyMatch(fields []*Field, from int) string {
	conds := make([]string, len(fields))
	for i, f := range fields {
		conds[i] = f.Column + " = $" + strconv.Itoa(from+i)
	}
	return strings.Join(conds, " AND ")
}

func argsOf(src ArgSource, fields []*Field) []Arg {
	args := make([]Arg, len(fields))
	for i, f := range fields {
		args[i] = Arg{Source: src, Field: f}
	}
	return args
}

// FindAllQuery returns every row of the table.
func (t *Type) FindAllQuery() *Query {
	return &Query{Text: "SELECT * FROM " + t.Table}
}

// FindQuery selects the row matching the key.
func (t *Type) FindQuery() *Query {
	ids := t.IDFields()
	return &Query{
		Text: "SELECT * FROM " + t.Table + " WHERE " + keyMatch(ids, 1),
		Args: argsOf(ArgKey, ids),
	}
}

// CreateQuery inserts every column.
func (t *Type) CreateQuery() *Query {
	return &Query{
		Text: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
			t.Table, strings.Join(t.Columns(), ", "), placeholders(1, len(t.Fields))),
		Args: argsOf(ArgField, t.Fields),
	}
}

// UpdateQuery sets every non-key column of the row matching the key. The
// non-key fields bind $1..$k and the key fields $k+1..$n. An entity made of
// key fields only assigns its key columns to themselves, so the statement
// still returns the matching row.
func (t *Type) UpdateQuery() *Query {
	var (
		ids    = t.IDFields()
		fields = t.NonIDFields()
		sets   = make([]string, 0, len(fields))
	)
	for i, f := range fields {
		sets = append(sets, f.Column+" = $"+strconv.Itoa(i+1))
	}
	if len(fields) == 0 {
		for _, f := range ids {
			sets = append(sets, f.Column+" = "+f.Column)
		}
	}
	return &Query{
		Text: fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING *",
			t.Table, strings.Join(sets, ", "), keyMatch(ids, len(fields)+1)),
		Args: append(argsOf(ArgField, fields), argsOf(ArgField, ids)...),
	}
}

// UpsertQuery inserts every column and, on a key conflict, overwrites the
// non-key columns with the proposed values.
func (t *Type) UpsertQuery() *Query {
	var (
		ids    = t.IDFields()
		fields = t.NonIDFields()
		sets   = make([]string, 0, len(fields))
	)
	for _, f := range fields {
		sets = append(sets, f.Column+" = EXCLUDED."+f.Column)
	}
	if len(fields) == 0 {
		for _, f := range ids {
			sets = append(sets, f.Column+" = EXCLUDED."+f.Column)
		}
	}
	return &Query{
		Text: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING *",
			t.Table, strings.Join(t.Columns(), ", "), placeholders(1, len(t.Fields)),
			strings.Join(columnsOf(ids), ", "), strings.Join(sets, ", ")),
		Args: argsOf(ArgField, t.Fields),
	}
}

// DeleteQuery removes the row matching the key.
func (t *Type) DeleteQuery() *Query {
	ids := t.IDFields()
	return &Query{
		Text: "DELETE FROM " + t.Table + " WHERE " + keyMatch(ids, 1),
		Args: argsOf(ArgKey, ids),
	}
}

// Query returns the statement fetching the related rows. It panics on
// relations of an entity with a composite key, which NewGraph removes.
func (r *Relation) Query() *Query {
	switch r.Kind {
	case FieldOneToOne:
		return &Query{
			Text: "SELECT * FROM " + r.Table + " WHERE " + r.RemoteID + " = $1",
			Args: []Arg{{Source: ArgField, Field: r.Field}},
		}
	case OneToOne, OneToMany:
		return &Query{
			Text: "SELECT * FROM " + r.Table + " WHERE " + r.RemoteID + " = $1",
			Args: []Arg{{Source: ArgSelfID, Field: r.ownerKey()}},
		}
	case ManyToMany:
		local := r.ownerKey().Column
		return &Query{
			Text: fmt.Sprintf("SELECT remote.* FROM %s local JOIN %s link ON link.%s = local.%s JOIN %s remote ON link.%s = remote.%s WHERE local.%s = $1",
				r.Owner.Table, r.Link.Table, r.Link.From, local, r.Table, r.Link.To, r.RemoteID, local),
			Args: []Arg{{Source: ArgSelfID, Field: r.ownerKey()}},
		}
	default:
		panic(fmt.Sprintf("gen: unknown relation kind %d", r.Kind))
	}
}

// ownerKey returns the simple key field of the owner. Relations are only
// kept on entities with a simple key.
func (r *Relation) ownerKey() *Field {
	id, ok := r.Owner.ID.(*SimpleID)
	if !ok {
		panic(fmt.Sprintf("gen: relation %s.%s on an entity with a composite key", r.Owner.Name, r.Name))
	}
	return id.Field
}

// Queries returns every statement generated for the entity, relation
// accessors included.
func (t *Type) Queries() []NamedQuery {
	queries := []NamedQuery{
		{Name: t.FindAllName(), Query: t.FindAllQuery()},
		{Name: t.FindName(), Query: t.FindQuery()},
		{Name: "Create", Query: t.CreateQuery()},
		{Name: "Update", Query: t.UpdateQuery()},
		{Name: "CreateOrUpdate", Query: t.UpsertQuery()},
		{Name: t.DeleteByIDName(), Query: t.DeleteQuery()},
	}
	for _, r := range t.Relations {
		queries = append(queries, NamedQuery{Name: r.Accessor(), Query: r.Query()})
	}
	return queries
}
