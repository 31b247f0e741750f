package load

import (
	"go/ast"
	"strings"
)

const directivePrefix = "georm:"

// Directive names.
const (
	dirTable      = "table"
	dirOneToOne   = "one_to_one"
	dirOneToMany  = "one_to_many"
	dirManyToMany = "many_to_many"
)

var (
	oneToSpec = optionSpec{
		"name":      optName,
		"entity":    optName,
		"table":     optIdent,
		"remote_id": optIdent,
	}
	manyToManySpec = optionSpec{
		"name":       optName,
		"entity":     optName,
		"table":      optIdent,
		"remote_id":  optIdent,
		"link.table": optIdent,
		"link.from":  optIdent,
		"link.to":    optIdent,
	}
)

// directive is one //georm:<name> <body> comment line.
type directive struct {
	name string
	body string
	pos  string
}

// directives returns the georm directives found in the given comment
// groups, in source order.
func (x *extractor) directives(groups ...*ast.CommentGroup) []directive {
	var dirs []directive
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, "//")
			if !ok || !strings.HasPrefix(text, directivePrefix) {
				continue
			}
			text = strings.TrimPrefix(text, directivePrefix)
			name, body, _ := strings.Cut(text, " ")
			dirs = append(dirs, directive{
				name: strings.TrimSpace(name),
				body: strings.TrimSpace(body),
				pos:  x.pos(c.Pos()),
			})
		}
	}
	return dirs
}

// applyDirectives fills the table and struct-level relations of s.
func applyDirectives(s *Schema, dirs []directive) error {
	for _, d := range dirs {
		switch d.name {
		case dirTable:
			if s.Table != "" {
				return declErrorf(d.pos, s.Name, "", "duplicate georm:table directive")
			}
			items := splitItems(d.body)
			if len(items) != 1 {
				return declErrorf(d.pos, s.Name, "", "georm:table expects exactly one table name, got %q", d.body)
			}
			if !sqlIdentRe.MatchString(items[0]) {
				return declErrorf(d.pos, s.Name, "", "georm:table: invalid SQL identifier %q", items[0])
			}
			s.Table = items[0]
		case dirOneToOne, dirOneToMany, dirManyToMany:
			rel, err := parseRelation(d)
			if err != nil {
				return declErrorf(d.pos, s.Name, "", "georm:%s: %v", d.name, err)
			}
			s.Relations = append(s.Relations, rel)
		default:
			return declErrorf(d.pos, s.Name, "", "unknown directive georm:%s", d.name)
		}
	}
	if s.Table == "" {
		return declErrorf(s.Pos, s.Name, "", "missing georm:table directive")
	}
	for i, r := range s.Relations {
		for _, prev := range s.Relations[:i] {
			if prev.Name == r.Name {
				return declErrorf(r.Pos, s.Name, "", "duplicate relation %q", r.Name)
			}
		}
	}
	return nil
}

func parseRelation(d directive) (*Relation, error) {
	spec, kind := oneToSpec, RelationKind(d.name)
	if kind == ManyToMany {
		spec = manyToManySpec
	}
	opts, err := spec.parse(splitItems(d.body))
	if err != nil {
		return nil, err
	}
	rel := &Relation{
		Kind:   kind,
		Name:   opts["name"],
		Entity: opts["entity"],
		Table:  opts["table"],
		Pos:    d.pos,
	}
	switch kind {
	case ManyToMany:
		if err := opts.require("name", "entity", "link.table", "link.from", "link.to"); err != nil {
			return nil, err
		}
		rel.RemoteID = opts.get("remote_id", "id")
		rel.Link = &Link{
			Table: opts["link.table"],
			From:  opts["link.from"],
			To:    opts["link.to"],
		}
	default:
		if err := opts.require("name", "entity", "remote_id"); err != nil {
			return nil, err
		}
		rel.RemoteID = opts["remote_id"]
	}
	return rel, nil
}
