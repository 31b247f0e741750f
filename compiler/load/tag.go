package load

import (
	"fmt"
	"go/ast"
	"strconv"

	"github.com/fatih/structtag"
)

// Struct tag keys read by the extractor.
const (
	tagDB    = "db"
	tagGeorm = "georm"
)

var fieldSpec = optionSpec{
	"id":          optFlag,
	"defaultable": optFlag,
	"nullable":    optFlag,
	"relation":    optName,
	"entity":      optName,
	"table":       optIdent,
	"remote_id":   optIdent,
}

// relationOptions are only valid together with relation=.
var relationOptions = []string{"entity", "table", "remote_id", "nullable"}

// fieldTags holds the georm-relevant struct tags of a field.
type fieldTags struct {
	column string
	georm  []string
	skip   bool
}

func parseFieldTags(f *ast.Field) (*fieldTags, error) {
	ft := &fieldTags{}
	if f.Tag == nil {
		return ft, nil
	}
	raw, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid struct tag %s: %w", f.Tag.Value, err)
	}
	tags, err := structtag.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid struct tag %s: %w", f.Tag.Value, err)
	}
	if tag, err := tags.Get(tagDB); err == nil {
		if tag.Name == "-" {
			ft.skip = true
		}
		ft.column = tag.Name
	}
	if tag, err := tags.Get(tagGeorm); err == nil {
		if tag.Name == "-" {
			ft.skip = true
		}
		ft.georm = append([]string{tag.Name}, tag.Options...)
	}
	return ft, nil
}

// buildField applies the parsed tags to a field named name of type typ.
func buildField(name string, typ *TypeInfo, ft *fieldTags) (*Field, error) {
	fd := &Field{Name: name, Type: typ}
	if ft.column != "" {
		if !sqlIdentRe.MatchString(ft.column) {
			return nil, fmt.Errorf("invalid column name %q", ft.column)
		}
		fd.Column = ft.column
	}
	opts, err := fieldSpec.parse(ft.georm)
	if err != nil {
		return nil, err
	}
	fd.ID = opts.has("id")
	fd.Defaultable = opts.has("defaultable")
	if fd.Defaultable && typ.Optional() {
		return nil, fmt.Errorf("defaultable field must not have an optional type, got %s", typ)
	}
	if !opts.has("relation") {
		for _, k := range relationOptions {
			if opts.has(k) {
				return nil, fmt.Errorf("option %q requires relation=<name>", k)
			}
		}
		return fd, nil
	}
	if err := opts.require("entity"); err != nil {
		return nil, fmt.Errorf("relation %q: %w", opts["relation"], err)
	}
	fd.Relation = &Relation{
		Kind:     OneToOne,
		Name:     opts["relation"],
		Entity:   opts["entity"],
		Table:    opts["table"],
		RemoteID: opts.get("remote_id", "id"),
		Nullable: opts.has("nullable"),
	}
	return fd, nil
}
