package load

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// sqlIdentRe matches table and column names, optionally schema-qualified.
	sqlIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
	// goIdentRe matches relation and entity names.
	goIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// optionKind tells how an option value is validated.
type optionKind uint8

const (
	optFlag  optionKind = iota // bare word, no value
	optName                    // Go identifier
	optIdent                   // SQL identifier
)

// options is a parsed list of key[=value] items.
type options map[string]string

// optionSpec lists the options accepted in one position.
type optionSpec map[string]optionKind

// parse splits items into options, rejecting unknown and repeated keys.
func (spec optionSpec) parse(items []string) (options, error) {
	opts := make(options, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, hasValue := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		kind, ok := spec[key]
		if !ok {
			return nil, fmt.Errorf("unknown option %q", key)
		}
		if _, dup := opts[key]; dup {
			return nil, fmt.Errorf("duplicate option %q", key)
		}
		switch {
		case kind == optFlag && hasValue:
			return nil, fmt.Errorf("option %q takes no value", key)
		case kind != optFlag && (!hasValue || value == ""):
			return nil, fmt.Errorf("option %q requires a value", key)
		case kind == optName && !goIdentRe.MatchString(value):
			return nil, fmt.Errorf("option %q: invalid name %q", key, value)
		case kind == optIdent && !sqlIdentRe.MatchString(value):
			return nil, fmt.Errorf("option %q: invalid SQL identifier %q", key, value)
		}
		opts[key] = value
	}
	return opts, nil
}

// has reports whether the option was given.
func (o options) has(key string) bool {
	_, ok := o[key]
	return ok
}

// require returns an error naming the first missing key.
func (o options) require(keys ...string) error {
	for _, k := range keys {
		if !o.has(k) {
			return fmt.Errorf("missing required option %q", k)
		}
	}
	return nil
}

// get returns the option value or def when absent.
func (o options) get(key, def string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}

// splitItems splits a directive or tag body on commas and whitespace.
func splitItems(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
