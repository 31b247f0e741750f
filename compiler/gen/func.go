package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})

	// reserved are identifiers used by generated method bodies, which a
	// receiver name must not shadow.
	reserved = map[string]struct{}{
		"ctx": {}, "db": {}, "id": {}, "err": {}, "node": {}, "nodes": {},
		"query": {}, "args": {}, "dest": {}, "columns": {}, "insert": {},
		"affected": {}, "sql": {}, "georm": {}, "context": {}, "i": {},
		"column": {},
	}
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Add common initialisms from golint and more.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HCL", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC",
		"MB", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID",
		"VM", "XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym adds a new acronym to the naming rules.
func AddAcronym(word string) {
	word = strings.ToUpper(word)
	acronyms[word] = struct{}{}
	rules.AddAcronym(word)
}

// plural returns the plural form of name. Names whose plural is identical
// to the singular get a "Slice" suffix to stay distinct.
//
//	Book     => Books
//	Category => Categories
//	Data     => DataSlice
func plural(name string) string {
	p := rules.Pluralize(name)
	if p == name {
		p += "Slice"
	}
	return p
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func pascalWords(words []string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			b.WriteString(upper)
		} else {
			b.WriteString(title.String(w))
		}
	}
	return b.String()
}

// pascal converts the given name into PascalCase.
//
//	user_info  => UserInfo
//	full_name  => FullName
//	user_id    => UserID
//	full-admin => FullAdmin
func pascal(s string) string {
	return pascalWords(strings.FieldsFunc(s, isSeparator))
}

// camel converts the given name into camelCase.
//
//	user_info => userInfo
//	full_name => fullName
//	user_id   => userID
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0]) + pascalWords(words[1:])
}

// snake converts the given struct or field name into snake_case.
//
//	Username => username
//	FullName => full_name
//	HTTPCode => http_code
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, current letter is uppercase,
		// and previous is lowercase (cases like: "UserInfo"), or next letter is also
		// a lowercase and previous letter is not "_".
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// receiver returns the receiver name of the given type.
//
//	[]T       => t
//	[1]T      => t
//	User      => u
//	UserQuery => uq
func receiver(s string) string {
	// Trim invalid tokens for identifier prefix.
	s = strings.Trim(s, "[]*&0123456789")
	parts := strings.Split(snake(s), "_")
	minLen := len(parts[0])
	for _, w := range parts[1:] {
		if len(w) < minLen {
			minLen = len(w)
		}
	}
	name := ""
	for i := 1; i <= minLen; i++ {
		r := parts[0][:i]
		for _, w := range parts[1:] {
			r += w[:i]
		}
		if _, ok := reserved[r]; !ok && !token.Lookup(r).IsKeyword() {
			name = r
			break
		}
	}
	if name == "" {
		name = "m"
	}
	return name
}
