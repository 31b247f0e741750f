package load

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDecl is the sentinel matched by every DeclError.
var ErrInvalidDecl = errors.New("load: invalid declaration")

// DeclError reports a malformed entity declaration at a source position.
type DeclError struct {
	Pos    string // file:line:column
	Entity string
	Field  string // empty for errors on the struct itself
	Msg    string
}

// Error returns the error string.
func (e *DeclError) Error() string {
	var sb strings.Builder
	sb.WriteString("load: ")
	if e.Pos != "" {
		sb.WriteString(e.Pos)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Entity)
	if e.Field != "" {
		sb.WriteString(".")
		sb.WriteString(e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	return sb.String()
}

// Is reports whether target is ErrInvalidDecl.
func (e *DeclError) Is(target error) bool {
	return target == ErrInvalidDecl
}

// IsDeclError reports whether err contains a DeclError.
func IsDeclError(err error) bool {
	var e *DeclError
	return errors.As(err, &e)
}

func declErrorf(pos, entity, field, format string, args ...any) *DeclError {
	return &DeclError{Pos: pos, Entity: entity, Field: field, Msg: fmt.Sprintf(format, args...)}
}
