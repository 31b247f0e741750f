package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by errors.Is on the error types of this package.
var (
	ErrInvalidSchema    = errors.New("gen: invalid schema")
	ErrInvalidConfig    = errors.New("gen: invalid configuration")
	ErrInvalidRelation  = errors.New("gen: invalid relation")
	ErrGenerationFailed = errors.New("gen: code generation failed")
)

// describe renders "gen: <kind> <subject>: <message>: <cause>", leaving
// out the empty parts.
func describe(kind, subject, message string, cause error) string {
	var b strings.Builder
	b.WriteString("gen: ")
	b.WriteString(kind)
	if subject != "" {
		b.WriteString(" ")
		b.WriteString(subject)
	}
	if message != "" {
		b.WriteString(": ")
		b.WriteString(message)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// SchemaError reports an invalid entity declaration.
type SchemaError struct {
	Type    string
	Field   string // empty for entity-level errors
	Message string
	Cause   error
}

// NewSchemaError returns a SchemaError on the field of typeName, or on the
// entity itself when fieldName is empty.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{Type: typeName, Field: fieldName, Message: message, Cause: cause}
}

func (e *SchemaError) Error() string {
	subject := e.Type
	if e.Field != "" {
		subject += "." + e.Field
	}
	return describe("entity", subject, e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrInvalidSchema) hold.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// ConfigError reports an invalid generator option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// NewConfigError returns a ConfigError on option. value may be nil.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

func (e *ConfigError) Error() string {
	subject := e.Option
	if e.Value != nil {
		subject = fmt.Sprintf("%s=%v", e.Option, e.Value)
	}
	return describe("option", subject, e.Message, nil)
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// RelationError reports a relation that cannot be resolved or generated.
type RelationError struct {
	From     string
	To       string
	Relation string
	Message  string
	Cause    error
}

// NewRelationError returns a RelationError on the relation declared by
// from. to is empty when the target is unknown.
func NewRelationError(from, to, relation, message string, cause error) *RelationError {
	return &RelationError{From: from, To: to, Relation: relation, Message: message, Cause: cause}
}

func (e *RelationError) Error() string {
	subject := e.From
	if e.Relation != "" {
		subject += "." + e.Relation
	}
	if e.To != "" {
		subject += " -> " + e.To
	}
	return describe("relation", subject, e.Message, e.Cause)
}

func (e *RelationError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrInvalidRelation) hold.
func (e *RelationError) Is(target error) bool { return target == ErrInvalidRelation }

// GenerationError reports a failure while producing the files.
type GenerationError struct {
	// Phase is one of query, generate, render, write, prune or snapshot.
	Phase   string
	File    string
	Message string
	Cause   error
}

// NewGenerationError returns a GenerationError of phase on file.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

func (e *GenerationError) Error() string {
	subject := e.Phase
	if e.File != "" {
		subject += " " + e.File
	}
	return describe("generating", subject, e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrGenerationFailed) hold.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// IsSchemaError reports whether err is, or wraps, a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsRelationError reports whether err is, or wraps, a RelationError.
func IsRelationError(err error) bool {
	var e *RelationError
	return errors.As(err, &e)
}

// IsGenerationError reports whether err is, or wraps, a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
