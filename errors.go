package georm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("georm: entity not found")

	// ErrNotSingular matches every *NotSingularError through errors.Is.
	ErrNotSingular = errors.New("georm: entity not singular")
)

// NotFoundError is returned by single-row operations that require a row,
// such as Update or the accessor of a required relation, when none matched.
type NotFoundError struct {
	label string
}

// NewNotFoundError returns a NotFoundError for the entity label.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

func (e *NotFoundError) Error() string {
	return "georm: " + e.label + " not found"
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(err error) bool { return err == ErrNotFound }

// Label returns the label of the entity that was looked up.
func (e *NotFoundError) Label() string { return e.label }

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// NotSingularError is returned when a statement expected to match at most
// one row matched several.
type NotSingularError struct {
	label string
}

// NewNotSingularError returns a NotSingularError for the entity label.
func NewNotSingularError(label string) *NotSingularError {
	return &NotSingularError{label: label}
}

func (e *NotSingularError) Error() string {
	return "georm: " + e.label + " not singular"
}

// Is makes errors.Is(err, ErrNotSingular) hold.
func (e *NotSingularError) Is(err error) bool { return err == ErrNotSingular }

// Label returns the label of the entity that was looked up.
func (e *NotSingularError) Label() string { return e.label }

// IsNotSingular reports whether err is, or wraps, a NotSingularError.
func IsNotSingular(err error) bool {
	return errors.Is(err, ErrNotSingular)
}

// QueryError is returned by generated read operations. Err is the error of
// the database driver, unchanged.
type QueryError struct {
	Entity string
	// Op is the generated operation: find_all, find or get_<relation>.
	Op  string
	Err error
}

// NewQueryError wraps err as the failure of op on entity.
func NewQueryError(entity, op string, err error) *QueryError {
	return &QueryError{Entity: entity, Op: op, Err: err}
}

func (e *QueryError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("georm: querying %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("georm: querying %s (%s): %v", e.Entity, e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// IsQueryError reports whether err is, or wraps, a QueryError.
func IsQueryError(err error) bool {
	var e *QueryError
	return errors.As(err, &e)
}

// MutationError is returned by generated write operations. Err is the error
// of the database driver, unchanged, so constraint violations can be told
// apart with the dialect/sql helpers.
type MutationError struct {
	Entity string
	// Op is the generated operation: create, update, create_or_update or
	// delete.
	Op  string
	Err error
}

// NewMutationError wraps err as the failure of op on entity.
func NewMutationError(entity, op string, err error) *MutationError {
	return &MutationError{Entity: entity, Op: op, Err: err}
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("georm: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// IsMutationError reports whether err is, or wraps, a MutationError.
func IsMutationError(err error) bool {
	var e *MutationError
	return errors.As(err, &e)
}
