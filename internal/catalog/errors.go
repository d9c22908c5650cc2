package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound covers a missing id, an empty list page, and a song create
// whose referenced artist does not exist. It is a terminal outcome, never
// a store failure.
var ErrNotFound = errors.New("no records found")

// FieldNotFoundError reports a filter, order or update key that the entity
// does not declare.
type FieldNotFoundError struct {
	Entity string
	Field  string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q does not exist on %s", e.Field, e.Entity)
}

// FieldNotModifiableError reports an update touching an immutable field.
type FieldNotModifiableError struct {
	Field string
}

func (e *FieldNotModifiableError) Error() string {
	return fmt.Sprintf("field %q cannot be modified", e.Field)
}

// InvalidOperatorError reports a filter operator outside the supported set.
type InvalidOperatorError struct {
	Op Operator
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("unsupported filter operator %q", string(e.Op))
}

// ConstraintError reports a refused artist deletion while songs still
// reference it.
type ConstraintError struct {
	Artist string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("artist %q cannot be deleted because songs reference it", e.Artist)
}

// StoreError wraps a storage failure that is not an input-validation or
// not-found outcome, preserving the cause for diagnostics.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a pre-store-access validation error.
func IsValidation(err error) bool {
	var fnf *FieldNotFoundError
	var fnm *FieldNotModifiableError
	var iop *InvalidOperatorError
	return errors.As(err, &fnf) || errors.As(err, &fnm) || errors.As(err, &iop)
}
