package quarry

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrConstraint is returned when a statement violates a database constraint.
	ErrConstraint = errors.New("quarry: constraint violation")

	// ErrBatchInconsistent is returned when rows of a batch statement do not
	// share the same column set.
	ErrBatchInconsistent = errors.New("quarry: inconsistent batch")
)

// ConstraintError represents a database constraint violation. Driver-specific
// errors (MySQL, Postgres) are translated into this type by dialect/sql.
type ConstraintError struct {
	msg  string
	wrap error
}

// Error returns the error string.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("quarry: constraint failed: %s", e.msg)
}

// Unwrap returns the underlying driver error.
func (e *ConstraintError) Unwrap() error {
	return e.wrap
}

// Is reports whether the target error matches ConstraintError.
func (e *ConstraintError) Is(err error) bool {
	return err == ErrConstraint
}

// NewConstraintError returns a new ConstraintError with the given message.
func NewConstraintError(msg string, wrap error) *ConstraintError {
	return &ConstraintError{msg: msg, wrap: wrap}
}

// IsConstraintError returns true if the error is a ConstraintError.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConstraintError
	return errors.As(err, &e) || errors.Is(err, ErrConstraint)
}

// ValidationError represents a validation error for field values.
type ValidationError struct {
	Name string // Field or column name
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("quarry: validator failed for field %q: %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given field.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// BatchInconsistentError is returned when the rows of a batch insert were
// built with different column sets. The statement is rejected before any SQL
// is rendered, since the missing cells have no well-defined value.
type BatchInconsistentError struct {
	Table   string
	Missing []string // Columns absent from at least one row.
}

// Error returns the error string.
func (e *BatchInconsistentError) Error() string {
	return fmt.Sprintf("quarry: batch insert into %q has inconsistent columns: missing %s",
		e.Table, strings.Join(e.Missing, ", "))
}

// Is reports whether the target error matches BatchInconsistentError.
func (e *BatchInconsistentError) Is(err error) bool {
	return err == ErrBatchInconsistent
}

// IsBatchInconsistent returns true if the error is a BatchInconsistentError.
func IsBatchInconsistent(err error) bool {
	if err == nil {
		return false
	}
	var e *BatchInconsistentError
	return errors.As(err, &e) || errors.Is(err, ErrBatchInconsistent)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "quarry: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("quarry: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
