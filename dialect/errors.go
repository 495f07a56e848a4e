package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnsupported is matched by every capability-gap error.
	ErrUnsupported = errors.New("dialect: unsupported by dialect")

	// ErrNoDialect is returned when the current dialect is read from a
	// context that was never configured with one.
	ErrNoDialect = errors.New("dialect: no dialect in context")
)

// UnsupportedError reports a capability gap: the vendor fundamentally cannot
// express the requested SQL construct. It is always surfaced at generation
// time, never silently degraded.
type UnsupportedError struct {
	Dialect string // Dialect name.
	Feature string // Human-readable description of the missing capability.
}

// Error returns the error string.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("dialect: %s is not supported by dialect %s", e.Feature, e.Dialect)
}

// Is reports whether the target error matches UnsupportedError.
func (e *UnsupportedError) Is(err error) bool {
	return err == ErrUnsupported
}

// Unsupportedf returns an UnsupportedError with a formatted feature
// description.
func Unsupportedf(dialect, format string, args ...any) error {
	return &UnsupportedError{Dialect: dialect, Feature: fmt.Sprintf(format, args...)}
}

// IsUnsupported returns true if the error reports a capability gap.
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupported)
}

// UnknownDialectError is returned when looking up a dialect name that was
// never registered.
type UnknownDialectError struct {
	Name       string
	Registered []string
}

// Error returns the error string.
func (e *UnknownDialectError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("dialect: unknown dialect %q", e.Name)
	}
	return fmt.Sprintf("dialect: unknown dialect %q (registered: %s)",
		e.Name, strings.Join(e.Registered, ", "))
}

// IsUnknownDialect returns true if the error is an UnknownDialectError.
func IsUnknownDialect(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownDialectError
	return errors.As(err, &e)
}
