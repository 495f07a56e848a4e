package dialect

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expression is a SQL fragment used in DDL positions such as column
// defaults, where bound parameters are not available. Expressions are
// immutable and stateless beyond their constructed payload; rendering is a
// pure function of the expression's fields.
type Expression interface {
	// Fragment returns the textual SQL of the expression in the generic
	// dialect. Vendor-specific literal rendering goes through the active
	// TypeProvider's ProcessDefault instead.
	Fragment() string
}

// Kind is the logical type family of a literal. It drives vendor-specific
// literal rendering (quoting, boolean encoding, date wrapping).
type Kind int

// Literal kinds.
const (
	KindNumeric Kind = iota
	KindString
	KindBool
	KindDate
	KindDateTime
	KindTimestamp
	KindUUID
	KindBinary
)

// Literal wraps a typed client-side value. The zero value renders as NULL.
type Literal struct {
	Value any
	Kind  Kind
}

// Fragment renders the literal in generic SQL form.
func (l Literal) Fragment() string {
	if l.Value == nil {
		return "NULL"
	}
	switch l.Kind {
	case KindString, KindUUID:
		return quoteString(fmt.Sprint(l.Value))
	case KindBool:
		if b, ok := l.Value.(bool); ok && b {
			return "TRUE"
		}
		return "FALSE"
	case KindDate:
		return quoteString(formatTime(l.Value, "2006-01-02"))
	case KindDateTime, KindTimestamp:
		return quoteString(formatTime(l.Value, "2006-01-02 15:04:05"))
	case KindBinary:
		return "X'" + hexEncode(l.Value) + "'"
	default:
		return fmt.Sprint(l.Value)
	}
}

// Func is a SQL function-call expression. A call without arguments renders
// as the bare name, which covers the niladic standard functions
// (CURRENT_TIMESTAMP, CURRENT_DATE).
type Func struct {
	Name string
	Args []Expression
}

// Fragment renders the call, parenthesizing arguments so composition
// preserves precedence.
func (f Func) Fragment() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Fragment()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

type rawExpr string

func (r rawExpr) Fragment() string { return string(r) }

// Raw returns an expression rendering the given vendor SQL verbatim. The
// caller owns its correctness; eligibility as a column default is still
// gated by Dialect.AllowedAsColumnDefault.
func Raw(sql string) Expression { return rawExpr(sql) }

// CurrentTimestamp is the standard niladic current-timestamp function.
func CurrentTimestamp() Expression { return Func{Name: "CURRENT_TIMESTAMP"} }

// CurrentDate is the standard niladic current-date function.
func CurrentDate() Expression { return Func{Name: "CURRENT_DATE"} }

// safeDefaultFuncs are the niladic functions every dialect accepts as a
// column default.
var safeDefaultFuncs = map[string]bool{
	"CURRENT_TIMESTAMP": true,
	"CURRENT_DATE":      true,
	"CURRENT_TIME":      true,
	"LOCALTIMESTAMP":    true,
}

// baseAllowedDefault is the conservative base eligibility rule: literals and
// known-safe niladic functions only. Vendor hooks may broaden it, never
// shrink it.
func baseAllowedDefault(x Expression) bool {
	if _, ok := literalOf(x); ok {
		return true
	}
	if f, ok := x.(Func); ok {
		return len(f.Args) == 0 && safeDefaultFuncs[strings.ToUpper(f.Name)]
	}
	return false
}

// literalOf unwraps an expression that is a Literal in value or pointer
// form, so eligibility checks and ProcessDefault agree on what counts as a
// literal. A typed nil pointer is not a literal.
func literalOf(x Expression) (Literal, bool) {
	switch l := x.(type) {
	case Literal:
		return l, true
	case *Literal:
		if l != nil {
			return *l, true
		}
	}
	return Literal{}, false
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// formatTime renders time.Time values with the given layout; strings pass
// through, everything else falls back to fmt.
func formatTime(v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout)
	case *time.Time:
		return t.Format(layout)
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func hexEncode(v any) string {
	switch b := v.(type) {
	case []byte:
		return hex.EncodeToString(b)
	case uuid.UUID:
		return hex.EncodeToString(b[:])
	case string:
		return hex.EncodeToString([]byte(b))
	default:
		return hex.EncodeToString([]byte(fmt.Sprint(v)))
	}
}
