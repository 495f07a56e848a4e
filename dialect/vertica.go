package dialect

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// verticaDenyDefault rejects default expressions built on bare NOW or
// TIMESTAMP tokens, which Vertica spells differently in DEFAULT clauses.
// This is a best-effort textual heuristic, not a parser: composed
// expressions it cannot judge are accepted optimistically and left for the
// database to validate at DDL execution time.
var verticaDenyDefault = regexp.MustCompile(`(?i)\b(?:NOW|TIMESTAMP)\b`)

func init() {
	Register(&Dialect{
		Name:                 Vertica,
		Types:                verticaTypes{},
		Funcs:                verticaFuncs{baseFuncs{name: Vertica, quoter: QuoteANSI}},
		Quoter:               QuoteANSI,
		Placeholder:          PlaceholderQuestion,
		SupportsCreateSchema: true,
		// Storage is organized by projections; there are no secondary
		// indexes to create or drop.
		SupportsIndexes:        false,
		DefaultReferenceOption: NoAction,
		setSchema: func(q Quoter, name string) string {
			return fmt.Sprintf("SET SEARCH_PATH TO %s", q.Ident(name))
		},
		allowDefault: func(x Expression) bool {
			return !verticaDenyDefault.MatchString(x.Fragment())
		},
	})
}

type verticaTypes struct{ baseTypes }

// All integers are stored as 64-bit values; requested byte widths are
// therefore ignored.
func (verticaTypes) IntegerType() string        { return "INT" }
func (verticaTypes) LongType() string           { return "INT" }
func (verticaTypes) IntegerAutoincType() string { return "IDENTITY(1,1)" }
func (verticaTypes) LongAutoincType() string    { return "IDENTITY(1,1)" }

// FLOAT is the only floating type; it is always 8 bytes.
func (verticaTypes) FloatType() string  { return "FLOAT" }
func (verticaTypes) DoubleType() string { return "FLOAT" }

func (verticaTypes) TextType() string     { return "LONG VARCHAR" }
func (verticaTypes) DateTimeType() string { return "TIMESTAMP" }

func (verticaTypes) UUIDType() string          { return "UUID" }
func (verticaTypes) UUIDToDB(id uuid.UUID) any { return id.String() }

func (verticaTypes) BinaryType(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("dialect: binary column requires an explicit length")
	}
	return fmt.Sprintf("VARBINARY(%d)", size), nil
}

// There is no unbounded binary type; failing here is deliberate, loud and
// early rather than emitting DDL the database would reject or truncate.
func (verticaTypes) BlobType() (string, error) {
	return "", &UnsupportedError{Dialect: Vertica, Feature: "BLOB column type"}
}

// ProcessDefault wraps date and timestamp literals in to_date/to_timestamp,
// the spelling Vertica accepts in DEFAULT clauses.
func (t verticaTypes) ProcessDefault(x Expression) (string, error) {
	if l, ok := literalOf(x); ok && l.Value != nil {
		switch l.Kind {
		case KindDate:
			return fmt.Sprintf("to_date('%s', 'YYYY-MM-DD')", formatTime(l.Value, "2006-01-02")), nil
		case KindDateTime, KindTimestamp:
			return fmt.Sprintf("to_timestamp('%s', 'YYYY-MM-DD HH24:MI:SS')", formatTime(l.Value, "2006-01-02 15:04:05")), nil
		}
	}
	return t.baseTypes.ProcessDefault(x)
}

type verticaFuncs struct{ baseFuncs }

// GroupConcat renders LISTAGG; ordering inside the aggregate is not
// expressible.
func (f verticaFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	if len(orderBy) > 0 {
		return "", &UnsupportedError{Dialect: f.name, Feature: "LISTAGG with ORDER BY"}
	}
	return fmt.Sprintf("LISTAGG(%s USING PARAMETERS separator=%s)", expr, quoteString(separator)), nil
}

// Upsert renders MERGE. Vertica cannot derive the match condition from a
// unique key, so an explicit On condition is required; Keys alone are
// accepted only as a spelled-out equality condition.
func (f verticaFuncs) Upsert(p UpsertParams) (string, []any, error) {
	if p.On == "" && len(p.Keys) == 0 {
		return "", nil, &UnsupportedError{Dialect: f.name, Feature: "MERGE without an explicit match condition"}
	}
	return mergeUpsert(f.baseFuncs, p, false)
}
