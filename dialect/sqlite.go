package dialect

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	Register(&Dialect{
		Name:        SQLite,
		Types:       sqliteTypes{},
		Funcs:       sqliteFuncs{baseFuncs{name: SQLite, quoter: QuoteBacktick}},
		Quoter:      QuoteBacktick,
		Placeholder: PlaceholderQuestion,
		// A SQLite database is a single file; there is no schema object
		// to create or switch to.
		SupportsCreateSchema:   false,
		SupportsIndexes:        true,
		SupportsReturning:      true,
		DefaultReferenceOption: NoAction,
	})
}

type sqliteTypes struct{ baseTypes }

func (sqliteTypes) IntegerType() string { return "INTEGER" }

// Auto-increment in SQLite exists only on the INTEGER PRIMARY KEY alias for
// the rowid, so the token carries the full clause. The DDL generator skips
// the separate PRIMARY KEY clause for such columns.
func (sqliteTypes) IntegerAutoincType() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }
func (sqliteTypes) LongAutoincType() string    { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

func (sqliteTypes) UUIDType() string          { return "TEXT" }
func (sqliteTypes) UUIDToDB(id uuid.UUID) any { return id.String() }

func (sqliteTypes) BinaryType(size int) (string, error) {
	// Column affinity only; the requested length is not enforced.
	return "BLOB", nil
}

// sqliteFuncs inherits the baseline row-limit gaps: LIMIT on
// UPDATE/DELETE exists only behind the SQLITE_ENABLE_UPDATE_DELETE_LIMIT
// build flag, which standard builds do not set.
type sqliteFuncs struct{ baseFuncs }

// GroupConcat supports a separator but no ordering: SQLite's GROUP_CONCAT
// aggregates in arbitrary order.
func (f sqliteFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	if len(orderBy) > 0 {
		return "", &UnsupportedError{Dialect: f.name, Feature: "GROUP_CONCAT with ORDER BY"}
	}
	return fmt.Sprintf("GROUP_CONCAT(%s, %s)", expr, quoteString(separator)), nil
}

// Upsert renders INSERT ... ON CONFLICT, available since SQLite 3.24.
func (f sqliteFuncs) Upsert(p UpsertParams) (string, []any, error) {
	if err := p.validate(); err != nil {
		return "", nil, err
	}
	if len(p.Keys) == 0 {
		return "", nil, fmt.Errorf("dialect: upsert on %s requires conflict key columns", f.name)
	}
	var b strings.Builder
	b.WriteString(f.insertInto(p.Table, p.Columns))
	fmt.Fprintf(&b, " ON CONFLICT (%s)", f.quoter.Idents(p.Keys...))
	update := p.nonKey()
	if len(update) == 0 {
		b.WriteString(" DO NOTHING")
		return b.String(), p.Values, nil
	}
	b.WriteString(" DO UPDATE SET ")
	for i, c := range update {
		if i > 0 {
			b.WriteString(", ")
		}
		qc := f.quoter.Ident(c)
		fmt.Fprintf(&b, "%s = excluded.%s", qc, qc)
	}
	return b.String(), p.Values, nil
}
