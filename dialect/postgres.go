package dialect

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	Register(&Dialect{
		Name:                   Postgres,
		Types:                  postgresTypes{},
		Funcs:                  postgresFuncs{baseFuncs{name: Postgres, quoter: QuoteANSI}},
		Quoter:                 QuoteANSI,
		Placeholder:            PlaceholderDollar,
		SupportsCreateSchema:   true,
		SupportsIndexes:        true,
		SupportsReturning:      true,
		DefaultReferenceOption: NoAction,
		setSchema: func(q Quoter, name string) string {
			return fmt.Sprintf("SET search_path TO %s", q.Ident(name))
		},
	})
}

type postgresTypes struct{ baseTypes }

func (postgresTypes) IntegerType() string        { return "INTEGER" }
func (postgresTypes) IntegerAutoincType() string { return "SERIAL" }
func (postgresTypes) LongAutoincType() string    { return "BIGSERIAL" }
func (postgresTypes) DateTimeType() string       { return "TIMESTAMP" }
func (postgresTypes) UUIDType() string           { return "UUID" }

// The native uuid type binds from its text form.
func (postgresTypes) UUIDToDB(id uuid.UUID) any { return id.String() }

func (postgresTypes) BinaryType(size int) (string, error) {
	// bytea is unbounded; the requested length cannot be enforced and is
	// deliberately ignored.
	return "BYTEA", nil
}

func (postgresTypes) BlobType() (string, error) { return "BYTEA", nil }

type postgresFuncs struct{ baseFuncs }

func (f postgresFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "STRING_AGG(%s, %s", expr, quoteString(separator))
	if len(orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(orderBy, ", "))
	}
	b.WriteString(")")
	return b.String(), nil
}

// Upsert renders INSERT ... ON CONFLICT. Postgres requires the conflict
// target, so Keys must be provided.
func (f postgresFuncs) Upsert(p UpsertParams) (string, []any, error) {
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
