package dialect

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	Register(&Dialect{
		Name:                 SQLServer,
		Types:                sqlserverTypes{},
		Funcs:                sqlserverFuncs{baseFuncs{name: SQLServer, quoter: QuoteBracket}},
		Quoter:               QuoteBracket,
		Placeholder:          PlaceholderQuestion,
		SupportsCreateSchema: true,
		SupportsIndexes:      true,
		// There is no per-session schema switch; the default schema is a
		// property of the login.
		DefaultReferenceOption: NoAction,
		dropIndex: func(q Quoter, table, name string) string {
			return fmt.Sprintf("DROP INDEX %s ON %s", q.Ident(name), q.Ident(table))
		},
	})
}

type sqlserverTypes struct{ baseTypes }

func (sqlserverTypes) IntegerAutoincType() string { return "INT IDENTITY(1,1)" }
func (sqlserverTypes) LongAutoincType() string    { return "BIGINT IDENTITY(1,1)" }
func (sqlserverTypes) DoubleType() string         { return "FLOAT" }
func (sqlserverTypes) TextType() string           { return "VARCHAR(MAX)" }

// DATETIME2 on both: the vendor's TIMESTAMP is a row-version, not a time.
func (sqlserverTypes) DateTimeType() string  { return "DATETIME2" }
func (sqlserverTypes) TimestampType() string { return "DATETIME2" }

func (sqlserverTypes) BooleanType() string { return "BIT" }
func (sqlserverTypes) BooleanToSQL(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (sqlserverTypes) UUIDType() string          { return "UNIQUEIDENTIFIER" }
func (sqlserverTypes) UUIDToDB(id uuid.UUID) any { return id.String() }

func (sqlserverTypes) BlobType() (string, error) { return "VARBINARY(MAX)", nil }

func (t sqlserverTypes) ProcessDefault(x Expression) (string, error) {
	if l, ok := literalOf(x); ok && l.Kind == KindBool && l.Value != nil {
		b, _ := l.Value.(bool)
		return t.BooleanToSQL(b), nil
	}
	return t.baseTypes.ProcessDefault(x)
}

type sqlserverFuncs struct{ baseFuncs }

func (f sqlserverFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "STRING_AGG(%s, %s)", expr, quoteString(separator))
	if len(orderBy) > 0 {
		fmt.Fprintf(&b, " WITHIN GROUP (ORDER BY %s)", strings.Join(orderBy, ", "))
	}
	return b.String(), nil
}

// Update renders the row limit with TOP, the vendor's spelling.
func (f sqlserverFuncs) Update(p UpdateParams) (string, []any, error) {
	query, args, err := f.update(p)
	if err != nil {
		return "", nil, err
	}
	if p.Limit > 0 {
		query = strings.Replace(query, "UPDATE ", fmt.Sprintf("UPDATE TOP (%d) ", p.Limit), 1)
	}
	return query, args, nil
}

func (f sqlserverFuncs) Delete(p DeleteParams) (string, []any, error) {
	query, args, err := f.delete(p)
	if err != nil {
		return "", nil, err
	}
	if p.Limit > 0 {
		query = strings.Replace(query, "DELETE FROM ", fmt.Sprintf("DELETE TOP (%d) FROM ", p.Limit), 1)
	}
	return query, args, nil
}

// Upsert renders MERGE; the statement requires its own terminator.
func (f sqlserverFuncs) Upsert(p UpsertParams) (string, []any, error) {
	query, args, err := mergeUpsert(f.baseFuncs, p, false)
	if err != nil {
		return "", nil, err
	}
	return query + ";", args, nil
}
