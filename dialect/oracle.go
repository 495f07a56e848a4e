package dialect

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	Register(&Dialect{
		Name:                   Oracle,
		Types:                  oracleTypes{},
		Funcs:                  oracleFuncs{baseFuncs{name: Oracle, quoter: QuoteANSI}},
		Quoter:                 QuoteANSI,
		Placeholder:            PlaceholderQuestion,
		SupportsCreateSchema:   false, // Schemas are users; created via CREATE USER.
		SupportsIndexes:        true,
		DefaultReferenceOption: NoAction,
		setSchema: func(q Quoter, name string) string {
			return fmt.Sprintf("ALTER SESSION SET CURRENT_SCHEMA = %s", q.Ident(name))
		},
	})
}

type oracleTypes struct{ baseTypes }

func (oracleTypes) IntegerType() string { return "NUMBER(10)" }
func (oracleTypes) LongType() string    { return "NUMBER(19)" }

// Identity columns require Oracle 12c or later.
func (oracleTypes) IntegerAutoincType() string {
	return "NUMBER(10) GENERATED BY DEFAULT AS IDENTITY"
}
func (oracleTypes) LongAutoincType() string {
	return "NUMBER(19) GENERATED BY DEFAULT AS IDENTITY"
}

func (oracleTypes) FloatType() string    { return "BINARY_FLOAT" }
func (oracleTypes) DoubleType() string   { return "BINARY_DOUBLE" }
func (oracleTypes) TextType() string     { return "CLOB" }
func (oracleTypes) DateTimeType() string { return "TIMESTAMP" }

// Oracle has no boolean column type; the conventional CHAR(1) 0/1 encoding
// is used.
func (oracleTypes) BooleanType() string { return "CHAR(1)" }
func (oracleTypes) BooleanToSQL(b bool) string {
	if b {
		return "'1'"
	}
	return "'0'"
}

func (oracleTypes) VarcharType(size int) string {
	if size <= 0 {
		size = 255
	}
	return fmt.Sprintf("VARCHAR2(%d)", size)
}

func (oracleTypes) UUIDType() string          { return "RAW(16)" }
func (oracleTypes) UUIDToDB(id uuid.UUID) any { return id[:] }

func (oracleTypes) BinaryType(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("dialect: binary column requires an explicit length")
	}
	if size > 2000 {
		return "", fmt.Errorf("dialect: RAW columns are limited to 2000 bytes, got %d", size)
	}
	return fmt.Sprintf("RAW(%d)", size), nil
}

// ProcessDefault maps boolean literals through the CHAR(1) encoding and
// date/time literals through ANSI date literals; everything else follows
// the baseline.
func (t oracleTypes) ProcessDefault(x Expression) (string, error) {
	if l, ok := literalOf(x); ok && l.Value != nil {
		switch l.Kind {
		case KindBool:
			b, _ := l.Value.(bool)
			return t.BooleanToSQL(b), nil
		case KindDate:
			return fmt.Sprintf("DATE '%s'", formatTime(l.Value, "2006-01-02")), nil
		case KindDateTime, KindTimestamp:
			return fmt.Sprintf("TIMESTAMP '%s'", formatTime(l.Value, "2006-01-02 15:04:05")), nil
		}
	}
	return t.baseTypes.ProcessDefault(x)
}

type oracleFuncs struct{ baseFuncs }

// GroupConcat renders LISTAGG, which requires an explicit ordering.
func (f oracleFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	if len(orderBy) == 0 {
		return "", fmt.Errorf("dialect: LISTAGG on %s requires ORDER BY", f.name)
	}
	return fmt.Sprintf("LISTAGG(%s, %s) WITHIN GROUP (ORDER BY %s)",
		expr, quoteString(separator), strings.Join(orderBy, ", ")), nil
}

// Upsert renders MERGE driven by the given key columns. The source row is
// a SELECT without a table, which Oracle spells as SELECT ... FROM DUAL.
func (f oracleFuncs) Upsert(p UpsertParams) (string, []any, error) {
	return mergeUpsert(f.baseFuncs, p, true)
}
