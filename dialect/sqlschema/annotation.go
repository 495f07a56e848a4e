// Package sqlschema provides SQL-specific annotations for schema fields
// and tables. Annotations carry settings the field builders have no
// dedicated option for, such as custom column types, CHECK constraints and
// database-side default expressions.
//
// Functional style:
//
//	field.String("code").Annotations(sqlschema.Size(10))
//	field.String("data").Annotations(sqlschema.ColumnType("JSONB"))
//	field.Int("age").Annotations(sqlschema.Check("age >= 0"))
//
// Struct literal style:
//
//	sqlschema.Annotation{
//	    Size:       10,
//	    ColumnType: "JSONB",
//	}
package sqlschema

import (
	"github.com/quarrydb/quarry/dialect"
	"github.com/quarrydb/quarry/schema"
)

// AnnotationName is the name used for SQL annotations.
const AnnotationName = "sql"

// Annotation holds SQL-specific settings for fields and tables.
type Annotation struct {
	// Table overrides the database table name for an entity.
	Table string

	// Schema specifies the database schema (named schema) of the table.
	Schema string

	// Size overrides the column size (e.g. VARCHAR(Size)).
	Size int64

	// ColumnType sets a custom database column type, used verbatim on
	// every dialect.
	ColumnType string

	// ColumnTypes sets custom column types per dialect name. Entries
	// take precedence over ColumnType for the named dialect.
	ColumnTypes map[string]string

	// Collation sets the collation for string columns.
	Collation string

	// Charset sets the character set for string columns.
	Charset string

	// Check adds a CHECK constraint expression to the column.
	Check string

	// Checks holds table-level CHECK constraints, keyed by constraint
	// name.
	Checks map[string]string

	// OnDelete sets the ON DELETE action for the foreign key derived
	// from this field.
	OnDelete dialect.ReferenceOption

	// OnUpdate sets the ON UPDATE action for the foreign key derived
	// from this field.
	OnUpdate dialect.ReferenceOption

	// Default is a SQL literal default, used verbatim in the DEFAULT
	// clause.
	Default string

	// DefaultExpr is a SQL expression default, used verbatim in the
	// DEFAULT clause.
	DefaultExpr string

	// DefaultExprs provides dialect-specific default expressions, keyed
	// by dialect name.
	DefaultExprs map[string]string

	// IncrementStart sets the auto-increment start value. A nil value
	// keeps the vendor default.
	IncrementStart *int

	// Options sets additional table options appended to CREATE TABLE.
	Options string

	// WithComments controls whether comments are stored in the
	// database. Nil means the default, which is to store them.
	WithComments *bool
}

// Name implements schema.Annotation.
func (Annotation) Name() string {
	return AnnotationName
}

var (
	_ schema.Annotation = (*Annotation)(nil)
	_ schema.Merger     = (*Annotation)(nil)
)

// Table sets the database table name for an entity.
func Table(name string) Annotation {
	return Annotation{Table: name}
}

// Schema sets the database schema of the table.
func Schema(name string) Annotation {
	return Annotation{Schema: name}
}

// Size sets the column size override.
//
//	field.String("code").Annotations(sqlschema.Size(10))
func Size(size int64) Annotation {
	return Annotation{Size: size}
}

// ColumnType sets a custom database column type.
//
//	field.String("data").Annotations(sqlschema.ColumnType("JSONB"))
func ColumnType(typ string) Annotation {
	return Annotation{ColumnType: typ}
}

// ColumnTypes sets custom column types per dialect.
//
//	field.String("data").Annotations(sqlschema.ColumnTypes(map[string]string{
//	    dialect.MySQL:    "JSON",
//	    dialect.Postgres: "JSONB",
//	}))
func ColumnTypes(types map[string]string) Annotation {
	return Annotation{ColumnTypes: types}
}

// Collation sets the collation for a string column.
func Collation(c string) Annotation {
	return Annotation{Collation: c}
}

// Charset sets the character set for string columns.
func Charset(charset string) Annotation {
	return Annotation{Charset: charset}
}

// Check adds a CHECK constraint to the column.
//
//	field.Int("age").Annotations(sqlschema.Check("age >= 0"))
func Check(expr string) Annotation {
	return Annotation{Check: expr}
}

// Checks adds named table-level CHECK constraints.
func Checks(checks map[string]string) Annotation {
	return Annotation{Checks: checks}
}

// OnDelete sets the ON DELETE action for the foreign key derived from the
// annotated field.
func OnDelete(action dialect.ReferenceOption) Annotation {
	return Annotation{OnDelete: action}
}

// OnUpdate sets the ON UPDATE action for the foreign key derived from the
// annotated field.
func OnUpdate(action dialect.ReferenceOption) Annotation {
	return Annotation{OnUpdate: action}
}

// Default sets a SQL literal default for the column. The value is used
// as-is in the DEFAULT clause, so string literals carry their own quotes.
//
//	field.String("status").Annotations(sqlschema.Default("'pending'"))
func Default(value string) Annotation {
	return Annotation{Default: value}
}

// DefaultExpr sets a SQL expression as the column default. Whether the
// expression is actually rendered is decided per dialect; an expression a
// dialect rejects degrades the column to nullable with no default clause.
//
//	field.UUID("id").Annotations(sqlschema.DefaultExpr("gen_random_uuid()"))
func DefaultExpr(expr string) Annotation {
	return Annotation{DefaultExpr: expr}
}

// DefaultExprs sets dialect-specific default expressions.
func DefaultExprs(exprs map[string]string) Annotation {
	return Annotation{DefaultExprs: exprs}
}

// IncrementStart sets the auto-increment start value.
func IncrementStart(i int) Annotation {
	return Annotation{IncrementStart: &i}
}

// Options sets additional table options appended to CREATE TABLE.
//
//	sqlschema.Options("ENGINE = InnoDB")
func Options(options string) Annotation {
	return Annotation{Options: options}
}

// WithComments controls whether comments are stored in the database.
func WithComments(enable bool) Annotation {
	return Annotation{WithComments: &enable}
}

// GetTable returns the table name and whether it was set.
func (a Annotation) GetTable() (string, bool) {
	return a.Table, a.Table != ""
}

// GetSize returns the size override and whether it was set.
func (a Annotation) GetSize() (int64, bool) {
	return a.Size, a.Size != 0
}

// GetColumnType returns the column type for the given dialect and whether
// one was set.
func (a Annotation) GetColumnType(dialect string) (string, bool) {
	if typ, ok := a.ColumnTypes[dialect]; ok {
		return typ, true
	}
	return a.ColumnType, a.ColumnType != ""
}

// GetDefault returns the SQL default for the given dialect and whether one
// was set. Dialect-specific expressions win over DefaultExpr, which wins
// over Default.
func (a Annotation) GetDefault(dialect string) (string, bool) {
	if x, ok := a.DefaultExprs[dialect]; ok {
		return x, true
	}
	if a.DefaultExpr != "" {
		return a.DefaultExpr, true
	}
	return a.Default, a.Default != ""
}

// GetOnDelete returns the ON DELETE action and whether it was set.
func (a Annotation) GetOnDelete() (dialect.ReferenceOption, bool) {
	return a.OnDelete, a.OnDelete != ""
}

// GetOnUpdate returns the ON UPDATE action and whether it was set.
func (a Annotation) GetOnUpdate() (dialect.ReferenceOption, bool) {
	return a.OnUpdate, a.OnUpdate != ""
}

// GetWithComments reports whether comments should be stored and whether
// the setting was explicit.
func (a Annotation) GetWithComments() (bool, bool) {
	if a.WithComments == nil {
		return true, false
	}
	return *a.WithComments, true
}

// Merge implements schema.Merger. Later annotations override earlier ones
// for the same setting.
func (a Annotation) Merge(other schema.Annotation) schema.Annotation {
	var ant Annotation
	switch other := other.(type) {
	case Annotation:
		ant = other
	case *Annotation:
		if other != nil {
			ant = *other
		}
	default:
		return a
	}
	if ant.Table != "" {
		a.Table = ant.Table
	}
	if ant.Schema != "" {
		a.Schema = ant.Schema
	}
	if ant.Size != 0 {
		a.Size = ant.Size
	}
	if ant.ColumnType != "" {
		a.ColumnType = ant.ColumnType
	}
	for d, typ := range ant.ColumnTypes {
		if a.ColumnTypes == nil {
			a.ColumnTypes = make(map[string]string)
		}
		a.ColumnTypes[d] = typ
	}
	if ant.Collation != "" {
		a.Collation = ant.Collation
	}
	if ant.Charset != "" {
		a.Charset = ant.Charset
	}
	if ant.Check != "" {
		a.Check = ant.Check
	}
	for name, expr := range ant.Checks {
		if a.Checks == nil {
			a.Checks = make(map[string]string)
		}
		a.Checks[name] = expr
	}
	if ant.OnDelete != "" {
		a.OnDelete = ant.OnDelete
	}
	if ant.OnUpdate != "" {
		a.OnUpdate = ant.OnUpdate
	}
	if ant.Default != "" {
		a.Default = ant.Default
	}
	if ant.DefaultExpr != "" {
		a.DefaultExpr = ant.DefaultExpr
	}
	for d, expr := range ant.DefaultExprs {
		if a.DefaultExprs == nil {
			a.DefaultExprs = make(map[string]string)
		}
		a.DefaultExprs[d] = expr
	}
	if ant.IncrementStart != nil {
		a.IncrementStart = ant.IncrementStart
	}
	if ant.Options != "" {
		a.Options = ant.Options
	}
	if ant.WithComments != nil {
		a.WithComments = ant.WithComments
	}
	return a
}

// MergeAll combines multiple SQL annotations into one.
func MergeAll(annotations ...Annotation) Annotation {
	var merged Annotation
	for _, a := range annotations {
		merged = merged.Merge(a).(Annotation)
	}
	return merged
}
