package schema

import (
	"fmt"
	"strings"

	"github.com/quarrydb/quarry"
	"github.com/quarrydb/quarry/dialect"
	"github.com/quarrydb/quarry/dialect/sqlschema"
	"github.com/quarrydb/quarry/schema"
	"github.com/quarrydb/quarry/schema/field"
	"github.com/quarrydb/quarry/schema/index"
)

// ReferenceOption for constraint actions.
type ReferenceOption = dialect.ReferenceOption

// Reference options.
const (
	NoAction   = dialect.NoAction
	Restrict   = dialect.Restrict
	Cascade    = dialect.Cascade
	SetNull    = dialect.SetNull
	SetDefault = dialect.SetDefault
)

// Table schema definition.
type Table struct {
	Name        string
	Schema      string
	Columns     []*Column
	columns     map[string]*Column
	Indexes     []*Index
	PrimaryKey  []*Column
	ForeignKeys []*ForeignKey
	Annotation  schema.Annotation
	Comment     string
}

// NewTable returns a new table with the given name.
func NewTable(name string) *Table {
	return &Table{
		Name:    name,
		columns: make(map[string]*Column),
	}
}

// TableOf builds a table from field definitions, lowering each field to a
// column. Mixins are expanded by appending their fields to the list.
func TableOf(name string, fields ...quarry.Field) (*Table, error) {
	t := NewTable(name)
	for _, f := range fields {
		c, err := ColumnOf(f.Descriptor())
		if err != nil {
			return nil, err
		}
		t.AddColumn(c)
	}
	return t, nil
}

// Fields flattens mixins and standalone fields into a single field list,
// with mixin fields first.
func Fields(mixins []quarry.Mixin, fields ...quarry.Field) []quarry.Field {
	var all []quarry.Field
	for _, m := range mixins {
		all = append(all, m.Fields()...)
	}
	return append(all, fields...)
}

// IndexOf adds an index built from the given descriptor. The index name
// defaults to the table name joined with the column names.
func (t *Table) IndexOf(ix *index.Descriptor) *Table {
	name := ix.StorageKey
	if name == "" {
		name = strings.Join(append([]string{t.Name}, ix.Fields...), "_")
	}
	return t.AddIndex(name, ix.Unique, ix.Fields)
}

// AddPrimary adds a new primary-key column to the table.
func (t *Table) AddPrimary(c *Column) *Table {
	c.Key = PrimaryKey
	t.AddColumn(c)
	t.PrimaryKey = append(t.PrimaryKey, c)
	return t
}

// AddForeignKey adds a foreign key to the table.
func (t *Table) AddForeignKey(fk *ForeignKey) *Table {
	t.ForeignKeys = append(t.ForeignKeys, fk)
	return t
}

// AddColumn adds a new column to the table.
func (t *Table) AddColumn(c *Column) *Table {
	if t.columns == nil {
		t.columns = make(map[string]*Column)
	}
	t.columns[c.Name] = c
	t.Columns = append(t.Columns, c)
	return t
}

// AddIndex creates and adds a new index to the table from the given options.
func (t *Table) AddIndex(name string, unique bool, columns []string) *Table {
	idx := &Index{
		Name:    name,
		Unique:  unique,
		Columns: make([]*Column, 0, len(columns)),
	}
	for _, name := range columns {
		if c, ok := t.columns[name]; ok {
			idx.Columns = append(idx.Columns, c)
			c.indexes.append(idx)
		}
	}
	t.Indexes = append(t.Indexes, idx)
	return t
}

// Column returns the table column by name, or nil.
func (t *Table) Column(name string) *Column {
	return t.columns[name]
}

// SetComment sets the table comment.
func (t *Table) SetComment(c string) *Table {
	t.Comment = c
	return t
}

// SetSchema sets the database (named schema) of the table.
func (t *Table) SetSchema(s string) *Table {
	t.Schema = s
	return t
}

// SetAnnotation sets the table annotation.
func (t *Table) SetAnnotation(ant schema.Annotation) *Table {
	t.Annotation = ant
	return t
}

// QualifiedName returns the schema-qualified table name.
func (t *Table) QualifiedName() string {
	if t.Schema != "" {
		return t.Schema + "." + t.Name
	}
	return t.Name
}

// column keys.
const (
	// PrimaryKey marks the column as a primary-key member.
	PrimaryKey = "PRI"
	// UniqueKey marks the column as unique.
	UniqueKey = "UNI"
)

// Column schema definition.
type Column struct {
	Name      string             // column name.
	Type      field.Type         // logical column type.
	Size      int                // varchar, char or binary size.
	Key       string             // key definition (PRI or UNI).
	Unique    bool               // unique constraint.
	Increment bool               // auto-increment.
	Nullable  bool               // null or not null attribute.
	Default   dialect.Expression // default expression, rendered only when the dialect allows it.
	Comment   string             // column comment.
	Check     string             // CHECK constraint expression.
	Collation string             // collation for string columns.
	// SchemaType overrides the rendered type token per dialect name. The
	// empty key applies to every dialect.
	SchemaType map[string]string
	// DefaultSQL overrides the rendered DEFAULT clause per dialect name,
	// with the empty key applying to every dialect. Values are vendor SQL
	// used verbatim; unlike Default they are not subject to the dialect's
	// default-eligibility rule, since the author asserts their
	// correctness explicitly.
	DefaultSQL map[string]string
	indexes    Indexes // container indexes.
}

// UniqueKey returns boolean indicates if this column is a unique key.
func (c *Column) UniqueKey() bool { return c.Key == UniqueKey }

// PrimaryKey returns boolean indicates if this column is on of the primary key columns.
func (c *Column) PrimaryKey() bool { return c.Key == PrimaryKey }

// ColumnOf lowers a field descriptor to a schema column. The descriptor's
// logical type, size and constraints carry over; a database default is
// wrapped as an expression when it is not one already.
func ColumnOf(fd *field.Descriptor) (*Column, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("schema: field %q: %w", fd.Name, fd.Err)
	}
	if !fd.Type.Valid() {
		return nil, fmt.Errorf("schema: field %q has invalid type %s", fd.Name, fd.Type)
	}
	c := &Column{
		Name:       fd.Name,
		Type:       fd.Type,
		Size:       fd.Size,
		Unique:     fd.Unique,
		Nullable:   fd.Optional || fd.Nillable,
		Comment:    fd.Comment,
		SchemaType: fd.SchemaType,
	}
	if fd.Unique {
		c.Key = UniqueKey
	}
	if fd.Default != nil {
		x, err := defaultExpr(fd)
		if err != nil {
			return nil, err
		}
		c.Default = x
	}
	if ant, ok := annotation(fd.Annotations); ok {
		applyAnnotation(c, ant)
	}
	return c, nil
}

// annotation merges all sql annotations attached to the field.
func annotation(ants []schema.Annotation) (sqlschema.Annotation, bool) {
	var (
		merged sqlschema.Annotation
		found  bool
	)
	for _, a := range ants {
		switch a := a.(type) {
		case sqlschema.Annotation:
			merged = merged.Merge(a).(sqlschema.Annotation)
			found = true
		case *sqlschema.Annotation:
			if a != nil {
				merged = merged.Merge(a).(sqlschema.Annotation)
				found = true
			}
		}
	}
	return merged, found
}

func applyAnnotation(c *Column, ant sqlschema.Annotation) {
	if size, ok := ant.GetSize(); ok {
		c.Size = int(size)
	}
	if ant.Check != "" {
		c.Check = ant.Check
	}
	if ant.Collation != "" {
		c.Collation = ant.Collation
	}
	if ant.ColumnType != "" {
		setSchemaType(c, "", ant.ColumnType)
	}
	for d, typ := range ant.ColumnTypes {
		setSchemaType(c, d, typ)
	}
	if len(ant.DefaultExprs) > 0 || ant.DefaultExpr != "" || ant.Default != "" {
		if c.DefaultSQL == nil {
			c.DefaultSQL = make(map[string]string, len(ant.DefaultExprs)+1)
		}
		for d, x := range ant.DefaultExprs {
			c.DefaultSQL[d] = x
		}
		switch {
		case ant.DefaultExpr != "":
			c.DefaultSQL[""] = ant.DefaultExpr
		case ant.Default != "":
			c.DefaultSQL[""] = ant.Default
		}
	}
}

// setSchemaType sets a type override without clobbering a field-level
// entry for the same dialect. The column may share the descriptor's map,
// so writes go through a copy.
func setSchemaType(c *Column, dialect, typ string) {
	if _, ok := c.SchemaType[dialect]; ok {
		return
	}
	m := make(map[string]string, len(c.SchemaType)+1)
	for k, v := range c.SchemaType {
		m[k] = v
	}
	m[dialect] = typ
	c.SchemaType = m
}

// defaultSQL returns the verbatim default override for the dialect, if any.
func (c *Column) defaultSQL(dialect string) (string, bool) {
	if x, ok := c.DefaultSQL[dialect]; ok {
		return x, true
	}
	x, ok := c.DefaultSQL[""]
	return x, ok
}

// defaultExpr wraps the descriptor default as a dialect expression.
func defaultExpr(fd *field.Descriptor) (dialect.Expression, error) {
	if x, ok := fd.Default.(dialect.Expression); ok {
		return x, nil
	}
	kind, ok := literalKind(fd.Type)
	if !ok {
		return nil, fmt.Errorf("schema: field %q: unsupported default for type %s", fd.Name, fd.Type)
	}
	return dialect.Literal{Value: fd.Default, Kind: kind}, nil
}

func literalKind(t field.Type) (dialect.Kind, bool) {
	switch {
	case t == field.TypeBool:
		return dialect.KindBool, true
	case t.Numeric():
		return dialect.KindNumeric, true
	case t == field.TypeString, t == field.TypeChar, t == field.TypeText:
		return dialect.KindString, true
	case t == field.TypeDate:
		return dialect.KindDate, true
	case t == field.TypeTime:
		return dialect.KindDateTime, true
	case t == field.TypeTimestamp:
		return dialect.KindTimestamp, true
	case t == field.TypeUUID:
		return dialect.KindUUID, true
	case t == field.TypeBytes, t == field.TypeBlob:
		return dialect.KindBinary, true
	default:
		return 0, false
	}
}

// ForeignKey definition of a database foreign key.
type ForeignKey struct {
	Symbol     string          // foreign-key name generated if empty.
	Columns    []*Column       // table columns.
	RefTable   *Table          // referenced table.
	RefColumns []*Column       // referenced columns.
	OnUpdate   ReferenceOption // action on update.
	OnDelete   ReferenceOption // action on delete.
}

// Index definition of a database index.
type Index struct {
	Name    string    // index name.
	Unique  bool      // uniqueness.
	Columns []*Column // actual table columns.
}

// Indexes is a set of indexes deduplicated by name, because a multi-column
// index is referenced by each of its columns.
type Indexes []*Index

func (i *Indexes) append(idx1 *Index) {
	for _, idx2 := range *i {
		if idx2.Name == idx1.Name {
			return
		}
	}
	*i = append(*i, idx1)
}
