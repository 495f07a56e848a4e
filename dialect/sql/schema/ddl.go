package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quarrydb/quarry/dialect"
	"github.com/quarrydb/quarry/dialect/sqlschema"
	"github.com/quarrydb/quarry/schema/field"
)

// DDL renders the CREATE TABLE statement for the table on the given
// dialect. Vendor-variant pieces (type tokens, identifier quoting, default
// eligibility) are resolved through the dialect; a column the dialect
// cannot express fails the whole statement.
func (t *Table) DDL(d *dialect.Dialect) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (", d.Quoter.Ident(t.QualifiedName()))
	var pkInType bool
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		clause, err := t.columnDDL(d, c)
		if err != nil {
			return "", err
		}
		b.WriteString(clause)
		// Some dialects fold the primary key into the autoincrement type
		// token (e.g. INTEGER PRIMARY KEY AUTOINCREMENT); a separate
		// constraint clause would then be rejected.
		if c.PrimaryKey() && strings.Contains(clause, "PRIMARY KEY") {
			pkInType = true
		}
	}
	if len(t.PrimaryKey) > 0 && !pkInType {
		b.WriteString(", PRIMARY KEY (")
		b.WriteString(d.Quoter.Idents(columnNames(t.PrimaryKey)...))
		b.WriteString(")")
	}
	for _, fk := range t.ForeignKeys {
		b.WriteString(", ")
		clause, err := fk.DDL(d)
		if err != nil {
			return "", err
		}
		b.WriteString(clause)
	}
	ant := t.annotation()
	for _, name := range sortedKeys(ant.Checks) {
		fmt.Fprintf(&b, ", CONSTRAINT %s CHECK (%s)", d.Quoter.Ident(name), ant.Checks[name])
	}
	b.WriteString(")")
	if ant.Options != "" {
		b.WriteByte(' ')
		b.WriteString(ant.Options)
	}
	return b.String(), nil
}

// annotation returns the table's sql annotation, or the zero value.
func (t *Table) annotation() sqlschema.Annotation {
	switch ant := t.Annotation.(type) {
	case sqlschema.Annotation:
		return ant
	case *sqlschema.Annotation:
		if ant != nil {
			return *ant
		}
	}
	return sqlschema.Annotation{}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// columnDDL renders a single column clause. The default policy is "it or
// null": a default the dialect accepts is rendered together with NOT NULL;
// a default it rejects degrades to a nullable column with no default
// clause, leaving the value to be computed client-side.
func (t *Table) columnDDL(d *dialect.Dialect, c *Column) (string, error) {
	typ, err := columnType(d, c)
	if err != nil {
		return "", fmt.Errorf("schema: table %q: %w", t.Name, err)
	}
	var b strings.Builder
	b.WriteString(d.Quoter.Ident(c.Name))
	b.WriteByte(' ')
	b.WriteString(typ)
	if c.Increment && strings.Contains(typ, "PRIMARY KEY") {
		return b.String(), nil
	}
	if c.Collation != "" {
		b.WriteString(" COLLATE ")
		b.WriteString(c.Collation)
	}
	verbatim, hasVerbatim := c.defaultSQL(d.Name)
	switch {
	case hasVerbatim:
		b.WriteString(" DEFAULT ")
		b.WriteString(verbatim)
		if c.Nullable {
			b.WriteString(" NULL")
		} else {
			b.WriteString(" NOT NULL")
		}
	case c.Default != nil && d.AllowedAsColumnDefault(c.Default):
		sqlDefault, err := d.Types.ProcessDefault(c.Default)
		if err != nil {
			return "", fmt.Errorf("schema: table %q, column %q: %w", t.Name, c.Name, err)
		}
		b.WriteString(" DEFAULT ")
		b.WriteString(sqlDefault)
		if c.Nullable {
			b.WriteString(" NULL")
		} else {
			b.WriteString(" NOT NULL")
		}
	case c.Default != nil:
		b.WriteString(" NULL")
	case c.Nullable:
		b.WriteString(" NULL")
	default:
		b.WriteString(" NOT NULL")
	}
	if c.UniqueKey() && !c.PrimaryKey() {
		b.WriteString(" UNIQUE")
	}
	if c.Check != "" {
		fmt.Fprintf(&b, " CHECK (%s)", c.Check)
	}
	return b.String(), nil
}

// columnType resolves the vendor type token for the column, honoring a
// per-dialect SchemaType override first.
func columnType(d *dialect.Dialect, c *Column) (string, error) {
	if typ, ok := c.SchemaType[d.Name]; ok {
		return typ, nil
	}
	if typ, ok := c.SchemaType[""]; ok {
		return typ, nil
	}
	p := d.Types
	switch c.Type {
	case field.TypeBool:
		return p.BooleanType(), nil
	case field.TypeInt:
		if c.Increment {
			return p.IntegerAutoincType(), nil
		}
		return p.IntegerType(), nil
	case field.TypeInt64:
		if c.Increment {
			return p.LongAutoincType(), nil
		}
		return p.LongType(), nil
	case field.TypeFloat32:
		return p.FloatType(), nil
	case field.TypeFloat64:
		return p.DoubleType(), nil
	case field.TypeString:
		return p.VarcharType(c.Size), nil
	case field.TypeChar:
		return p.CharType(c.Size), nil
	case field.TypeText:
		return p.TextType(), nil
	case field.TypeDate:
		return p.DateType(), nil
	case field.TypeTime:
		return p.DateTimeType(), nil
	case field.TypeTimestamp:
		return p.TimestampType(), nil
	case field.TypeUUID:
		return p.UUIDType(), nil
	case field.TypeBytes:
		typ, err := p.BinaryType(c.Size)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", c.Name, err)
		}
		return typ, nil
	case field.TypeBlob:
		typ, err := p.BlobType()
		if err != nil {
			return "", fmt.Errorf("column %q: %w", c.Name, err)
		}
		return typ, nil
	default:
		return "", fmt.Errorf("column %q has unsupported type %s", c.Name, c.Type)
	}
}

// DDL renders the foreign-key constraint clause. Reference actions default
// to the dialect's default reference option when unset.
func (fk *ForeignKey) DDL(d *dialect.Dialect) (string, error) {
	if len(fk.Columns) == 0 || len(fk.Columns) != len(fk.RefColumns) {
		return "", fmt.Errorf("schema: foreign key %q: %d columns, %d referenced columns", fk.Symbol, len(fk.Columns), len(fk.RefColumns))
	}
	if fk.RefTable == nil {
		return "", fmt.Errorf("schema: foreign key %q has no referenced table", fk.Symbol)
	}
	var b strings.Builder
	if fk.Symbol != "" {
		fmt.Fprintf(&b, "CONSTRAINT %s ", d.Quoter.Ident(fk.Symbol))
	}
	fmt.Fprintf(&b, "FOREIGN KEY (%s) REFERENCES %s (%s)",
		d.Quoter.Idents(columnNames(fk.Columns)...),
		d.Quoter.Ident(fk.RefTable.QualifiedName()),
		d.Quoter.Idents(columnNames(fk.RefColumns)...),
	)
	onUpdate, onDelete := fk.OnUpdate, fk.OnDelete
	if onUpdate == "" {
		onUpdate = d.DefaultReferenceOption
	}
	if onDelete == "" {
		onDelete = d.DefaultReferenceOption
	}
	fmt.Fprintf(&b, " ON UPDATE %s ON DELETE %s", onUpdate, onDelete)
	return b.String(), nil
}

func columnNames(columns []*Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
