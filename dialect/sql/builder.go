package sql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/quarrydb/quarry/dialect"
)

// Querier wraps the Query method. All statement builders implement it.
type Querier interface {
	// Query returns the query representation of the element
	// and its arguments (if any).
	Query() (string, []any)
}

// Builder is the base query builder for the sql dsl. It renders ?-style
// placeholders; Query rewrites them into the dialect's bind style.
type Builder struct {
	sb      *strings.Builder
	dialect string
	args    []any
	errs    []error
}

// Dialect creates a builder factory for the given dialect. The dialect must
// be registered; unknown names surface as errors at Query time.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{name}
}

// SetDialect sets the builder dialect.
func (b *Builder) SetDialect(name string) {
	b.dialect = name
}

// Dialect returns the name of the builder dialect.
func (b Builder) Dialect() string {
	return b.dialect
}

// AddError appends an error to the builder errors.
func (b *Builder) AddError(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Err returns a concatenated error of all errors encountered during
// the query-building, or nil if none occurred.
func (b Builder) Err() error {
	return errors.Join(b.errs...)
}

func (b *Builder) writer() *strings.Builder {
	if b.sb == nil {
		b.sb = &strings.Builder{}
	}
	return b.sb
}

// WriteString appends the string to the query buffer.
func (b *Builder) WriteString(s string) *Builder {
	b.writer().WriteString(s)
	return b
}

// WriteByte appends the byte to the query buffer.
func (b *Builder) WriteByte(c byte) *Builder {
	b.writer().WriteByte(c)
	return b
}

// Quote quotes the given identifier with the dialect quoter. Strings that
// are not plain identifiers (stars, function calls, pre-quoted input) are
// returned unchanged.
func (b *Builder) Quote(ident string) string {
	if ident == "" || ident == "*" || strings.ContainsAny(ident, "(`\"[ ") {
		return ident
	}
	return b.quoter().Ident(ident)
}

// Ident appends the given string as a quoted identifier.
func (b *Builder) Ident(s string) *Builder {
	return b.WriteString(b.Quote(s))
}

// IdentComma calls Ident on all arguments and adds a comma between them.
func (b *Builder) IdentComma(s ...string) *Builder {
	for i := range s {
		if i > 0 {
			b.Comma()
		}
		b.Ident(s[i])
	}
	return b
}

// Arg appends a placeholder for the given argument.
func (b *Builder) Arg(v any) *Builder {
	b.args = append(b.args, v)
	return b.WriteString("?")
}

// Args appends a comma-separated list of placeholders for the arguments.
func (b *Builder) Args(vs ...any) *Builder {
	for i := range vs {
		if i > 0 {
			b.Comma()
		}
		b.Arg(vs[i])
	}
	return b
}

// Comma adds a comma to the query.
func (b *Builder) Comma() *Builder {
	return b.WriteString(", ")
}

// Pad adds a space to the query.
func (b *Builder) Pad() *Builder {
	return b.WriteByte(' ')
}

// Nested appends the given callback in parens.
func (b *Builder) Nested(f func(*Builder)) *Builder {
	b.WriteByte('(')
	f(b)
	return b.WriteByte(')')
}

// String returns the accumulated query string with ?-style placeholders.
func (b Builder) String() string {
	if b.sb == nil {
		return ""
	}
	return b.sb.String()
}

// Query returns the accumulated query, rebound to the dialect placeholder
// style, and its arguments.
func (b *Builder) Query() (string, []any) {
	query := b.String()
	if d, err := dialect.Lookup(b.dialect); err == nil {
		query = d.Rebind(query)
	}
	return query, b.args
}

// quoter returns the identifier quoter for the builder dialect, or the ANSI
// quoter when the dialect is not registered.
func (b Builder) quoter() dialect.Quoter {
	if d, err := dialect.Lookup(b.dialect); err == nil {
		return d.Quoter
	}
	return dialect.QuoteANSI
}

// lookup resolves the builder dialect from the registry and records the
// lookup failure on the builder.
func (b *Builder) lookup() (*dialect.Dialect, bool) {
	d, err := dialect.Lookup(b.dialect)
	if err != nil {
		b.AddError(err)
		return nil, false
	}
	return d, true
}

// clone returns a fresh builder carrying the receiver's dialect.
func (b Builder) clone() Builder {
	return Builder{dialect: b.dialect}
}

// An Op represents a predicate operator.
type Op int

// Predicate operators.
const (
	OpEQ      Op = iota // =
	OpNEQ               // <>
	OpGT                // >
	OpGTE               // >=
	OpLT                // <
	OpLTE               // <=
	OpIn                // IN
	OpNotIn             // NOT IN
	OpLike              // LIKE
	OpIsNull            // IS NULL
	OpNotNull           // IS NOT NULL
)

var ops = [...]string{
	OpEQ:      "=",
	OpNEQ:     "<>",
	OpGT:      ">",
	OpGTE:     ">=",
	OpLT:      "<",
	OpLTE:     "<=",
	OpIn:      "IN",
	OpNotIn:   "NOT IN",
	OpLike:    "LIKE",
	OpIsNull:  "IS NULL",
	OpNotNull: "IS NOT NULL",
}

// WriteOp writes the operator to the query with padding.
func (b *Builder) WriteOp(op Op) *Builder {
	switch {
	case op >= OpEQ && op <= OpLike:
		b.Pad().WriteString(ops[op]).Pad()
	case op == OpIsNull || op == OpNotNull:
		b.Pad().WriteString(ops[op])
	default:
		b.AddError(fmt.Errorf("invalid op %d", op))
	}
	return b
}

// Predicate is a query predicate. It records its rendering steps and
// replays them into the enclosing statement builder, so that a predicate
// can be built before the statement (and its dialect) is known.
type Predicate struct {
	Builder
	fns []func(*Builder)
}

// P creates a new predicate from the given rendering steps.
func P(fns ...func(*Builder)) *Predicate {
	return &Predicate{fns: fns}
}

// Append appends a rendering step to the predicate.
func (p *Predicate) Append(f func(*Builder)) *Predicate {
	p.fns = append(p.fns, f)
	return p
}

// Query returns the predicate SQL, rebound to the dialect placeholder
// style, and its arguments.
func (p *Predicate) Query() (string, []any) {
	b := p.clone()
	for _, f := range p.fns {
		f(&b)
	}
	p.errs = append(p.errs, b.errs...)
	return b.Query()
}

// render replays the predicate steps into the given builder.
func (p *Predicate) render(b *Builder) {
	for _, f := range p.fns {
		f(b)
	}
}

// compile renders the predicate for the given dialect without rebinding,
// for handing over to a dialect function provider.
func (p *Predicate) compile(dialectName string) *dialect.Predicate {
	b := Builder{dialect: dialectName}
	for _, f := range p.fns {
		f(&b)
	}
	return &dialect.Predicate{SQL: b.String(), Args: b.args}
}

// And combines the given predicates with AND.
func And(preds ...*Predicate) *Predicate {
	return combine("AND", preds)
}

// Or combines the given predicates with OR.
func Or(preds ...*Predicate) *Predicate {
	return combine("OR", preds)
}

func combine(op string, preds []*Predicate) *Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return P(func(b *Builder) {
		for i, p := range preds {
			if i > 0 {
				b.Pad().WriteString(op).Pad()
			}
			b.Nested(p.render)
		}
	})
}

// Not negates the given predicate.
func Not(pred *Predicate) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("NOT ")
		b.Nested(pred.render)
	})
}

func binary(col string, op Op, v any) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteOp(op).Arg(v)
	})
}

// EQ returns a "=" predicate.
func EQ(col string, v any) *Predicate { return binary(col, OpEQ, v) }

// NEQ returns a "<>" predicate.
func NEQ(col string, v any) *Predicate { return binary(col, OpNEQ, v) }

// GT returns a ">" predicate.
func GT(col string, v any) *Predicate { return binary(col, OpGT, v) }

// GTE returns a ">=" predicate.
func GTE(col string, v any) *Predicate { return binary(col, OpGTE, v) }

// LT returns a "<" predicate.
func LT(col string, v any) *Predicate { return binary(col, OpLT, v) }

// LTE returns a "<=" predicate.
func LTE(col string, v any) *Predicate { return binary(col, OpLTE, v) }

// ColumnsEQ returns a column-to-column equality predicate.
func ColumnsEQ(col1, col2 string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col1).WriteOp(OpEQ).Ident(col2)
	})
}

// In returns an IN predicate. An empty list matches no rows.
func In(col string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("FALSE")
			return
		}
		b.Ident(col).WriteOp(OpIn).Nested(func(b *Builder) {
			b.Args(vs...)
		})
	})
}

// NotIn returns a NOT IN predicate. An empty list matches all rows.
func NotIn(col string, vs ...any) *Predicate {
	return P(func(b *Builder) {
		if len(vs) == 0 {
			b.WriteString("TRUE")
			return
		}
		b.Ident(col).WriteOp(OpNotIn).Nested(func(b *Builder) {
			b.Args(vs...)
		})
	})
}

// IsNull returns an IS NULL predicate.
func IsNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteOp(OpIsNull)
	})
}

// NotNull returns an IS NOT NULL predicate.
func NotNull(col string) *Predicate {
	return P(func(b *Builder) {
		b.Ident(col).WriteOp(OpNotNull)
	})
}

// Like returns a LIKE predicate with the pattern as a bound argument.
func Like(col, pattern string) *Predicate {
	return binary(col, OpLike, pattern)
}

// escapeLike escapes the LIKE wildcard characters in a literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// Contains returns a substring-match predicate.
func Contains(col, sub string) *Predicate {
	return Like(col, "%"+escapeLike(sub)+"%")
}

// HasPrefix returns a prefix-match predicate.
func HasPrefix(col, prefix string) *Predicate {
	return Like(col, escapeLike(prefix)+"%")
}

// HasSuffix returns a suffix-match predicate.
func HasSuffix(col, suffix string) *Predicate {
	return Like(col, "%"+escapeLike(suffix))
}

// EqualFold returns a case-insensitive equality predicate.
func EqualFold(col, v string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(").Ident(col).WriteString(")").WriteOp(OpEQ).Arg(strings.ToLower(v))
	})
}

// ContainsFold returns a case-insensitive substring-match predicate.
func ContainsFold(col, sub string) *Predicate {
	return P(func(b *Builder) {
		b.WriteString("LOWER(").Ident(col).WriteString(")").WriteOp(OpLike).Arg("%" + escapeLike(strings.ToLower(sub)) + "%")
	})
}

// FieldEQ returns a selector predicate for field equality.
func FieldEQ(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(EQ(s.C(name), v)) }
}

// FieldNEQ returns a selector predicate for field inequality.
func FieldNEQ(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(NEQ(s.C(name), v)) }
}

// FieldGT returns a selector predicate for field greater-than.
func FieldGT(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(GT(s.C(name), v)) }
}

// FieldGTE returns a selector predicate for field greater-than-or-equal.
func FieldGTE(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(GTE(s.C(name), v)) }
}

// FieldLT returns a selector predicate for field less-than.
func FieldLT(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(LT(s.C(name), v)) }
}

// FieldLTE returns a selector predicate for field less-than-or-equal.
func FieldLTE(name string, v any) func(*Selector) {
	return func(s *Selector) { s.Where(LTE(s.C(name), v)) }
}

// FieldIn returns a selector predicate for field membership.
func FieldIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) { s.Where(In(s.C(name), anySlice(vs)...)) }
}

// FieldNotIn returns a selector predicate for field non-membership.
func FieldNotIn[T any](name string, vs ...T) func(*Selector) {
	return func(s *Selector) { s.Where(NotIn(s.C(name), anySlice(vs)...)) }
}

func anySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i := range vs {
		out[i] = vs[i]
	}
	return out
}

// FieldContains returns a selector predicate for substring match.
func FieldContains(name, sub string) func(*Selector) {
	return func(s *Selector) { s.Where(Contains(s.C(name), sub)) }
}

// FieldContainsFold returns a selector predicate for case-insensitive substring match.
func FieldContainsFold(name, sub string) func(*Selector) {
	return func(s *Selector) { s.Where(ContainsFold(s.C(name), sub)) }
}

// FieldHasPrefix returns a selector predicate for prefix match.
func FieldHasPrefix(name, prefix string) func(*Selector) {
	return func(s *Selector) { s.Where(HasPrefix(s.C(name), prefix)) }
}

// FieldHasSuffix returns a selector predicate for suffix match.
func FieldHasSuffix(name, suffix string) func(*Selector) {
	return func(s *Selector) { s.Where(HasSuffix(s.C(name), suffix)) }
}

// FieldEqualFold returns a selector predicate for case-insensitive equality.
func FieldEqualFold(name, v string) func(*Selector) {
	return func(s *Selector) { s.Where(EqualFold(s.C(name), v)) }
}

// FieldIsNull returns a selector predicate for NULL fields.
func FieldIsNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(IsNull(s.C(name))) }
}

// FieldNotNull returns a selector predicate for non-NULL fields.
func FieldNotNull(name string) func(*Selector) {
	return func(s *Selector) { s.Where(NotNull(s.C(name))) }
}

// TableView is a view that can appear in the FROM clause of a selector,
// either a table or a sub-selector.
type TableView interface {
	view()
}

// SelectTable is a table selection with an optional alias.
type SelectTable struct {
	Builder
	name string
	as   string
}

// Table returns a new table view for the given table name.
func Table(name string) *SelectTable {
	return &SelectTable{name: name}
}

// As sets the table alias.
func (s *SelectTable) As(alias string) *SelectTable {
	s.as = alias
	return s
}

// Name returns the table name.
func (s *SelectTable) Name() string {
	return s.name
}

// C returns the table-qualified column name.
func (s *SelectTable) C(column string) string {
	name := s.name
	if s.as != "" {
		name = s.as
	}
	return name + "." + column
}

func (*SelectTable) view() {}

// ref renders the table reference into the builder.
func (s *SelectTable) ref(b *Builder) {
	b.WriteString(b.quoter().Ident(s.name))
	if s.as != "" {
		b.WriteString(" AS ").WriteString(b.quoter().Ident(s.as))
	}
}

// Selector is a builder for the SELECT statement.
type Selector struct {
	Builder
	as       string
	columns  []string
	from     TableView
	joins    []join
	where    *Predicate
	distinct bool
	order    []string
	group    []string
	having   *Predicate
	limit    *int
	offset   *int
	lock     string
}

type join struct {
	kind  string
	table TableView
	on    *Predicate
}

// Select returns a new selector for the given columns with the default
// dialect.
func Select(columns ...string) *Selector {
	return Dialect(dialect.Generic).Select(columns...)
}

// Select sets the columns of the selection.
func (s *Selector) Select(columns ...string) *Selector {
	s.columns = columns
	return s
}

// AppendSelect appends additional columns to the selection.
func (s *Selector) AppendSelect(columns ...string) *Selector {
	s.columns = append(s.columns, columns...)
	return s
}

// Distinct marks the selection as distinct.
func (s *Selector) Distinct() *Selector {
	s.distinct = true
	return s
}

// From sets the FROM clause of the selection.
func (s *Selector) From(t TableView) *Selector {
	s.setViewDialect(t)
	s.from = t
	return s
}

// As sets the selector alias for use as a sub-query.
func (s *Selector) As(alias string) *Selector {
	s.as = alias
	return s
}

func (s *Selector) setViewDialect(t TableView) {
	switch t := t.(type) {
	case *SelectTable:
		t.SetDialect(s.dialect)
	case *Selector:
		t.SetDialect(s.dialect)
	}
}

// Join appends an INNER JOIN to the selection.
func (s *Selector) Join(t TableView) *Selector {
	return s.join("JOIN", t)
}

// LeftJoin appends a LEFT JOIN to the selection.
func (s *Selector) LeftJoin(t TableView) *Selector {
	return s.join("LEFT JOIN", t)
}

// RightJoin appends a RIGHT JOIN to the selection.
func (s *Selector) RightJoin(t TableView) *Selector {
	return s.join("RIGHT JOIN", t)
}

func (s *Selector) join(kind string, t TableView) *Selector {
	s.setViewDialect(t)
	s.joins = append(s.joins, join{kind: kind, table: t})
	return s
}

// On sets the join condition of the last join to column equality.
func (s *Selector) On(col1, col2 string) *Selector {
	return s.OnP(ColumnsEQ(col1, col2))
}

// OnP sets the join condition of the last join to the given predicate.
func (s *Selector) OnP(p *Predicate) *Selector {
	if len(s.joins) == 0 {
		s.AddError(errors.New("dialect/sql: join condition without a join"))
		return s
	}
	j := &s.joins[len(s.joins)-1]
	if j.on != nil {
		j.on = And(j.on, p)
	} else {
		j.on = p
	}
	return s
}

// Where adds the predicate to the WHERE clause, combined with AND when a
// predicate already exists.
func (s *Selector) Where(p *Predicate) *Selector {
	if s.where != nil {
		s.where = And(s.where, p)
	} else {
		s.where = p
	}
	return s
}

// P returns the current predicate of the selector.
func (s *Selector) P() *Predicate {
	return s.where
}

// C returns the table-qualified column name for the selection table.
func (s *Selector) C(column string) string {
	if t, ok := s.from.(*SelectTable); ok {
		return t.C(column)
	}
	if s.as != "" {
		return s.as + "." + column
	}
	return column
}

// OrderBy appends the given columns to the ORDER BY clause.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.order = append(s.order, columns...)
	return s
}

// GroupBy appends the given columns to the GROUP BY clause.
func (s *Selector) GroupBy(columns ...string) *Selector {
	s.group = append(s.group, columns...)
	return s
}

// Having sets the HAVING clause of the selection.
func (s *Selector) Having(p *Predicate) *Selector {
	s.having = p
	return s
}

// Limit limits the number of returned rows.
func (s *Selector) Limit(n int) *Selector {
	s.limit = &n
	return s
}

// Offset skips the first n rows.
func (s *Selector) Offset(n int) *Selector {
	s.offset = &n
	return s
}

// ForUpdate locks the selected rows for update.
func (s *Selector) ForUpdate() *Selector {
	s.lock = "FOR UPDATE"
	return s
}

// ForShare locks the selected rows in share mode.
func (s *Selector) ForShare() *Selector {
	s.lock = "FOR SHARE"
	return s
}

func (*Selector) view() {}

// Asc returns an ascending order clause for the column.
func Asc(column string) string {
	return column + " ASC"
}

// Desc returns a descending order clause for the column.
func Desc(column string) string {
	return column + " DESC"
}

// Query returns the SELECT statement and its arguments.
func (s *Selector) Query() (string, []any) {
	b := s.clone()
	s.render(&b)
	s.errs = append(s.errs, b.errs...)
	query, args := b.Query()
	return query, args
}

func (s *Selector) render(b *Builder) {
	b.WriteString("SELECT ")
	if s.distinct {
		b.WriteString("DISTINCT ")
	}
	if len(s.columns) == 0 {
		b.WriteString("*")
	} else {
		b.IdentComma(s.columns...)
	}
	b.WriteString(" FROM ")
	s.renderView(b, s.from)
	for _, j := range s.joins {
		b.Pad().WriteString(j.kind).Pad()
		s.renderView(b, j.table)
		if j.on != nil {
			b.WriteString(" ON ")
			j.on.render(b)
		}
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		s.where.render(b)
	}
	if len(s.group) > 0 {
		b.WriteString(" GROUP BY ")
		b.IdentComma(s.group...)
	}
	if s.having != nil {
		b.WriteString(" HAVING ")
		s.having.render(b)
	}
	if len(s.order) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range s.order {
			if i > 0 {
				b.Comma()
			}
			// Order terms may carry an ASC/DESC suffix.
			if col, dir, ok := strings.Cut(o, " "); ok {
				b.Ident(col).Pad().WriteString(dir)
			} else {
				b.Ident(o)
			}
		}
	}
	if s.limit != nil {
		b.WriteString(" LIMIT ").WriteString(strconv.Itoa(*s.limit))
	}
	if s.offset != nil {
		b.WriteString(" OFFSET ").WriteString(strconv.Itoa(*s.offset))
	}
	if s.lock != "" {
		b.Pad().WriteString(s.lock)
	}
}

func (s *Selector) renderView(b *Builder, t TableView) {
	switch t := t.(type) {
	case *SelectTable:
		t.ref(b)
	case *Selector:
		b.Nested(func(b *Builder) {
			t.render(b)
		})
		if t.as != "" {
			b.WriteString(" AS ").WriteString(b.quoter().Ident(t.as))
		}
	case nil:
		b.AddError(errors.New("dialect/sql: missing FROM clause"))
	}
}

// InsertBuilder is a builder for the INSERT statement.
type InsertBuilder struct {
	Builder
	table     string
	columns   []string
	values    [][]any
	defaults  bool
	returning []string
	conflict  *conflict
}

// conflict holds the insert-or-update configuration. Rendering is delegated
// to the dialect function provider.
type conflict struct {
	keys   []string
	update []string
	on     string
}

// Insert returns a new insert builder for the given table with the default
// dialect.
func Insert(table string) *InsertBuilder {
	return Dialect(dialect.Generic).Insert(table)
}

// Columns sets the insert columns.
func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = columns
	return i
}

// Values appends a row of values to the insert.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append(i.values, values)
	return i
}

// Default marks the insert to use the column defaults for all values.
func (i *InsertBuilder) Default() *InsertBuilder {
	i.defaults = true
	return i
}

// Returning sets the columns returned by the insert. Dialects without a
// RETURNING clause ignore it.
func (i *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	i.returning = columns
	return i
}

// OnConflict marks the insert to update existing rows identified by the
// given unique key columns instead of failing.
func (i *InsertBuilder) OnConflict(keys ...string) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.keys = keys
	return i
}

// ConflictUpdate restricts the columns rewritten on conflict. When not
// called, all non-key columns are updated.
func (i *InsertBuilder) ConflictUpdate(columns ...string) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.update = columns
	return i
}

// MergeOn sets an explicit match condition for dialects whose upsert is a
// MERGE that cannot derive the condition from a unique key.
func (i *InsertBuilder) MergeOn(cond string) *InsertBuilder {
	if i.conflict == nil {
		i.conflict = &conflict{}
	}
	i.conflict.on = cond
	return i
}

// Query returns the INSERT statement and its arguments.
func (i *InsertBuilder) Query() (string, []any) {
	d, ok := i.lookup()
	if !ok {
		return "", nil
	}
	if i.conflict != nil {
		return i.upsertQuery(d)
	}
	b := i.clone()
	if i.defaults {
		i.renderDefaults(&b)
	} else {
		b.WriteString("INSERT INTO ").Ident(i.table).WriteString(" (").IdentComma(i.columns...).WriteString(") VALUES ")
		for j, row := range i.values {
			if j > 0 {
				b.Comma()
			}
			if len(row) != len(i.columns) {
				b.AddError(fmt.Errorf("dialect/sql: insert into %q: %d columns, %d values", i.table, len(i.columns), len(row)))
			}
			b.Nested(func(b *Builder) {
				b.Args(row...)
			})
		}
	}
	if len(i.returning) > 0 && d.SupportsReturning {
		b.WriteString(" RETURNING ").IdentComma(i.returning...)
	}
	i.errs = append(i.errs, b.errs...)
	return b.Query()
}

func (i *InsertBuilder) renderDefaults(b *Builder) {
	switch b.dialect {
	case dialect.MySQL:
		b.WriteString("INSERT INTO ").Ident(i.table).WriteString(" () VALUES ()")
	default:
		b.WriteString("INSERT INTO ").Ident(i.table).WriteString(" DEFAULT VALUES")
	}
}

func (i *InsertBuilder) upsertQuery(d *dialect.Dialect) (string, []any) {
	if len(i.values) != 1 {
		i.AddError(fmt.Errorf("dialect/sql: upsert into %q requires exactly one row, got %d", i.table, len(i.values)))
		return "", nil
	}
	query, args, err := d.Funcs.Upsert(dialect.UpsertParams{
		Table:         i.table,
		Columns:       i.columns,
		Values:        i.values[0],
		Keys:          i.conflict.keys,
		UpdateColumns: i.conflict.update,
		On:            i.conflict.on,
	})
	if err != nil {
		i.AddError(err)
		return "", nil
	}
	return d.Rebind(query), args
}

// UpdateBuilder is a builder for the UPDATE statement. Rendering is
// delegated to the dialect function provider, so vendor-variant shapes
// such as row limits fail loudly on dialects that cannot express them.
type UpdateBuilder struct {
	Builder
	table   string
	columns []string
	values  []any
	where   *Predicate
	limit   int
}

// Update returns a new update builder for the given table with the default
// dialect.
func Update(table string) *UpdateBuilder {
	return Dialect(dialect.Generic).Update(table)
}

// Set sets a column to the given value.
func (u *UpdateBuilder) Set(column string, v any) *UpdateBuilder {
	u.columns = append(u.columns, column)
	u.values = append(u.values, v)
	return u
}

// Where adds the predicate to the WHERE clause, combined with AND when a
// predicate already exists.
func (u *UpdateBuilder) Where(p *Predicate) *UpdateBuilder {
	if u.where != nil {
		u.where = And(u.where, p)
	} else {
		u.where = p
	}
	return u
}

// Limit limits the number of updated rows.
func (u *UpdateBuilder) Limit(n int) *UpdateBuilder {
	u.limit = n
	return u
}

// Query returns the UPDATE statement and its arguments.
func (u *UpdateBuilder) Query() (string, []any) {
	d, ok := u.lookup()
	if !ok {
		return "", nil
	}
	p := dialect.UpdateParams{
		Table:   u.table,
		Columns: u.columns,
		Values:  u.values,
		Limit:   u.limit,
	}
	if u.where != nil {
		p.Where = u.where.compile(u.dialect)
	}
	query, args, err := d.Funcs.Update(p)
	if err != nil {
		u.AddError(err)
		return "", nil
	}
	return d.Rebind(query), args
}

// DeleteBuilder is a builder for the DELETE statement.
type DeleteBuilder struct {
	Builder
	table string
	where *Predicate
	limit int
}

// Delete returns a new delete builder for the given table with the default
// dialect.
func Delete(table string) *DeleteBuilder {
	return Dialect(dialect.Generic).Delete(table)
}

// Where adds the predicate to the WHERE clause, combined with AND when a
// predicate already exists.
func (d *DeleteBuilder) Where(p *Predicate) *DeleteBuilder {
	if d.where != nil {
		d.where = And(d.where, p)
	} else {
		d.where = p
	}
	return d
}

// Limit limits the number of deleted rows.
func (d *DeleteBuilder) Limit(n int) *DeleteBuilder {
	d.limit = n
	return d
}

// Query returns the DELETE statement and its arguments.
func (d *DeleteBuilder) Query() (string, []any) {
	dl, ok := d.lookup()
	if !ok {
		return "", nil
	}
	p := dialect.DeleteParams{
		Table: d.table,
		Limit: d.limit,
	}
	if d.where != nil {
		p.Where = d.where.compile(d.dialect)
	}
	query, args, err := dl.Funcs.Delete(p)
	if err != nil {
		d.AddError(err)
		return "", nil
	}
	return dl.Rebind(query), args
}

// DialectBuilder prefixes all root builders with the dialect name.
type DialectBuilder struct {
	dialect string
}

// Select creates a dialect-aware selector.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	s := &Selector{columns: columns}
	s.SetDialect(d.dialect)
	return s
}

// Table creates a dialect-aware table view.
func (d *DialectBuilder) Table(name string) *SelectTable {
	t := Table(name)
	t.SetDialect(d.dialect)
	return t
}

// Insert creates a dialect-aware insert builder.
func (d *DialectBuilder) Insert(table string) *InsertBuilder {
	i := &InsertBuilder{table: table}
	i.SetDialect(d.dialect)
	return i
}

// Update creates a dialect-aware update builder.
func (d *DialectBuilder) Update(table string) *UpdateBuilder {
	u := &UpdateBuilder{table: table}
	u.SetDialect(d.dialect)
	return u
}

// Delete creates a dialect-aware delete builder.
func (d *DialectBuilder) Delete(table string) *DeleteBuilder {
	b := &DeleteBuilder{table: table}
	b.SetDialect(d.dialect)
	return b
}

// GroupConcat renders the dialect's string-aggregation function.
func (d *DialectBuilder) GroupConcat(expr, separator string, orderBy ...string) (string, error) {
	dl, err := dialect.Lookup(d.dialect)
	if err != nil {
		return "", err
	}
	return dl.Funcs.GroupConcat(expr, separator, orderBy)
}
