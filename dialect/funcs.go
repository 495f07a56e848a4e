package dialect

import (
	"fmt"
	"strings"
)

// Predicate is a rendered WHERE fragment with ?-style bound parameters.
type Predicate struct {
	SQL  string
	Args []any
}

// UpdateParams describes an abstract UPDATE statement. Columns and Values
// are parallel; Limit of zero means no row limit.
type UpdateParams struct {
	Table   string
	Columns []string
	Values  []any
	Where   *Predicate
	Limit   int
}

// DeleteParams describes an abstract DELETE statement.
type DeleteParams struct {
	Table string
	Where *Predicate
	Limit int
}

// UpsertParams describes an abstract insert-or-update. Keys are the unique
// key columns driving conflict detection; UpdateColumns are the columns
// rewritten on conflict (all non-key columns when empty). On carries an
// explicit match condition for vendors whose MERGE cannot derive one from a
// unique key.
type UpsertParams struct {
	Table         string
	Columns       []string
	Values        []any
	Keys          []string
	UpdateColumns []string
	On            string
}

// FunctionProvider renders SQL operations whose syntax varies across
// vendors. Statements use ?-style placeholders; callers rebind through
// Dialect.Rebind when the driver needs another style. A vendor that cannot
// express the requested shape returns an UnsupportedError rather than
// generating silently-wrong SQL.
type FunctionProvider interface {
	// GroupConcat renders string aggregation of expr with the given
	// separator and optional ordering.
	GroupConcat(expr, separator string, orderBy []string) (string, error)
	// Update renders an UPDATE statement.
	Update(p UpdateParams) (string, []any, error)
	// Delete renders a DELETE statement.
	Delete(p DeleteParams) (string, []any, error)
	// Upsert renders an insert-or-update statement.
	Upsert(p UpsertParams) (string, []any, error)
}

// baseFuncs is the generic function provider. Standard SQL has no group
// concatenation, no row limits on UPDATE/DELETE and no upsert, so those are
// capability gaps here; vendors override what they support.
type baseFuncs struct {
	name   string
	quoter Quoter
}

func (f baseFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	return "", &UnsupportedError{Dialect: f.name, Feature: "GROUP_CONCAT"}
}

func (f baseFuncs) Update(p UpdateParams) (string, []any, error) {
	if p.Limit > 0 {
		return "", nil, &UnsupportedError{Dialect: f.name, Feature: "LIMIT in UPDATE"}
	}
	return f.update(p)
}

// update renders the standard UPDATE shape shared by every vendor.
func (f baseFuncs) update(p UpdateParams) (string, []any, error) {
	if len(p.Columns) == 0 || len(p.Columns) != len(p.Values) {
		return "", nil, fmt.Errorf("dialect: update of %q: %d columns, %d values", p.Table, len(p.Columns), len(p.Values))
	}
	var b strings.Builder
	args := make([]any, 0, len(p.Values)+4)
	fmt.Fprintf(&b, "UPDATE %s SET ", f.quoter.Ident(p.Table))
	for i, c := range p.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = ?", f.quoter.Ident(c))
		args = append(args, p.Values[i])
	}
	if p.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(p.Where.SQL)
		args = append(args, p.Where.Args...)
	}
	return b.String(), args, nil
}

func (f baseFuncs) Delete(p DeleteParams) (string, []any, error) {
	if p.Limit > 0 {
		return "", nil, &UnsupportedError{Dialect: f.name, Feature: "LIMIT in DELETE"}
	}
	return f.delete(p)
}

func (f baseFuncs) delete(p DeleteParams) (string, []any, error) {
	var b strings.Builder
	var args []any
	fmt.Fprintf(&b, "DELETE FROM %s", f.quoter.Ident(p.Table))
	if p.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(p.Where.SQL)
		args = append(args, p.Where.Args...)
	}
	return b.String(), args, nil
}

func (f baseFuncs) Upsert(p UpsertParams) (string, []any, error) {
	return "", nil, &UnsupportedError{Dialect: f.name, Feature: "UPSERT"}
}

// insertInto renders the shared "INSERT INTO t (cols) VALUES (?, ...)" head.
func (f baseFuncs) insertInto(table string, columns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (", f.quoter.Ident(table), f.quoter.Idents(columns...))
	for i := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?")
	}
	b.WriteString(")")
	return b.String()
}

// nonKey returns the update column set for an upsert: UpdateColumns when
// given, otherwise all insert columns that are not key columns.
func (p UpsertParams) nonKey() []string {
	if len(p.UpdateColumns) > 0 {
		return p.UpdateColumns
	}
	keys := make(map[string]bool, len(p.Keys))
	for _, k := range p.Keys {
		keys[k] = true
	}
	var cols []string
	for _, c := range p.Columns {
		if !keys[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

func (p UpsertParams) validate() error {
	if len(p.Columns) == 0 || len(p.Columns) != len(p.Values) {
		return fmt.Errorf("dialect: upsert into %q: %d columns, %d values", p.Table, len(p.Columns), len(p.Values))
	}
	return nil
}
