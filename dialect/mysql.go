package dialect

import (
	"fmt"
	"strings"
)

func init() {
	Register(&Dialect{
		Name:                   MySQL,
		Types:                  mysqlTypes{},
		Funcs:                  mysqlFuncs{baseFuncs{name: MySQL, quoter: QuoteBacktick}},
		Quoter:                 QuoteBacktick,
		Placeholder:            PlaceholderQuestion,
		SupportsCreateSchema:   true, // Schema and database are synonyms.
		SupportsIndexes:        true,
		DefaultReferenceOption: Restrict,
		setSchema: func(q Quoter, name string) string {
			return fmt.Sprintf("USE %s", q.Ident(name))
		},
		dropIndex: func(q Quoter, table, name string) string {
			return fmt.Sprintf("DROP INDEX %s ON %s", q.Ident(name), q.Ident(table))
		},
	})
}

type mysqlTypes struct{ baseTypes }

func (mysqlTypes) IntegerAutoincType() string { return "INT AUTO_INCREMENT" }
func (mysqlTypes) LongAutoincType() string    { return "BIGINT AUTO_INCREMENT" }
func (mysqlTypes) FloatType() string          { return "FLOAT" }
func (mysqlTypes) DoubleType() string         { return "DOUBLE" }

type mysqlFuncs struct{ baseFuncs }

func (f mysqlFuncs) GroupConcat(expr, separator string, orderBy []string) (string, error) {
	var b strings.Builder
	b.WriteString("GROUP_CONCAT(")
	b.WriteString(expr)
	if len(orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(orderBy, ", "))
	}
	fmt.Fprintf(&b, " SEPARATOR %s)", quoteString(separator))
	return b.String(), nil
}

func (f mysqlFuncs) Update(p UpdateParams) (string, []any, error) {
	query, args, err := f.update(p)
	if err != nil {
		return "", nil, err
	}
	if p.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, p.Limit)
	}
	return query, args, nil
}

func (f mysqlFuncs) Delete(p DeleteParams) (string, []any, error) {
	query, args, err := f.delete(p)
	if err != nil {
		return "", nil, err
	}
	if p.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, p.Limit)
	}
	return query, args, nil
}

// Upsert renders INSERT ... ON DUPLICATE KEY UPDATE. Conflict detection is
// driven by the table's unique keys, so Keys and On are not consulted.
func (f mysqlFuncs) Upsert(p UpsertParams) (string, []any, error) {
	if err := p.validate(); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	b.WriteString(f.insertInto(p.Table, p.Columns))
	b.WriteString(" ON DUPLICATE KEY UPDATE ")
	update := p.nonKey()
	if len(update) == 0 {
		// Every column is part of the key; keep the row as-is.
		update = p.Columns[:1]
	}
	for i, c := range update {
		if i > 0 {
			b.WriteString(", ")
		}
		qc := f.quoter.Ident(c)
		fmt.Fprintf(&b, "%s = VALUES(%s)", qc, qc)
	}
	return b.String(), p.Values, nil
}
