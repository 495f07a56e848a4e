package dialect

import "fmt"

// The generic dialect is the SQL-92/2003 baseline every vendor dialect
// diverges from. It quotes with double quotes, supports schemas and indexes,
// and treats unsupported operations (group concat, limits on mutation
// statements, upsert) as capability gaps.
func init() {
	Register(&Dialect{
		Name:                   Generic,
		Types:                  baseTypes{},
		Funcs:                  baseFuncs{name: Generic, quoter: QuoteANSI},
		Quoter:                 QuoteANSI,
		Placeholder:            PlaceholderQuestion,
		SupportsCreateSchema:   true,
		SupportsIndexes:        true,
		DefaultReferenceOption: NoAction,
		setSchema: func(q Quoter, name string) string {
			return fmt.Sprintf("SET SCHEMA %s", q.Ident(name))
		},
	})
}
