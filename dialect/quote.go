package dialect

import (
	"strconv"
	"strings"
)

// Quoter quotes SQL identifiers for a vendor.
type Quoter struct {
	open  string
	close string
}

// Quoting styles used by the built-in dialects.
var (
	// QuoteANSI is double-quote quoting (standard SQL).
	QuoteANSI = Quoter{open: `"`, close: `"`}
	// QuoteBacktick is backtick quoting (MySQL).
	QuoteBacktick = Quoter{open: "`", close: "`"}
	// QuoteBracket is square-bracket quoting (SQL Server).
	QuoteBracket = Quoter{open: "[", close: "]"}
)

// Ident quotes a single identifier, escaping embedded closing quotes by
// doubling. Qualified names (schema.table) are quoted per segment.
func (q Quoter) Ident(name string) string {
	if name == "" || name == "*" {
		return name
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return q.Ident(name[:i]) + "." + q.Ident(name[i+1:])
	}
	escaped := strings.ReplaceAll(name, q.close, q.close+q.close)
	return q.open + escaped + q.close
}

// Idents quotes each identifier and joins them with ", ".
func (q Quoter) Idents(names ...string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = q.Ident(n)
	}
	return strings.Join(quoted, ", ")
}

// PlaceholderStyle is the bind-parameter syntax of a vendor's driver.
type PlaceholderStyle int

// Placeholder styles.
const (
	// PlaceholderQuestion is ?-style binding (MySQL, SQLite, Oracle via
	// godror positional, Vertica).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar is $1-style binding (Postgres).
	PlaceholderDollar
)

// RebindPlaceholders rewrites ?-style placeholders into the given style.
// Question marks inside single-quoted strings are left untouched.
func RebindPlaceholders(style PlaceholderStyle, query string) string {
	if style == PlaceholderQuestion {
		return query
	}
	var (
		b        strings.Builder
		n        int
		inString bool
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inString = !inString
			b.WriteByte(c)
		case c == '?' && !inString:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
