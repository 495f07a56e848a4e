package dialect

import (
	"context"
	"fmt"
	"strings"
)

// Dialect names.
const (
	Generic   = "generic"
	MySQL     = "mysql"
	Postgres  = "postgres"
	SQLite    = "sqlite"
	Oracle    = "oracle"
	SQLServer = "sqlserver"
	Vertica   = "vertica"
)

// ExecQuerier wraps the Exec and Query operations.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. The v argument,
	// when non-nil, receives the *sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows. The v argument receives
	// the *sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface the statement-execution layer implements.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transaction commit and rollback around an ExecQuerier.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// ReferenceOption is the action taken on a foreign key when the referenced
// row is updated or deleted.
type ReferenceOption string

// Reference options.
const (
	NoAction   ReferenceOption = "NO ACTION"
	Restrict   ReferenceOption = "RESTRICT"
	Cascade    ReferenceOption = "CASCADE"
	SetNull    ReferenceOption = "SET NULL"
	SetDefault ReferenceOption = "SET DEFAULT"
)

// Dialect is a named, immutable bundle of vendor-specific rendering rules
// and capability flags. Exactly one Dialect is current per unit of work;
// it is selected at session-configuration time and only read afterwards.
type Dialect struct {
	// Name identifies the dialect in the registry.
	Name string

	// Types maps logical column types to vendor type tokens.
	Types TypeProvider

	// Funcs renders vendor-variant SQL operations.
	Funcs FunctionProvider

	// Quoter quotes identifiers for this vendor.
	Quoter Quoter

	// Placeholder is the bind-parameter style used by the vendor's driver.
	Placeholder PlaceholderStyle

	// SupportsCreateSchema reports whether CREATE SCHEMA is available.
	SupportsCreateSchema bool

	// SupportsIndexes reports whether secondary indexes exist at all.
	// Analytical warehouses that organize storage by projections do not
	// have them.
	SupportsIndexes bool

	// SupportsReturning reports whether INSERT can return generated
	// columns through a RETURNING clause.
	SupportsReturning bool

	// DefaultReferenceOption is used for foreign keys that do not state an
	// ON DELETE action explicitly.
	DefaultReferenceOption ReferenceOption

	// allowDefault optionally broadens the base default-eligibility rule.
	// It is consulted only for expressions the base rule rejects, so a
	// vendor can add permissions but never remove base allowances.
	allowDefault func(Expression) bool

	// setSchema renders the vendor's schema-switch statement, or nil when
	// the vendor has no per-session schema concept.
	setSchema func(q Quoter, name string) string

	// dropIndex renders DROP INDEX; nil means the ANSI form.
	dropIndex func(q Quoter, table, name string) string
}

// AllowedAsColumnDefault reports whether the expression may be emitted as a
// DEFAULT clause on this dialect. The base rule accepts a conservative
// allow-list: literals and known-safe niladic functions. Vendors may accept
// more through their own hook; when neither accepts, the DDL generator must
// degrade to not rendering a default clause rather than emitting SQL the
// vendor will reject.
func (d *Dialect) AllowedAsColumnDefault(x Expression) bool {
	if x == nil {
		return false
	}
	if baseAllowedDefault(x) {
		return true
	}
	if d.allowDefault != nil {
		return d.allowDefault(x)
	}
	return false
}

// CreateIndex renders the CREATE INDEX statement for the given columns, or
// returns an UnsupportedError when the vendor has no index concept.
func (d *Dialect) CreateIndex(table, name string, unique bool, columns []string) (string, error) {
	if !d.SupportsIndexes {
		return "", &UnsupportedError{Dialect: d.Name, Feature: "CREATE INDEX"}
	}
	var b strings.Builder
	b.WriteString("CREATE ")
	if unique {
		b.WriteString("UNIQUE ")
	}
	fmt.Fprintf(&b, "INDEX %s ON %s (", d.Quoter.Ident(name), d.Quoter.Ident(table))
	for i, c := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.Quoter.Ident(c))
	}
	b.WriteString(")")
	return b.String(), nil
}

// DropIndex renders the DROP INDEX statement, or returns an
// UnsupportedError when the vendor has no index concept.
func (d *Dialect) DropIndex(table, name string) (string, error) {
	if !d.SupportsIndexes {
		return "", &UnsupportedError{Dialect: d.Name, Feature: "DROP INDEX"}
	}
	if d.dropIndex != nil {
		return d.dropIndex(d.Quoter, table, name), nil
	}
	return fmt.Sprintf("DROP INDEX %s", d.Quoter.Ident(name)), nil
}

// CreateSchema renders CREATE SCHEMA, or returns an UnsupportedError when
// the vendor has no schema concept.
func (d *Dialect) CreateSchema(name string) (string, error) {
	if !d.SupportsCreateSchema {
		return "", &UnsupportedError{Dialect: d.Name, Feature: "CREATE SCHEMA"}
	}
	return fmt.Sprintf("CREATE SCHEMA %s", d.Quoter.Ident(name)), nil
}

// SetSchema renders the vendor's schema-switch statement for the session.
func (d *Dialect) SetSchema(name string) (string, error) {
	if d.setSchema == nil {
		return "", &UnsupportedError{Dialect: d.Name, Feature: "SET SCHEMA"}
	}
	return d.setSchema(d.Quoter, name), nil
}

// Rebind rewrites ?-style placeholders into the dialect's bind style.
func (d *Dialect) Rebind(query string) string {
	return RebindPlaceholders(d.Placeholder, query)
}
