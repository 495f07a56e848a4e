// Package dialect provides the SQL dialect abstraction for Quarry.
//
// A dialect bundles everything vendor-specific about SQL generation: a
// column-type provider mapping logical column types to vendor type tokens, a
// function provider rendering operations whose syntax varies across vendors
// (group-concatenation, UPDATE/DELETE with row limits, upserts), and a set of
// capability flags (schema support, index support, reference-option
// defaults, default-value eligibility).
//
// # Supported Dialects
//
// Each dialect is identified by a constant string:
//
//	dialect.Generic   = "generic"   // SQL-92/2003 baseline
//	dialect.MySQL     = "mysql"
//	dialect.Postgres  = "postgres"
//	dialect.SQLite    = "sqlite"
//	dialect.Oracle    = "oracle"
//	dialect.SQLServer = "sqlserver"
//	dialect.Vertica   = "vertica"   // analytical warehouse
//
// Vendor dialects override only what diverges from the generic baseline;
// everything else is inherited. A vendor that fundamentally cannot express a
// construct fails with an UnsupportedError at generation time instead of
// emitting broken SQL.
//
// # Selection
//
// Dialects are registered by name and resolved explicitly:
//
//	d, err := dialect.Lookup(dialect.Vertica)
//
// The "current" dialect for a unit of work is carried on the context:
//
//	ctx = dialect.NewContext(ctx, d)
//	d, err := dialect.FromContext(ctx)
//
// Dialects and their providers are immutable after construction and safe for
// concurrent use; rendering performs no I/O and no shared mutation.
//
// # Driver Interface
//
// The package also defines the Driver interface the statement-execution
// layer implements:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// See the dialect/sql sub-package for the database/sql implementation and
// the statement builders, and dialect/sql/schema for DDL generation.
package dialect
