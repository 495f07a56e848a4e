// Package sql provides SQL statement building primitives on top of the
// dialect registry, and a dialect.Driver implementation for database/sql.
//
// # Builder Types
//
// The package provides specialized builders for different SQL operations:
//
//   - Builder: low-level SQL string builder with identifier quoting
//   - Selector: SELECT query builder with joins, predicates, and pagination
//   - InsertBuilder: INSERT statement builder with RETURNING and upsert support
//   - UpdateBuilder: UPDATE statement builder with SET and WHERE clauses
//   - DeleteBuilder: DELETE statement builder with WHERE predicates
//
// # Dialect Support
//
// Builders are bound to a registered dialect, which supplies identifier
// quoting, the placeholder style, and the rendering of vendor-variant
// operations:
//
//	import "github.com/quarrydb/quarry/dialect"
//
//	b := sql.Dialect(dialect.Postgres)
//	b.Select("id", "name").From(sql.Table("users")).Where(sql.EQ("status", "active"))
//
// Vendor-variant statement shapes (upserts, row limits on UPDATE and
// DELETE, string aggregation) are delegated to the dialect's function
// provider. A dialect that cannot express the requested shape reports an
// error through the builder's Err method instead of generating
// silently-wrong SQL.
//
// # Predicates
//
// The package provides predicate constructors:
//
//	sql.EQ("name", "john")           // name = 'john'
//	sql.NEQ("status", "deleted")     // status <> 'deleted'
//	sql.GT("age", 18)                // age > 18
//	sql.Contains("name", "john")     // name LIKE '%john%'
//	sql.IsNull("deleted_at")         // deleted_at IS NULL
//	sql.In("status", "active", "pending")
//
// # Joins
//
//	users := sql.Table("users").As("u")
//	posts := sql.Table("posts").As("p")
//	sql.Dialect(dialect.MySQL).
//	    Select("u.id", "u.name", "p.title").
//	    From(users).
//	    Join(posts).On(users.C("id"), posts.C("user_id")).
//	    Where(sql.EQ("u.status", "active"))
//
// # Row-Level Locking
//
//	sql.Select("*").From(sql.Table("users")).
//	    Where(sql.EQ("id", 1)).
//	    ForUpdate()  // SELECT ... FOR UPDATE
package sql
