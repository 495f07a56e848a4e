// Package schema provides the building blocks for defining table schemas.
//
// The package holds the Annotation and Merger interfaces shared by the
// schema subpackages. Field definitions live in [field]:
//
//	field.String("name")           // VARCHAR
//	field.Text("bio")              // TEXT (unlimited)
//	field.Int64("count")           // BIGINT
//	field.Float("price")           // DOUBLE PRECISION
//	field.Bool("active")           // BOOLEAN
//	field.Time("created_at")       // DATETIME
//	field.UUID("id")               // UUID
//
// Field descriptors are lowered to DDL columns by the dialect/sql/schema
// package, which maps each logical type through the selected dialect's
// type provider.
package schema
