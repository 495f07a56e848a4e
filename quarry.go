// Package quarry provides the shared contracts of the SQL toolkit: field
// definitions, common error types and their matchers. Statement building
// lives in dialect/sql, vendor-specific rendering in dialect, and DDL
// generation in dialect/sql/schema.
package quarry

import "github.com/quarrydb/quarry/schema/field"

// Field is a table field definition. All builders in schema/field implement
// it; mixins and DDL lowering consume it.
type Field interface {
	// Descriptor returns the raw definition of the field.
	Descriptor() *field.Descriptor
}

// Mixin is a reusable set of field definitions shared across tables.
type Mixin interface {
	// Fields returns the fields the mixin contributes.
	Fields() []Field
}
