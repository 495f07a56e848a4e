// Package mixin provides reusable sets of field definitions that can be
// shared across table schemas.
//
// A mixin contributes fields; creating a custom one is a matter of
// implementing Fields:
//
//	type AuditMixin struct {
//	    mixin.Schema
//	}
//
//	func (AuditMixin) Fields() []quarry.Field {
//	    return []quarry.Field{
//	        field.Time("created_at").Default(time.Now).Immutable(),
//	        field.String("created_by").Optional(),
//	    }
//	}
//
// The built-in mixins cover the common timestamp patterns:
//
//	mixin.Time{}       // created_at, updated_at
//	mixin.SoftDelete{} // deleted_at
package mixin

import (
	"time"

	"github.com/quarrydb/quarry"
	"github.com/quarrydb/quarry/schema"
	"github.com/quarrydb/quarry/schema/field"
)

// Schema is the default implementation of the quarry.Mixin interface.
// Embed it in custom mixin definitions.
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []quarry.Field { return nil }

var _ quarry.Mixin = (*Schema)(nil)

// Time adds created_at and updated_at timestamp fields. created_at is set
// on creation and immutable; updated_at is refreshed on every update.
type Time struct {
	Schema
}

// Fields returns the time tracking fields.
func (Time) Fields() []quarry.Field {
	return []quarry.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// CreateTime adds only the created_at field.
type CreateTime struct {
	Schema
}

// Fields returns the created_at field.
func (CreateTime) Fields() []quarry.Field {
	return []quarry.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// UpdateTime adds only the updated_at field.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at field.
func (UpdateTime) Fields() []quarry.Field {
	return []quarry.Field{
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// SoftDelete adds a nullable deleted_at field. A set value marks the row
// as deleted while keeping it in the database.
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete field.
func (SoftDelete) Fields() []quarry.Field {
	return []quarry.Field{
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// TimeSoftDelete combines Time and SoftDelete.
type TimeSoftDelete struct {
	Schema
}

// Fields returns the timestamp and soft delete fields.
func (TimeSoftDelete) Fields() []quarry.Field {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// AnnotateFields wraps a mixin and adds the annotations to every field it
// contributes.
func AnnotateFields(m quarry.Mixin, annotations ...schema.Annotation) quarry.Mixin {
	return fieldAnnotator{Mixin: m, annotations: annotations}
}

type fieldAnnotator struct {
	quarry.Mixin
	annotations []schema.Annotation
}

func (a fieldAnnotator) Fields() []quarry.Field {
	fields := a.Mixin.Fields()
	for i := range fields {
		desc := fields[i].Descriptor()
		desc.Annotations = append(desc.Annotations, a.annotations...)
	}
	return fields
}
