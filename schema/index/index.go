// Package index provides the builder for table index definitions.
//
// Indexes are declared over field names and lowered to DDL by
// dialect/sql/schema. Dialects without secondary indexes reject them at
// generation time.
//
//	index.Fields("first", "last").Unique()
//	index.Fields("created_at").StorageKey("idx_events_created")
package index

import "github.com/quarrydb/quarry/schema"

// Descriptor is the raw definition of an index.
type Descriptor struct {
	Unique      bool                // whether the index is unique.
	Fields      []string            // the column names the index spans.
	StorageKey  string              // the index name in the database.
	Annotations []schema.Annotation // index annotations.
}

// Builder for the index descriptor.
type Builder struct {
	desc *Descriptor
}

// Fields creates an index over the given columns, in order.
func Fields(fields ...string) *Builder {
	return &Builder{desc: &Descriptor{Fields: fields}}
}

// Unique makes the index unique.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// StorageKey sets the index name in the database. When unset, the name is
// derived from the table and column names.
func (b *Builder) StorageKey(key string) *Builder {
	b.desc.StorageKey = key
	return b
}

// Annotations adds annotations to the index.
func (b *Builder) Annotations(annotations ...schema.Annotation) *Builder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor returns the index descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
