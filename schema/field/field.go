package field

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-openapi/inflect"
	"github.com/google/uuid"
	"github.com/quarrydb/quarry/schema"
)

// A Type represents a logical column type. It is mapped to a vendor type
// token by the selected dialect's type provider.
type Type uint8

// Logical column types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeChar
	TypeText
	TypeDate
	TypeTime
	TypeTimestamp
	TypeUUID
	TypeBytes
	TypeBlob
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:   "invalid",
	TypeBool:      "bool",
	TypeInt:       "int",
	TypeInt64:     "int64",
	TypeFloat32:   "float32",
	TypeFloat64:   "float64",
	TypeString:    "string",
	TypeChar:      "char",
	TypeText:      "text",
	TypeDate:      "date",
	TypeTime:      "time",
	TypeTimestamp: "timestamp",
	TypeUUID:      "uuid",
	TypeBytes:     "bytes",
	TypeBlob:      "blob",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", t)
}

// Valid reports if the given type is a valid field type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt && t <= TypeFloat64
}

// Temporal reports if the given type is a date or time type.
func (t Type) Temporal() bool {
	return t >= TypeDate && t <= TypeTimestamp
}

// A Descriptor for field configuration. It is the product of a fluent
// builder and the input of the DDL lowering in dialect/sql/schema.
type Descriptor struct {
	Name          string              // column name (snake_case).
	Type          Type                // logical column type.
	Size          int                 // varchar, char or binary size.
	Unique        bool                // unique constraint.
	Nillable      bool                // nillable struct field.
	Optional      bool                // not required in the creation flow.
	Immutable     bool                // create-only field.
	Comment       string              // field comment.
	Default       any                 // database default value.
	DefaultFunc   any                 // client-computed default function.
	UpdateDefault any                 // client-computed default on update.
	SchemaType    map[string]string   // per-dialect type override.
	Validators    []any               // validator functions.
	Annotations   []schema.Annotation // schema annotations.
	Err           error               // builder error, surfaced at generation time.
}

// GoName returns the exported Go name derived from the column name.
func (d *Descriptor) GoName() string {
	return inflect.Camelize(d.Name)
}

// Descriptor returns the descriptor itself, letting a raw descriptor be
// used wherever a field definition is expected.
func (d *Descriptor) Descriptor() *Descriptor { return d }

// HasDefault reports whether the field carries a database default.
func (d *Descriptor) HasDefault() bool {
	return d.Default != nil
}

// NewDefault invokes the client-computed default function, or returns
// (nil, false) when none is configured. The function is invoked on every
// call; callers must not cache the result across rows.
func (d *Descriptor) NewDefault() (any, bool) {
	switch fn := d.DefaultFunc.(type) {
	case nil:
		return nil, false
	case func() int:
		return fn(), true
	case func() int64:
		return fn(), true
	case func() float64:
		return fn(), true
	case func() string:
		return fn(), true
	case func() bool:
		return fn(), true
	case func() time.Time:
		return fn(), true
	case func() uuid.UUID:
		return fn(), true
	case func() []byte:
		return fn(), true
	case func() any:
		return fn(), true
	default:
		return nil, false
	}
}

// intBuilder is the builder for int fields.
type intBuilder struct {
	desc *Descriptor
}

// Int returns a new Field with type int.
func Int(name string) *intBuilder {
	return &intBuilder{&Descriptor{Name: name, Type: TypeInt}}
}

// Default sets the database default value of the field.
func (b *intBuilder) Default(i int) *intBuilder {
	b.desc.Default = i
	return b
}

// DefaultFunc sets a function to compute the field value on creation.
// The function is invoked once per new row and its result is never reused.
func (b *intBuilder) DefaultFunc(fn func() int) *intBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// UpdateDefault sets a function to compute the field value on update.
func (b *intBuilder) UpdateDefault(fn func() int) *intBuilder {
	b.desc.UpdateDefault = fn
	return b
}

// Min adds a minimum-value validator.
func (b *intBuilder) Min(i int) *intBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v < i {
			return fmt.Errorf("value out of range: %d < %d", v, i)
		}
		return nil
	})
	return b
}

// Max adds a maximum-value validator.
func (b *intBuilder) Max(i int) *intBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v > i {
			return fmt.Errorf("value out of range: %d > %d", v, i)
		}
		return nil
	})
	return b
}

// Range adds a range validator.
func (b *intBuilder) Range(i, j int) *intBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v int) error {
		if v < i || v > j {
			return fmt.Errorf("value out of range: %d not in [%d, %d]", v, i, j)
		}
		return nil
	})
	return b
}

// Positive adds a positive-value validator.
func (b *intBuilder) Positive() *intBuilder {
	return b.Min(1)
}

// Negative adds a negative-value validator.
func (b *intBuilder) Negative() *intBuilder {
	return b.Max(-1)
}

// Unique makes the field unique in its table.
func (b *intBuilder) Unique() *intBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *intBuilder) Nillable() *intBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow. Optional fields
// are nullable columns unless a default is set.
func (b *intBuilder) Optional() *intBuilder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *intBuilder) Immutable() *intBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *intBuilder) Comment(c string) *intBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *intBuilder) SchemaType(types map[string]string) *intBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *intBuilder) Annotations(annotations ...schema.Annotation) *intBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *intBuilder) Descriptor() *Descriptor {
	return b.desc
}

// int64Builder is the builder for int64 fields.
type int64Builder struct {
	desc *Descriptor
}

// Int64 returns a new Field with type int64.
func Int64(name string) *int64Builder {
	return &int64Builder{&Descriptor{Name: name, Type: TypeInt64}}
}

// Default sets the database default value of the field.
func (b *int64Builder) Default(i int64) *int64Builder {
	b.desc.Default = i
	return b
}

// DefaultFunc sets a function to compute the field value on creation.
// The function is invoked once per new row and its result is never reused.
func (b *int64Builder) DefaultFunc(fn func() int64) *int64Builder {
	b.desc.DefaultFunc = fn
	return b
}

// UpdateDefault sets a function to compute the field value on update.
func (b *int64Builder) UpdateDefault(fn func() int64) *int64Builder {
	b.desc.UpdateDefault = fn
	return b
}

// Min adds a minimum-value validator.
func (b *int64Builder) Min(i int64) *int64Builder {
	b.desc.Validators = append(b.desc.Validators, func(v int64) error {
		if v < i {
			return fmt.Errorf("value out of range: %d < %d", v, i)
		}
		return nil
	})
	return b
}

// Max adds a maximum-value validator.
func (b *int64Builder) Max(i int64) *int64Builder {
	b.desc.Validators = append(b.desc.Validators, func(v int64) error {
		if v > i {
			return fmt.Errorf("value out of range: %d > %d", v, i)
		}
		return nil
	})
	return b
}

// Positive adds a positive-value validator.
func (b *int64Builder) Positive() *int64Builder {
	return b.Min(1)
}

// Unique makes the field unique in its table.
func (b *int64Builder) Unique() *int64Builder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *int64Builder) Nillable() *int64Builder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *int64Builder) Optional() *int64Builder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *int64Builder) Immutable() *int64Builder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *int64Builder) Comment(c string) *int64Builder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *int64Builder) SchemaType(types map[string]string) *int64Builder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *int64Builder) Annotations(annotations ...schema.Annotation) *int64Builder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *int64Builder) Descriptor() *Descriptor {
	return b.desc
}

// floatBuilder is the builder for float fields.
type floatBuilder struct {
	desc *Descriptor
}

// Float returns a new Field with type float64.
func Float(name string) *floatBuilder {
	return &floatBuilder{&Descriptor{Name: name, Type: TypeFloat64}}
}

// Float32 returns a new Field with type float32.
func Float32(name string) *floatBuilder {
	return &floatBuilder{&Descriptor{Name: name, Type: TypeFloat32}}
}

// Default sets the database default value of the field.
func (b *floatBuilder) Default(f float64) *floatBuilder {
	b.desc.Default = f
	return b
}

// DefaultFunc sets a function to compute the field value on creation.
func (b *floatBuilder) DefaultFunc(fn func() float64) *floatBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// Min adds a minimum-value validator.
func (b *floatBuilder) Min(f float64) *floatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v < f {
			return fmt.Errorf("value out of range: %v < %v", v, f)
		}
		return nil
	})
	return b
}

// Max adds a maximum-value validator.
func (b *floatBuilder) Max(f float64) *floatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v > f {
			return fmt.Errorf("value out of range: %v > %v", v, f)
		}
		return nil
	})
	return b
}

// Positive adds a positive-value validator.
func (b *floatBuilder) Positive() *floatBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("value out of range: %v <= 0", v)
		}
		return nil
	})
	return b
}

// Unique makes the field unique in its table.
func (b *floatBuilder) Unique() *floatBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *floatBuilder) Nillable() *floatBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *floatBuilder) Optional() *floatBuilder {
	b.desc.Optional = true
	return b
}

// Comment sets the field comment.
func (b *floatBuilder) Comment(c string) *floatBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *floatBuilder) SchemaType(types map[string]string) *floatBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *floatBuilder) Annotations(annotations ...schema.Annotation) *floatBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *floatBuilder) Descriptor() *Descriptor {
	return b.desc
}

// stringBuilder is the builder for string fields.
type stringBuilder struct {
	desc *Descriptor
}

// String returns a new Field with type string. String fields are rendered
// as a bounded varchar (the dialect's default width unless MaxLen is set).
func String(name string) *stringBuilder {
	return &stringBuilder{&Descriptor{Name: name, Type: TypeString}}
}

// Text returns a new string field without a size limit, rendered with the
// dialect's unbounded text type.
func Text(name string) *stringBuilder {
	return &stringBuilder{&Descriptor{Name: name, Type: TypeText}}
}

// Char returns a new fixed-width string field. The width defaults to one
// character unless Size is called.
func Char(name string) *stringBuilder {
	return &stringBuilder{&Descriptor{Name: name, Type: TypeChar}}
}

// Default sets the database default value of the field.
func (b *stringBuilder) Default(s string) *stringBuilder {
	b.desc.Default = s
	return b
}

// DefaultFunc sets a function to compute the field value on creation.
// The function is invoked once per new row and its result is never reused.
func (b *stringBuilder) DefaultFunc(fn func() string) *stringBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// MaxLen adds a length validator and sets the column size.
func (b *stringBuilder) MaxLen(i int) *stringBuilder {
	b.desc.Size = i
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) > i {
			return errors.New("value is greater than the required length")
		}
		return nil
	})
	return b
}

// Size is an alias for MaxLen.
func (b *stringBuilder) Size(i int) *stringBuilder {
	return b.MaxLen(i)
}

// MinLen adds a minimum-length validator.
func (b *stringBuilder) MinLen(i int) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) < i {
			return errors.New("value is less than the required length")
		}
		return nil
	})
	return b
}

// NotEmpty adds a non-empty validator.
func (b *stringBuilder) NotEmpty() *stringBuilder {
	return b.MinLen(1)
}

// Match adds a regexp validator.
func (b *stringBuilder) Match(re *regexp.Regexp) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if !re.MatchString(v) {
			return fmt.Errorf("value does not match validation %q", re)
		}
		return nil
	})
	return b
}

// Validate adds a custom validator.
func (b *stringBuilder) Validate(fn func(string) error) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Unique makes the field unique in its table.
func (b *stringBuilder) Unique() *stringBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *stringBuilder) Nillable() *stringBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *stringBuilder) Optional() *stringBuilder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *stringBuilder) Immutable() *stringBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *stringBuilder) Comment(c string) *stringBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *stringBuilder) SchemaType(types map[string]string) *stringBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *stringBuilder) Annotations(annotations ...schema.Annotation) *stringBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *stringBuilder) Descriptor() *Descriptor {
	return b.desc
}

// boolBuilder is the builder for bool fields.
type boolBuilder struct {
	desc *Descriptor
}

// Bool returns a new Field with type bool.
func Bool(name string) *boolBuilder {
	return &boolBuilder{&Descriptor{Name: name, Type: TypeBool}}
}

// Default sets the database default value of the field.
func (b *boolBuilder) Default(v bool) *boolBuilder {
	b.desc.Default = v
	return b
}

// Unique makes the field unique in its table.
func (b *boolBuilder) Unique() *boolBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *boolBuilder) Nillable() *boolBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *boolBuilder) Optional() *boolBuilder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *boolBuilder) Immutable() *boolBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *boolBuilder) Comment(c string) *boolBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *boolBuilder) SchemaType(types map[string]string) *boolBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *boolBuilder) Annotations(annotations ...schema.Annotation) *boolBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *boolBuilder) Descriptor() *Descriptor {
	return b.desc
}

// timeBuilder is the builder for time fields.
type timeBuilder struct {
	desc *Descriptor
}

// Time returns a new Field with a date-and-time type.
func Time(name string) *timeBuilder {
	return &timeBuilder{&Descriptor{Name: name, Type: TypeTime}}
}

// Date returns a new Field with a date-only type.
func Date(name string) *timeBuilder {
	return &timeBuilder{&Descriptor{Name: name, Type: TypeDate}}
}

// Timestamp marks the field as a timestamp rather than a plain datetime.
// Some vendors attach timezone or versioning semantics to the distinction.
func (b *timeBuilder) Timestamp() *timeBuilder {
	b.desc.Type = TypeTimestamp
	return b
}

// Default sets a function to compute the field value on creation, e.g.
// time.Now. The function is invoked once per new row and its result is
// never reused.
func (b *timeBuilder) Default(fn func() time.Time) *timeBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// ServerDefault sets a database-side default expression, e.g.
// dialect.CurrentTimestamp(). Eligibility is dialect-dependent; the DDL
// generator consults the dialect before rendering a DEFAULT clause.
func (b *timeBuilder) ServerDefault(x any) *timeBuilder {
	b.desc.Default = x
	return b
}

// UpdateDefault sets a function to compute the field value on update.
func (b *timeBuilder) UpdateDefault(fn func() time.Time) *timeBuilder {
	b.desc.UpdateDefault = fn
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *timeBuilder) Nillable() *timeBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *timeBuilder) Optional() *timeBuilder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *timeBuilder) Immutable() *timeBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *timeBuilder) Comment(c string) *timeBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *timeBuilder) SchemaType(types map[string]string) *timeBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *timeBuilder) Annotations(annotations ...schema.Annotation) *timeBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *timeBuilder) Descriptor() *Descriptor {
	return b.desc
}

// uuidBuilder is the builder for uuid fields.
type uuidBuilder struct {
	desc *Descriptor
}

// UUID returns a new Field with type UUID.
func UUID(name string) *uuidBuilder {
	return &uuidBuilder{&Descriptor{Name: name, Type: TypeUUID}}
}

// Default sets a function to compute the field value on creation, e.g.
// uuid.New. The function is invoked once per new row and its result is
// never reused.
func (b *uuidBuilder) Default(fn func() uuid.UUID) *uuidBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// Unique makes the field unique in its table.
func (b *uuidBuilder) Unique() *uuidBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *uuidBuilder) Nillable() *uuidBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *uuidBuilder) Optional() *uuidBuilder {
	b.desc.Optional = true
	return b
}

// Immutable makes the field immutable after creation.
func (b *uuidBuilder) Immutable() *uuidBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the field comment.
func (b *uuidBuilder) Comment(c string) *uuidBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *uuidBuilder) SchemaType(types map[string]string) *uuidBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *uuidBuilder) Annotations(annotations ...schema.Annotation) *uuidBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *uuidBuilder) Descriptor() *Descriptor {
	return b.desc
}

// bytesBuilder is the builder for bytes fields.
type bytesBuilder struct {
	desc *Descriptor
}

// Bytes returns a new Field with a bounded binary type. The column size
// must be set with MaxLen; unbounded binary data uses Blob.
func Bytes(name string) *bytesBuilder {
	return &bytesBuilder{&Descriptor{Name: name, Type: TypeBytes}}
}

// Blob returns a new Field with the vendor's unbounded binary type.
// Vendors without one (e.g. analytical warehouses) reject it at DDL
// generation time.
func Blob(name string) *bytesBuilder {
	return &bytesBuilder{&Descriptor{Name: name, Type: TypeBlob}}
}

// MaxLen adds a length validator and sets the column size.
func (b *bytesBuilder) MaxLen(i int) *bytesBuilder {
	b.desc.Size = i
	b.desc.Validators = append(b.desc.Validators, func(v []byte) error {
		if len(v) > i {
			return errors.New("value is greater than the required length")
		}
		return nil
	})
	return b
}

// DefaultFunc sets a function to compute the field value on creation.
func (b *bytesBuilder) DefaultFunc(fn func() []byte) *bytesBuilder {
	b.desc.DefaultFunc = fn
	return b
}

// Unique makes the field unique in its table.
func (b *bytesBuilder) Unique() *bytesBuilder {
	b.desc.Unique = true
	return b
}

// Nillable makes the field nillable in the generated struct.
func (b *bytesBuilder) Nillable() *bytesBuilder {
	b.desc.Nillable = true
	return b
}

// Optional makes the field optional in the creation flow.
func (b *bytesBuilder) Optional() *bytesBuilder {
	b.desc.Optional = true
	return b
}

// Comment sets the field comment.
func (b *bytesBuilder) Comment(c string) *bytesBuilder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the column type per dialect.
func (b *bytesBuilder) SchemaType(types map[string]string) *bytesBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds annotations to the field.
func (b *bytesBuilder) Annotations(annotations ...schema.Annotation) *bytesBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the quarry.Field interface by returning its descriptor.
func (b *bytesBuilder) Descriptor() *Descriptor {
	return b.desc
}
