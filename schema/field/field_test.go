package field_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/quarrydb/quarry/dialect"
	"github.com/quarrydb/quarry/schema"
	"github.com/quarrydb/quarry/schema/field"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	fd := field.Int("age").
		Positive().
		Comment("comment").
		Descriptor()
	assert.Equal(t, "age", fd.Name)
	assert.Equal(t, field.TypeInt, fd.Type)
	assert.Len(t, fd.Validators, 1)
	assert.Equal(t, "comment", fd.Comment)

	fd = field.Int("age").
		Default(10).
		Min(10).
		Max(20).
		Descriptor()
	require.NotNil(t, fd.Default)
	assert.Equal(t, 10, fd.Default)
	assert.Len(t, fd.Validators, 2)

	fd = field.Int("age").
		Range(20, 40).
		Nillable().
		SchemaType(map[string]string{
			dialect.SQLite:   "numeric",
			dialect.Postgres: "int_type",
		}).
		Descriptor()
	assert.Nil(t, fd.Default)
	assert.True(t, fd.Nillable)
	assert.False(t, fd.Immutable)
	assert.Len(t, fd.Validators, 1)
	assert.Equal(t, "numeric", fd.SchemaType[dialect.SQLite])
	assert.Equal(t, "int_type", fd.SchemaType[dialect.Postgres])

	assert.Equal(t, field.TypeInt64, field.Int64("age").Descriptor().Type)
}

func TestInt_Validators(t *testing.T) {
	fd := field.Int("count").Range(1, 10).Descriptor()
	require.Len(t, fd.Validators, 1)
	validate := fd.Validators[0].(func(int) error)
	assert.NoError(t, validate(5))
	assert.Error(t, validate(0))
	assert.Error(t, validate(11))

	fd = field.Int("temp").Negative().Descriptor()
	validate = fd.Validators[0].(func(int) error)
	assert.NoError(t, validate(-1))
	assert.Error(t, validate(0))
}

func TestInt_DefaultFunc(t *testing.T) {
	var calls int
	fd := field.Int("seq").DefaultFunc(func() int {
		calls++
		return calls
	}).Descriptor()
	require.NotNil(t, fd.DefaultFunc)
	assert.Zero(t, calls, "building a descriptor must not invoke the default")

	// Each row computes a fresh value.
	v1, ok := fd.NewDefault()
	require.True(t, ok)
	v2, ok := fd.NewDefault()
	require.True(t, ok)
	assert.Equal(t, 1, v1)
	assert.Equal(t, 2, v2)
	assert.Equal(t, 2, calls)
}

func TestFloat(t *testing.T) {
	fd := field.Float("weight").Comment("comment").Positive().Descriptor()
	assert.Equal(t, "weight", fd.Name)
	assert.Equal(t, field.TypeFloat64, fd.Type)
	assert.Len(t, fd.Validators, 1)
	assert.Equal(t, "comment", fd.Comment)

	fd = field.Float("weight").Min(2.5).Max(5).Descriptor()
	assert.Len(t, fd.Validators, 2)
	assert.Equal(t, field.TypeFloat32, field.Float32("ratio").Descriptor().Type)
}

func TestBool(t *testing.T) {
	fd := field.Bool("active").Default(true).Comment("comment").Immutable().Descriptor()
	assert.Equal(t, "active", fd.Name)
	assert.Equal(t, field.TypeBool, fd.Type)
	require.NotNil(t, fd.Default)
	assert.True(t, fd.Immutable)
	assert.Equal(t, true, fd.Default)
	assert.Equal(t, "comment", fd.Comment)
}

func TestString(t *testing.T) {
	fd := field.String("name").
		Unique().
		MaxLen(100).
		Descriptor()
	assert.Equal(t, field.TypeString, fd.Type)
	assert.True(t, fd.Unique)
	assert.Equal(t, 100, fd.Size)
	require.Len(t, fd.Validators, 1)
	validate := fd.Validators[0].(func(string) error)
	assert.NoError(t, validate("short"))
	assert.Error(t, validate(string(make([]byte, 101))))

	fd = field.String("email").
		NotEmpty().
		Match(regexp.MustCompile("@")).
		Descriptor()
	require.Len(t, fd.Validators, 2)
	notEmpty := fd.Validators[0].(func(string) error)
	match := fd.Validators[1].(func(string) error)
	assert.Error(t, notEmpty(""))
	assert.NoError(t, match("a@b"))
	assert.Error(t, match("no-at-sign"))

	assert.Equal(t, field.TypeText, field.Text("bio").Descriptor().Type)
	assert.Equal(t, field.TypeChar, field.Char("flag").Descriptor().Type)
	assert.Equal(t, 2, field.Char("code").Size(2).Descriptor().Size)
}

func TestTime(t *testing.T) {
	now := time.Now()
	fd := field.Time("created_at").
		Default(func() time.Time { return now }).
		Immutable().
		Descriptor()
	assert.Equal(t, field.TypeTime, fd.Type)
	assert.True(t, fd.Immutable)
	v, ok := fd.NewDefault()
	require.True(t, ok)
	assert.Equal(t, now, v)

	assert.Equal(t, field.TypeDate, field.Date("birthday").Descriptor().Type)
	assert.Equal(t, field.TypeTimestamp, field.Time("seen_at").Timestamp().Descriptor().Type)

	fd = field.Time("updated_at").
		Default(time.Now).
		UpdateDefault(time.Now).
		Descriptor()
	assert.NotNil(t, fd.DefaultFunc)
	assert.NotNil(t, fd.UpdateDefault)
}

func TestUUID(t *testing.T) {
	fd := field.UUID("id").
		Default(uuid.New).
		Unique().
		Immutable().
		Descriptor()
	assert.Equal(t, field.TypeUUID, fd.Type)
	assert.True(t, fd.Unique)
	assert.True(t, fd.Immutable)

	v1, ok := fd.NewDefault()
	require.True(t, ok)
	v2, ok := fd.NewDefault()
	require.True(t, ok)
	assert.NotEqual(t, v1, v2, "uuid default must be computed per row")
}

func TestBytes(t *testing.T) {
	fd := field.Bytes("digest").MaxLen(32).Descriptor()
	assert.Equal(t, field.TypeBytes, fd.Type)
	assert.Equal(t, 32, fd.Size)
	require.Len(t, fd.Validators, 1)
	validate := fd.Validators[0].(func([]byte) error)
	assert.NoError(t, validate(make([]byte, 32)))
	assert.Error(t, validate(make([]byte, 33)))

	assert.Equal(t, field.TypeBlob, field.Blob("payload").Descriptor().Type)
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "Age", field.Int("age").Descriptor().GoName())
	assert.Equal(t, "CreatedAt", field.Time("created_at").Descriptor().GoName())
	assert.Equal(t, "FirstName", field.String("first_name").Descriptor().GoName())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", field.TypeInt.String())
	assert.Equal(t, "timestamp", field.TypeTimestamp.String())
	assert.True(t, field.TypeFloat32.Numeric())
	assert.False(t, field.TypeString.Numeric())
	assert.True(t, field.TypeDate.Temporal())
	assert.False(t, field.TypeInvalid.Valid())
	assert.True(t, field.TypeBlob.Valid())
}

func TestAnnotations(t *testing.T) {
	fd := field.String("name").
		Annotations(schema.Comment("display name")).
		Descriptor()
	require.Len(t, fd.Annotations, 1)
	assert.Equal(t, "Comment", fd.Annotations[0].Name())
}
