package sqlschema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/dialect"
)

func TestAnnotation_GetColumnType(t *testing.T) {
	ant := Annotation{
		ColumnType: "TEXT",
		ColumnTypes: map[string]string{
			dialect.Postgres: "JSONB",
		},
	}
	typ, ok := ant.GetColumnType(dialect.Postgres)
	require.True(t, ok)
	require.Equal(t, "JSONB", typ)
	typ, ok = ant.GetColumnType(dialect.MySQL)
	require.True(t, ok)
	require.Equal(t, "TEXT", typ)

	_, ok = Annotation{}.GetColumnType(dialect.MySQL)
	require.False(t, ok)
}

func TestAnnotation_GetDefault(t *testing.T) {
	ant := Annotation{
		Default:     "'pending'",
		DefaultExpr: "lower(status)",
		DefaultExprs: map[string]string{
			dialect.Postgres: "gen_random_uuid()",
		},
	}
	x, ok := ant.GetDefault(dialect.Postgres)
	require.True(t, ok)
	require.Equal(t, "gen_random_uuid()", x)
	// DefaultExpr wins over Default for dialects without a specific entry.
	x, ok = ant.GetDefault(dialect.MySQL)
	require.True(t, ok)
	require.Equal(t, "lower(status)", x)

	x, ok = Annotation{Default: "'pending'"}.GetDefault(dialect.MySQL)
	require.True(t, ok)
	require.Equal(t, "'pending'", x)
}

func TestAnnotation_Merge(t *testing.T) {
	merged := MergeAll(
		Size(10),
		ColumnType("VARCHAR(10)"),
		Check("length(code) > 0"),
		OnDelete(dialect.Cascade),
		Size(20), // later annotations win.
	)
	require.Equal(t, int64(20), merged.Size)
	require.Equal(t, "VARCHAR(10)", merged.ColumnType)
	require.Equal(t, "length(code) > 0", merged.Check)
	action, ok := merged.GetOnDelete()
	require.True(t, ok)
	require.Equal(t, dialect.Cascade, action)

	// Merging a foreign annotation type is a no-op.
	other := merged.Merge(fakeAnnotation{}).(Annotation)
	require.Equal(t, merged, other)
}

func TestAnnotation_MergeMaps(t *testing.T) {
	merged := MergeAll(
		Checks(map[string]string{"a": "a > 0"}),
		Checks(map[string]string{"b": "b > 0"}),
		DefaultExprs(map[string]string{dialect.Postgres: "now()"}),
	)
	require.Len(t, merged.Checks, 2)
	require.Equal(t, "now()", merged.DefaultExprs[dialect.Postgres])
}

func TestAnnotation_WithComments(t *testing.T) {
	enabled, explicit := Annotation{}.GetWithComments()
	require.True(t, enabled)
	require.False(t, explicit)

	enabled, explicit = WithComments(false).GetWithComments()
	require.False(t, enabled)
	require.True(t, explicit)
}

type fakeAnnotation struct{}

func (fakeAnnotation) Name() string { return "fake" }
