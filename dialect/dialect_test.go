package dialect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCreateIndex(t *testing.T) {
	tests := []struct {
		dialect string
		unique  bool
		want    string
	}{
		{Generic, false, `CREATE INDEX "users_name" ON "users" ("name")`},
		{Generic, true, `CREATE UNIQUE INDEX "users_name" ON "users" ("name")`},
		{MySQL, false, "CREATE INDEX `users_name` ON `users` (`name`)"},
		{SQLServer, false, "CREATE INDEX [users_name] ON [users] ([name])"},
	}
	for _, tt := range tests {
		got, err := MustLookup(tt.dialect).CreateIndex("users", "users_name", tt.unique, []string{"name"})
		require.NoError(t, err, tt.dialect)
		assert.Equal(t, tt.want, got, tt.dialect)
	}
}

// Projections organize storage on analytical warehouses; there are no
// secondary indexes to create or drop.
func TestIndexes_Vertica(t *testing.T) {
	d := MustLookup(Vertica)
	_, err := d.CreateIndex("users", "users_name", false, []string{"name"})
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))

	_, err = d.DropIndex("users", "users_name")
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

func TestDropIndex(t *testing.T) {
	got, err := MustLookup(Generic).DropIndex("users", "users_name")
	require.NoError(t, err)
	assert.Equal(t, `DROP INDEX "users_name"`, got)

	// MySQL and SQL Server scope the index to the table.
	got, err = MustLookup(MySQL).DropIndex("users", "users_name")
	require.NoError(t, err)
	assert.Equal(t, "DROP INDEX `users_name` ON `users`", got)

	got, err = MustLookup(SQLServer).DropIndex("users", "users_name")
	require.NoError(t, err)
	assert.Equal(t, "DROP INDEX [users_name] ON [users]", got)
}

func TestCreateSchema(t *testing.T) {
	got, err := MustLookup(Postgres).CreateSchema("app")
	require.NoError(t, err)
	assert.Equal(t, `CREATE SCHEMA "app"`, got)

	for _, name := range []string{SQLite, Oracle} {
		_, err := MustLookup(name).CreateSchema("app")
		require.Error(t, err, name)
		assert.True(t, IsUnsupported(err), name)
	}
}

func TestSetSchema(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{Generic, `SET SCHEMA "app"`},
		{MySQL, "USE `app`"},
		{Postgres, `SET search_path TO "app"`},
		{Oracle, `ALTER SESSION SET CURRENT_SCHEMA = "app"`},
		{Vertica, `SET SEARCH_PATH TO "app"`},
	}
	for _, tt := range tests {
		got, err := MustLookup(tt.dialect).SetSchema("app")
		require.NoError(t, err, tt.dialect)
		assert.Equal(t, tt.want, got, tt.dialect)
	}
	for _, name := range []string{SQLite, SQLServer} {
		_, err := MustLookup(name).SetSchema("app")
		require.Error(t, err, name)
		assert.True(t, IsUnsupported(err), name)
	}
}

func TestAllowedAsColumnDefault(t *testing.T) {
	d := MustLookup(Generic)
	assert.True(t, d.AllowedAsColumnDefault(Literal{Value: 1, Kind: KindNumeric}))
	assert.True(t, d.AllowedAsColumnDefault(CurrentTimestamp()))
	assert.False(t, d.AllowedAsColumnDefault(Raw("random()")))
	assert.False(t, d.AllowedAsColumnDefault(nil))
}

// A vendor hook may broaden default eligibility but never shrink it: every
// expression the base rule accepts is accepted by every dialect.
func TestAllowedAsColumnDefault_Monotonic(t *testing.T) {
	baseAccepted := []Expression{
		Literal{Value: 1, Kind: KindNumeric},
		Literal{Value: "x", Kind: KindString},
		CurrentTimestamp(),
		CurrentDate(),
		Func{Name: "LOCALTIMESTAMP"},
	}
	for _, name := range List() {
		d := MustLookup(name)
		for _, x := range baseAccepted {
			assert.True(t, d.AllowedAsColumnDefault(x), "%s must accept %s", name, x.Fragment())
		}
	}
}

func TestAllowedAsColumnDefault_Vertica(t *testing.T) {
	d := MustLookup(Vertica)
	// The hook broadens eligibility to arbitrary expressions...
	assert.True(t, d.AllowedAsColumnDefault(Raw("gen_random_uuid()")))
	// ...except ones spelled with bare NOW or TIMESTAMP tokens.
	assert.False(t, d.AllowedAsColumnDefault(Raw("NOW()")))
	assert.False(t, d.AllowedAsColumnDefault(Raw("TIMESTAMP 'epoch'")))
	assert.False(t, d.AllowedAsColumnDefault(Raw("now()")))
	// The word boundary keeps CURRENT_TIMESTAMP out of the deny rule.
	assert.True(t, d.AllowedAsColumnDefault(CurrentTimestamp()))
}

func TestCapabilityFlags(t *testing.T) {
	assert.True(t, MustLookup(Postgres).SupportsReturning)
	assert.True(t, MustLookup(SQLite).SupportsReturning)
	assert.False(t, MustLookup(MySQL).SupportsReturning)

	assert.False(t, MustLookup(Vertica).SupportsIndexes)
	assert.False(t, MustLookup(SQLite).SupportsCreateSchema)

	assert.Equal(t, Restrict, MustLookup(MySQL).DefaultReferenceOption)
	assert.Equal(t, NoAction, MustLookup(Postgres).DefaultReferenceOption)
}

// Dialects are immutable after registration; rendering from many
// goroutines must be race-free.
func TestConcurrentRendering(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		for _, name := range []string{MySQL, Postgres, Vertica} {
			name := name
			d := MustLookup(name)
			g.Go(func() error {
				for j := 0; j < 100; j++ {
					if _, _, err := d.Funcs.Upsert(upsertParams()); err != nil {
						return err
					}
					if !d.AllowedAsColumnDefault(Literal{Value: i, Kind: KindNumeric}) {
						return fmt.Errorf("literal rejected by %s", name)
					}
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}
