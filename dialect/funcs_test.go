package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupConcat(t *testing.T) {
	tests := []struct {
		dialect string
		orderBy []string
		want    string
		wantErr bool
	}{
		{dialect: Generic, want: "", wantErr: true},
		{dialect: MySQL, want: "GROUP_CONCAT(name SEPARATOR ', ')"},
		{dialect: MySQL, orderBy: []string{"name ASC"}, want: "GROUP_CONCAT(name ORDER BY name ASC SEPARATOR ', ')"},
		{dialect: Postgres, want: "STRING_AGG(name, ', ')"},
		{dialect: Postgres, orderBy: []string{"name"}, want: "STRING_AGG(name, ', ' ORDER BY name)"},
		{dialect: SQLite, want: "GROUP_CONCAT(name, ', ')"},
		{dialect: SQLite, orderBy: []string{"name"}, wantErr: true},
		{dialect: Oracle, orderBy: []string{"name"}, want: "LISTAGG(name, ', ') WITHIN GROUP (ORDER BY name)"},
		{dialect: Oracle, wantErr: true}, // LISTAGG requires an ordering.
		{dialect: SQLServer, want: "STRING_AGG(name, ', ')"},
		{dialect: SQLServer, orderBy: []string{"name"}, want: "STRING_AGG(name, ', ') WITHIN GROUP (ORDER BY name)"},
		{dialect: Vertica, want: "LISTAGG(name USING PARAMETERS separator=', ')"},
		{dialect: Vertica, orderBy: []string{"name"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := MustLookup(tt.dialect).Funcs.GroupConcat("name", ", ", tt.orderBy)
		if tt.wantErr {
			require.Error(t, err, tt.dialect)
			continue
		}
		require.NoError(t, err, tt.dialect)
		assert.Equal(t, tt.want, got, tt.dialect)
	}
}

func TestUpdate(t *testing.T) {
	p := UpdateParams{
		Table:   "users",
		Columns: []string{"name", "age"},
		Values:  []any{"a8m", 30},
		Where:   &Predicate{SQL: "id = ?", Args: []any{1}},
	}
	t.Run("Generic", func(t *testing.T) {
		query, args, err := MustLookup(Generic).Funcs.Update(p)
		require.NoError(t, err)
		assert.Equal(t, `UPDATE "users" SET "name" = ?, "age" = ? WHERE id = ?`, query)
		assert.Equal(t, []any{"a8m", 30, 1}, args)
	})
	t.Run("NoWhere", func(t *testing.T) {
		query, args, err := MustLookup(Generic).Funcs.Update(UpdateParams{
			Table:   "users",
			Columns: []string{"name"},
			Values:  []any{"a8m"},
		})
		require.NoError(t, err)
		assert.Equal(t, `UPDATE "users" SET "name" = ?`, query)
		assert.Equal(t, []any{"a8m"}, args)
	})
	t.Run("ColumnMismatch", func(t *testing.T) {
		_, _, err := MustLookup(Generic).Funcs.Update(UpdateParams{
			Table:   "users",
			Columns: []string{"name"},
		})
		require.Error(t, err)
	})
}

func TestUpdate_Limit(t *testing.T) {
	p := UpdateParams{
		Table:   "users",
		Columns: []string{"name"},
		Values:  []any{"a8m"},
		Limit:   10,
	}
	t.Run("MySQL", func(t *testing.T) {
		query, _, err := MustLookup(MySQL).Funcs.Update(p)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE `users` SET `name` = ? LIMIT 10", query)
	})
	t.Run("SQLServer", func(t *testing.T) {
		query, _, err := MustLookup(SQLServer).Funcs.Update(p)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE TOP (10) [users] SET [name] = ?", query)
	})
	// The standard has no row limit on UPDATE; dialects that inherit the
	// baseline surface the gap instead of dropping the limit.
	for _, name := range []string{Generic, Postgres, SQLite, Oracle, Vertica} {
		t.Run(name, func(t *testing.T) {
			_, _, err := MustLookup(name).Funcs.Update(p)
			require.Error(t, err)
			assert.True(t, IsUnsupported(err))
			assert.Contains(t, err.Error(), "LIMIT in UPDATE")
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("Generic", func(t *testing.T) {
		query, args, err := MustLookup(Generic).Funcs.Delete(DeleteParams{
			Table: "users",
			Where: &Predicate{SQL: "age < ?", Args: []any{18}},
		})
		require.NoError(t, err)
		assert.Equal(t, `DELETE FROM "users" WHERE age < ?`, query)
		assert.Equal(t, []any{18}, args)
	})
	t.Run("MySQLLimit", func(t *testing.T) {
		query, _, err := MustLookup(MySQL).Funcs.Delete(DeleteParams{Table: "users", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM `users` LIMIT 5", query)
	})
	t.Run("SQLServerLimit", func(t *testing.T) {
		query, _, err := MustLookup(SQLServer).Funcs.Delete(DeleteParams{Table: "users", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, "DELETE TOP (5) FROM [users]", query)
	})
	t.Run("LimitUnsupported", func(t *testing.T) {
		for _, name := range []string{Generic, Postgres, SQLite, Oracle, Vertica} {
			_, _, err := MustLookup(name).Funcs.Delete(DeleteParams{Table: "users", Limit: 5})
			require.Error(t, err, name)
			assert.Contains(t, err.Error(), "LIMIT in DELETE", name)
		}
	})
}

func upsertParams() UpsertParams {
	return UpsertParams{
		Table:   "users",
		Columns: []string{"id", "name"},
		Values:  []any{1, "a8m"},
		Keys:    []string{"id"},
	}
}

func TestUpsert_Generic(t *testing.T) {
	_, _, err := MustLookup(Generic).Funcs.Upsert(upsertParams())
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

func TestUpsert_MySQL(t *testing.T) {
	query, args, err := MustLookup(MySQL).Funcs.Upsert(upsertParams())
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `users` (`id`, `name`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `name` = VALUES(`name`)", query)
	assert.Equal(t, []any{1, "a8m"}, args)
}

func TestUpsert_Postgres(t *testing.T) {
	query, _, err := MustLookup(Postgres).Funcs.Upsert(upsertParams())
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("id", "name") VALUES (?, ?) ON CONFLICT ("id") DO UPDATE SET "name" = excluded."name"`, query)

	t.Run("DoNothing", func(t *testing.T) {
		query, _, err := MustLookup(Postgres).Funcs.Upsert(UpsertParams{
			Table:   "users",
			Columns: []string{"id"},
			Values:  []any{1},
			Keys:    []string{"id"},
		})
		require.NoError(t, err)
		assert.Equal(t, `INSERT INTO "users" ("id") VALUES (?) ON CONFLICT ("id") DO NOTHING`, query)
	})
	t.Run("MissingKeys", func(t *testing.T) {
		p := upsertParams()
		p.Keys = nil
		_, _, err := MustLookup(Postgres).Funcs.Upsert(p)
		require.Error(t, err)
	})
}

func TestUpsert_SQLite(t *testing.T) {
	query, _, err := MustLookup(SQLite).Funcs.Upsert(upsertParams())
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `users` (`id`, `name`) VALUES (?, ?) ON CONFLICT (`id`) DO UPDATE SET `name` = excluded.`name`", query)
}

func TestUpsert_Oracle(t *testing.T) {
	query, args, err := MustLookup(Oracle).Funcs.Upsert(upsertParams())
	require.NoError(t, err)
	assert.Equal(t, `MERGE INTO "users" t USING (SELECT ? AS "id", ? AS "name" FROM DUAL) s ON (t."id" = s."id")`+
		` WHEN MATCHED THEN UPDATE SET t."name" = s."name"`+
		` WHEN NOT MATCHED THEN INSERT ("id", "name") VALUES (s."id", s."name")`, query)
	assert.Equal(t, []any{1, "a8m"}, args)
}

func TestUpsert_SQLServer(t *testing.T) {
	query, _, err := MustLookup(SQLServer).Funcs.Upsert(upsertParams())
	require.NoError(t, err)
	assert.Equal(t, `MERGE INTO [users] t USING (SELECT ? AS [id], ? AS [name]) s ON (t.[id] = s.[id])`+
		` WHEN MATCHED THEN UPDATE SET t.[name] = s.[name]`+
		` WHEN NOT MATCHED THEN INSERT ([id], [name]) VALUES (s.[id], s.[name]);`, query)
}

func TestUpsert_Vertica(t *testing.T) {
	t.Run("Keys", func(t *testing.T) {
		query, _, err := MustLookup(Vertica).Funcs.Upsert(upsertParams())
		require.NoError(t, err)
		assert.Equal(t, `MERGE INTO "users" t USING (SELECT ? AS "id", ? AS "name") s ON (t."id" = s."id")`+
			` WHEN MATCHED THEN UPDATE SET t."name" = s."name"`+
			` WHEN NOT MATCHED THEN INSERT ("id", "name") VALUES (s."id", s."name")`, query)
	})
	t.Run("ExplicitOn", func(t *testing.T) {
		p := upsertParams()
		p.Keys = nil
		p.On = `t."id" = s."id"`
		query, _, err := MustLookup(Vertica).Funcs.Upsert(p)
		require.NoError(t, err)
		assert.Contains(t, query, `ON (t."id" = s."id")`)
	})
	// MERGE cannot derive a match condition on its own.
	t.Run("NoCondition", func(t *testing.T) {
		p := upsertParams()
		p.Keys = nil
		_, _, err := MustLookup(Vertica).Funcs.Upsert(p)
		require.Error(t, err)
		assert.True(t, IsUnsupported(err))
	})
}

func TestUpsert_UpdateColumns(t *testing.T) {
	p := upsertParams()
	p.Columns = []string{"id", "name", "age"}
	p.Values = []any{1, "a8m", 30}
	p.UpdateColumns = []string{"age"}
	query, _, err := MustLookup(Postgres).Funcs.Upsert(p)
	require.NoError(t, err)
	assert.Contains(t, query, `DO UPDATE SET "age" = excluded."age"`)
	assert.NotContains(t, query, `"name" = excluded`)
}

func TestUpsert_Validate(t *testing.T) {
	_, _, err := MustLookup(MySQL).Funcs.Upsert(UpsertParams{
		Table:   "users",
		Columns: []string{"id"},
	})
	require.Error(t, err)
}
