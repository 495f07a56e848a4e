package dialect

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeProviders_Integer(t *testing.T) {
	tests := []struct {
		dialect       string
		integer, long string
		autoinc       string
		longAutoinc   string
	}{
		{Generic, "INT", "BIGINT", "INT GENERATED BY DEFAULT AS IDENTITY", "BIGINT GENERATED BY DEFAULT AS IDENTITY"},
		{MySQL, "INT", "BIGINT", "INT AUTO_INCREMENT", "BIGINT AUTO_INCREMENT"},
		{Postgres, "INTEGER", "BIGINT", "SERIAL", "BIGSERIAL"},
		{SQLite, "INTEGER", "BIGINT", "INTEGER PRIMARY KEY AUTOINCREMENT", "INTEGER PRIMARY KEY AUTOINCREMENT"},
		{Oracle, "NUMBER(10)", "NUMBER(19)", "NUMBER(10) GENERATED BY DEFAULT AS IDENTITY", "NUMBER(19) GENERATED BY DEFAULT AS IDENTITY"},
		{SQLServer, "INT", "BIGINT", "INT IDENTITY(1,1)", "BIGINT IDENTITY(1,1)"},
		{Vertica, "INT", "INT", "IDENTITY(1,1)", "IDENTITY(1,1)"},
	}
	for _, tt := range tests {
		p := MustLookup(tt.dialect).Types
		assert.Equal(t, tt.integer, p.IntegerType(), tt.dialect)
		assert.Equal(t, tt.long, p.LongType(), tt.dialect)
		assert.Equal(t, tt.autoinc, p.IntegerAutoincType(), tt.dialect)
		assert.Equal(t, tt.longAutoinc, p.LongAutoincType(), tt.dialect)
	}
}

func TestTypeProviders_FloatAndText(t *testing.T) {
	tests := []struct {
		dialect       string
		float, double string
		text          string
	}{
		{Generic, "REAL", "DOUBLE PRECISION", "TEXT"},
		{MySQL, "FLOAT", "DOUBLE", "TEXT"},
		{Postgres, "REAL", "DOUBLE PRECISION", "TEXT"},
		{Oracle, "BINARY_FLOAT", "BINARY_DOUBLE", "CLOB"},
		{SQLServer, "REAL", "FLOAT", "VARCHAR(MAX)"},
		{Vertica, "FLOAT", "FLOAT", "LONG VARCHAR"},
	}
	for _, tt := range tests {
		p := MustLookup(tt.dialect).Types
		assert.Equal(t, tt.float, p.FloatType(), tt.dialect)
		assert.Equal(t, tt.double, p.DoubleType(), tt.dialect)
		assert.Equal(t, tt.text, p.TextType(), tt.dialect)
	}
}

func TestTypeProviders_Varchar(t *testing.T) {
	p := MustLookup(Generic).Types
	assert.Equal(t, "VARCHAR(100)", p.VarcharType(100))
	// A non-positive size falls back to the documented default length.
	assert.Equal(t, "VARCHAR(255)", p.VarcharType(0))
	assert.Equal(t, "CHAR(1)", p.CharType(0))

	assert.Equal(t, "VARCHAR2(100)", MustLookup(Oracle).Types.VarcharType(100))
}

func TestTypeProviders_Boolean(t *testing.T) {
	tests := []struct {
		dialect string
		typ     string
		yes, no string
	}{
		{Generic, "BOOLEAN", "TRUE", "FALSE"},
		{Oracle, "CHAR(1)", "'1'", "'0'"},
		{SQLServer, "BIT", "1", "0"},
		{Vertica, "BOOLEAN", "TRUE", "FALSE"},
	}
	for _, tt := range tests {
		p := MustLookup(tt.dialect).Types
		assert.Equal(t, tt.typ, p.BooleanType(), tt.dialect)
		assert.Equal(t, tt.yes, p.BooleanToSQL(true), tt.dialect)
		assert.Equal(t, tt.no, p.BooleanToSQL(false), tt.dialect)
	}
}

func TestTypeProviders_UUID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	tests := []struct {
		dialect string
		typ     string
		db      any
	}{
		{Generic, "BINARY(16)", id[:]},
		{MySQL, "BINARY(16)", id[:]},
		{Postgres, "UUID", id.String()},
		{SQLite, "TEXT", id.String()},
		{Oracle, "RAW(16)", id[:]},
		{SQLServer, "UNIQUEIDENTIFIER", id.String()},
		{Vertica, "UUID", id.String()},
	}
	for _, tt := range tests {
		p := MustLookup(tt.dialect).Types
		assert.Equal(t, tt.typ, p.UUIDType(), tt.dialect)
		assert.Equal(t, tt.db, p.UUIDToDB(id), tt.dialect)
	}
}

func TestTypeProviders_Binary(t *testing.T) {
	t.Run("RequiresLength", func(t *testing.T) {
		for _, name := range []string{Generic, Oracle, Vertica} {
			_, err := MustLookup(name).Types.BinaryType(0)
			require.Error(t, err, name)
		}
	})
	t.Run("Bounded", func(t *testing.T) {
		typ, err := MustLookup(Generic).Types.BinaryType(16)
		require.NoError(t, err)
		assert.Equal(t, "VARBINARY(16)", typ)

		typ, err = MustLookup(Oracle).Types.BinaryType(16)
		require.NoError(t, err)
		assert.Equal(t, "RAW(16)", typ)

		// RAW tops out at 2000 bytes.
		_, err = MustLookup(Oracle).Types.BinaryType(4000)
		require.Error(t, err)
	})
	t.Run("Unbounded", func(t *testing.T) {
		for _, name := range []string{Postgres, SQLite} {
			typ, err := MustLookup(name).Types.BinaryType(0)
			require.NoError(t, err, name)
			assert.NotEmpty(t, typ, name)
		}
	})
}

func TestTypeProviders_Blob(t *testing.T) {
	tests := []struct {
		dialect string
		typ     string
	}{
		{Generic, "BLOB"},
		{Postgres, "BYTEA"},
		{SQLServer, "VARBINARY(MAX)"},
	}
	for _, tt := range tests {
		typ, err := MustLookup(tt.dialect).Types.BlobType()
		require.NoError(t, err, tt.dialect)
		assert.Equal(t, tt.typ, typ, tt.dialect)
	}

	_, err := MustLookup(Vertica).Types.BlobType()
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

func TestProcessDefault(t *testing.T) {
	ts := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)
	t.Run("Generic", func(t *testing.T) {
		p := MustLookup(Generic).Types
		sql, err := p.ProcessDefault(Literal{Value: "a'b", Kind: KindString})
		require.NoError(t, err)
		assert.Equal(t, "'a''b'", sql)

		sql, err = p.ProcessDefault(CurrentTimestamp())
		require.NoError(t, err)
		assert.Equal(t, "CURRENT_TIMESTAMP", sql)

		_, err = p.ProcessDefault(nil)
		require.Error(t, err)
	})
	t.Run("Oracle", func(t *testing.T) {
		p := MustLookup(Oracle).Types
		sql, err := p.ProcessDefault(Literal{Value: true, Kind: KindBool})
		require.NoError(t, err)
		assert.Equal(t, "'1'", sql)

		sql, err = p.ProcessDefault(Literal{Value: ts, Kind: KindDate})
		require.NoError(t, err)
		assert.Equal(t, "DATE '2024-05-01'", sql)

		sql, err = p.ProcessDefault(Literal{Value: ts, Kind: KindTimestamp})
		require.NoError(t, err)
		assert.Equal(t, "TIMESTAMP '2024-05-01 13:30:00'", sql)
	})
	t.Run("SQLServer", func(t *testing.T) {
		sql, err := MustLookup(SQLServer).Types.ProcessDefault(Literal{Value: false, Kind: KindBool})
		require.NoError(t, err)
		assert.Equal(t, "0", sql)
	})
	t.Run("Vertica", func(t *testing.T) {
		p := MustLookup(Vertica).Types
		sql, err := p.ProcessDefault(Literal{Value: ts, Kind: KindDate})
		require.NoError(t, err)
		assert.Equal(t, "to_date('2024-05-01', 'YYYY-MM-DD')", sql)

		sql, err = p.ProcessDefault(Literal{Value: ts, Kind: KindDateTime})
		require.NoError(t, err)
		assert.Equal(t, "to_timestamp('2024-05-01 13:30:00', 'YYYY-MM-DD HH24:MI:SS')", sql)

		// Non-temporal literals follow the baseline.
		sql, err = p.ProcessDefault(Literal{Value: 42, Kind: KindNumeric})
		require.NoError(t, err)
		assert.Equal(t, "42", sql)
	})
	// Pointer literals take the same vendor conversions as value literals.
	t.Run("PointerLiteral", func(t *testing.T) {
		sql, err := MustLookup(Vertica).Types.ProcessDefault(&Literal{Value: ts, Kind: KindDate})
		require.NoError(t, err)
		assert.Equal(t, "to_date('2024-05-01', 'YYYY-MM-DD')", sql)

		sql, err = MustLookup(Oracle).Types.ProcessDefault(&Literal{Value: true, Kind: KindBool})
		require.NoError(t, err)
		assert.Equal(t, "'1'", sql)

		sql, err = MustLookup(SQLServer).Types.ProcessDefault(&Literal{Value: false, Kind: KindBool})
		require.NoError(t, err)
		assert.Equal(t, "0", sql)
	})
}
