package dialect

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLiteral_Fragment(t *testing.T) {
	ts := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		lit  Literal
		want string
	}{
		{"nil", Literal{}, "NULL"},
		{"numeric", Literal{Value: 42, Kind: KindNumeric}, "42"},
		{"float", Literal{Value: 2.5, Kind: KindNumeric}, "2.5"},
		{"string", Literal{Value: "hello", Kind: KindString}, "'hello'"},
		{"string_escaped", Literal{Value: "it's", Kind: KindString}, "'it''s'"},
		{"bool_true", Literal{Value: true, Kind: KindBool}, "TRUE"},
		{"bool_false", Literal{Value: false, Kind: KindBool}, "FALSE"},
		{"date", Literal{Value: ts, Kind: KindDate}, "'2024-05-01'"},
		{"datetime", Literal{Value: ts, Kind: KindDateTime}, "'2024-05-01 13:30:00'"},
		{"timestamp_string", Literal{Value: "2024-05-01 13:30:00", Kind: KindTimestamp}, "'2024-05-01 13:30:00'"},
		{"uuid", Literal{Value: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), Kind: KindUUID}, "'6ba7b810-9dad-11d1-80b4-00c04fd430c8'"},
		{"binary", Literal{Value: []byte{0xde, 0xad}, Kind: KindBinary}, "X'dead'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lit.Fragment())
		})
	}
}

func TestFunc_Fragment(t *testing.T) {
	assert.Equal(t, "CURRENT_TIMESTAMP", CurrentTimestamp().Fragment())
	assert.Equal(t, "CURRENT_DATE", CurrentDate().Fragment())
	f := Func{Name: "COALESCE", Args: []Expression{
		Func{Name: "NOW"},
		Literal{Value: "fallback", Kind: KindString},
	}}
	assert.Equal(t, "COALESCE(NOW, 'fallback')", f.Fragment())
}

func TestRaw_Fragment(t *testing.T) {
	assert.Equal(t, "gen_random_uuid()", Raw("gen_random_uuid()").Fragment())
}

func TestBaseAllowedDefault(t *testing.T) {
	assert.True(t, baseAllowedDefault(Literal{Value: 1, Kind: KindNumeric}))
	assert.True(t, baseAllowedDefault(&Literal{Value: 1, Kind: KindNumeric}))
	assert.False(t, baseAllowedDefault((*Literal)(nil)))
	assert.True(t, baseAllowedDefault(CurrentTimestamp()))
	assert.True(t, baseAllowedDefault(Func{Name: "current_date"}))
	// Functions with arguments and raw SQL are not in the allow-list.
	assert.False(t, baseAllowedDefault(Func{Name: "COALESCE", Args: []Expression{Literal{}}}))
	assert.False(t, baseAllowedDefault(Func{Name: "RANDOM"}))
	assert.False(t, baseAllowedDefault(Raw("1 + 1")))
}
