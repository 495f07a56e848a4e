package dialect

import (
	"fmt"

	"github.com/google/uuid"
)

// TypeProvider maps logical column types to vendor type tokens and owns
// value-marshalling for types without a native vendor representation. One
// method per logical type family; families a vendor cannot express return an
// UnsupportedError instead of producing invalid DDL.
//
// Vendor providers embed baseTypes and override only the methods where they
// diverge from the SQL-92-ish baseline.
type TypeProvider interface {
	// IntegerType is the 32-bit integer column type.
	IntegerType() string
	// IntegerAutoincType is the auto-incrementing integer column type.
	IntegerAutoincType() string
	// LongType is the 64-bit integer column type.
	LongType() string
	// LongAutoincType is the auto-incrementing 64-bit integer column type.
	LongAutoincType() string
	// FloatType is the single-precision floating point column type.
	FloatType() string
	// DoubleType is the double-precision floating point column type.
	DoubleType() string
	// BooleanType is the boolean column type.
	BooleanType() string
	// BooleanToSQL renders a boolean value as a vendor SQL literal.
	BooleanToSQL(b bool) string
	// VarcharType is the bounded variable-length string type. A
	// non-positive size uses the provider's documented default length.
	VarcharType(size int) string
	// CharType is the fixed-length string type.
	CharType(size int) string
	// TextType is the unbounded string type.
	TextType() string
	// DateType is the calendar-date column type.
	DateType() string
	// DateTimeType is the wall-clock date-and-time column type.
	DateTimeType() string
	// TimestampType is the point-in-time column type.
	TimestampType() string
	// UUIDType is the column type used to store UUIDs.
	UUIDType() string
	// UUIDToDB marshals a UUID into the driver value matching UUIDType.
	UUIDToDB(id uuid.UUID) any
	// BinaryType is the bounded binary type. Fails when the vendor
	// requires a length and none was given.
	BinaryType(size int) (string, error)
	// BlobType is the unbounded binary type. Fails on vendors without one.
	BlobType() (string, error)
	// ProcessDefault renders an expression for use in a DEFAULT clause,
	// applying the vendor's literal conversion rules.
	ProcessDefault(x Expression) (string, error)
}

// baseTypes is the generic, SQL-92/2003 type mapping. Auto-increment uses
// the standard IDENTITY clause; vendors with their own keyword override it.
type baseTypes struct{}

func (baseTypes) IntegerType() string        { return "INT" }
func (baseTypes) IntegerAutoincType() string { return "INT GENERATED BY DEFAULT AS IDENTITY" }
func (baseTypes) LongType() string           { return "BIGINT" }
func (baseTypes) LongAutoincType() string    { return "BIGINT GENERATED BY DEFAULT AS IDENTITY" }
func (baseTypes) FloatType() string          { return "REAL" }
func (baseTypes) DoubleType() string         { return "DOUBLE PRECISION" }
func (baseTypes) BooleanType() string        { return "BOOLEAN" }
func (baseTypes) TextType() string           { return "TEXT" }
func (baseTypes) DateType() string           { return "DATE" }
func (baseTypes) DateTimeType() string       { return "DATETIME" }
func (baseTypes) TimestampType() string      { return "TIMESTAMP" }

func (baseTypes) BooleanToSQL(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (baseTypes) VarcharType(size int) string {
	if size <= 0 {
		size = 255
	}
	return fmt.Sprintf("VARCHAR(%d)", size)
}

func (baseTypes) CharType(size int) string {
	if size <= 0 {
		size = 1
	}
	return fmt.Sprintf("CHAR(%d)", size)
}

// UUIDs have no SQL-92 representation; the baseline stores the raw 16 bytes.
func (baseTypes) UUIDType() string          { return "BINARY(16)" }
func (baseTypes) UUIDToDB(id uuid.UUID) any { return id[:] }

func (baseTypes) BinaryType(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("dialect: binary column requires an explicit length")
	}
	return fmt.Sprintf("VARBINARY(%d)", size), nil
}

func (baseTypes) BlobType() (string, error) { return "BLOB", nil }

// ProcessDefault renders literals through the generic literal conversion and
// passes any other expression through verbatim.
func (baseTypes) ProcessDefault(x Expression) (string, error) {
	if x == nil {
		return "", fmt.Errorf("dialect: nil default expression")
	}
	return x.Fragment(), nil
}
