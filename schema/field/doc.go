// Package field provides fluent builders for defining table fields.
//
// Field names follow database conventions (snake_case), while Go names are
// derived from them:
//
//	field.Int64("user_id")    // DB: user_id, Go: UserId
//	field.String("email")     // DB: email, Go: Email
//
// # Field Types
//
// Each builder produces a Descriptor carrying a logical type that the
// selected dialect's type provider maps to a vendor type token:
//
//	field.String("name")      // bounded varchar
//	field.Text("description") // unbounded text
//	field.Char("code")        // fixed width, defaults to one character
//	field.Int("count")
//	field.Int64("big_number")
//	field.Float("price")
//	field.Bool("is_active")
//	field.Time("created_at")
//	field.Date("birthday")
//	field.UUID("id")
//	field.Bytes("digest")     // bounded binary
//	field.Blob("payload")     // unbounded binary, not every vendor has one
//
// # Field Options
//
//	field.String("email").
//	    Unique().              // unique constraint
//	    Optional().            // not required on create
//	    Nillable().            // nullable in DB, pointer in Go
//	    MaxLen(255).           // column size and length validator
//	    Comment("login email")
//
// # Defaults
//
// Default sets a database-side default; DefaultFunc (and Default on time
// and uuid fields) sets a client-computed default that is invoked exactly
// once per new row and never cached:
//
//	field.Time("created_at").Default(time.Now)
//	field.UUID("id").Default(uuid.New)
//	field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now)
//
// Whether a database-side default may be rendered into DDL is decided by
// the selected dialect; ineligible defaults degrade to a nullable column.
package field
