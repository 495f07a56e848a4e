package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/quarrydb/quarry/dialect"
)

// Create renders and executes the CREATE TABLE statements for the given
// tables, followed by their index statements, inside a single transaction.
// The driver's dialect must be registered; tables are validated before any
// statement is executed.
func Create(ctx context.Context, drv dialect.Driver, tables ...*Table) error {
	d, err := dialect.Lookup(drv.Dialect())
	if err != nil {
		return err
	}
	if result := ValidateSchema(tables); result.HasErrors() {
		return fmt.Errorf("schema: validation failed:\n%s", result)
	}
	statements := make([]string, 0, len(tables))
	for _, t := range tables {
		ddl, err := t.DDL(d)
		if err != nil {
			return err
		}
		statements = append(statements, ddl)
		for _, idx := range t.Indexes {
			stmt, err := d.CreateIndex(t.QualifiedName(), idx.Name, idx.Unique, columnNames(idx.Columns))
			if err != nil {
				return err
			}
			statements = append(statements, stmt)
		}
	}
	tx, err := drv.Tx(ctx)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if err := tx.Exec(ctx, stmt, []any{}, nil); err != nil {
			return rollback(tx, fmt.Errorf("schema: exec %q: %w", stmt, err))
		}
	}
	return tx.Commit()
}

// rollback calls tx.Rollback and wraps the given error with the rollback
// error if it occurred.
func rollback(tx dialect.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}
