package dialect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type nopDriver struct{ dialect string }

func (d nopDriver) Exec(context.Context, string, any, any) error  { return nil }
func (d nopDriver) Query(context.Context, string, any, any) error { return nil }
func (d nopDriver) Tx(context.Context) (Tx, error)                { return nopTx{}, nil }
func (d nopDriver) Close() error                                  { return nil }
func (d nopDriver) Dialect() string                               { return d.dialect }

type nopTx struct{}

func (nopTx) Exec(context.Context, string, any, any) error  { return nil }
func (nopTx) Query(context.Context, string, any, any) error { return nil }
func (nopTx) Commit() error                                 { return nil }
func (nopTx) Rollback() error                               { return nil }

func TestDebugDriver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	drv := Debug(nopDriver{dialect: Postgres}, zap.New(core))
	ctx := context.Background()

	require.NoError(t, drv.Exec(ctx, "INSERT INTO users (name) VALUES ($1)", []any{"a8m"}, nil))
	require.NoError(t, drv.Query(ctx, "SELECT * FROM users", []any{}, nil))
	assert.Equal(t, Postgres, drv.Dialect())

	entries := logs.TakeAll()
	require.Len(t, entries, 2)
	assert.Equal(t, "driver.Exec", entries[0].Message)
	assert.Equal(t, "INSERT INTO users (name) VALUES ($1)", entries[0].ContextMap()["query"])
	assert.Equal(t, "driver.Query", entries[1].Message)
}

func TestDebugTx(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	drv := Debug(nopDriver{dialect: MySQL}, zap.New(core))

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "UPDATE users SET name = ?", []any{"nati"}, nil))
	require.NoError(t, tx.Commit())

	entries := logs.TakeAll()
	require.Len(t, entries, 3)
	assert.Equal(t, "driver.Tx started", entries[0].Message)
	assert.Equal(t, "tx.Exec", entries[1].Message)
	assert.Equal(t, "tx.Commit", entries[2].Message)
	// The same transaction id tags every entry of the transaction.
	id := entries[0].ContextMap()["tx"]
	assert.NotEmpty(t, id)
	assert.Equal(t, id, entries[1].ContextMap()["tx"])
	assert.Equal(t, id, entries[2].ContextMap()["tx"])
}

func TestDebug_DefaultLogger(t *testing.T) {
	drv := Debug(nopDriver{dialect: SQLite})
	require.NoError(t, drv.Exec(context.Background(), "PRAGMA foreign_keys = ON", []any{}, nil))
	require.NoError(t, drv.Close())
}
