package sql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quarrydb/quarry/dialect"
)

func statsDriver(t *testing.T, opts ...StatsOption) (*StatsDriver, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStatsDriver(OpenDB(dialect.Postgres, db), opts...), mock
}

func TestStatsDriver_Counters(t *testing.T) {
	drv, mock := statsDriver(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE").WillReturnError(errors.New("boom"))

	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())
	require.NoError(t, drv.Exec(ctx, "INSERT INTO t VALUES (1)", []any{}, nil))
	require.Error(t, drv.Exec(ctx, "DELETE FROM t", []any{}, nil))

	s := drv.QueryStats().Stats()
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(2), s.TotalExecs)
	assert.Equal(t, int64(1), s.Errors)
	assert.Greater(t, s.TotalDuration, time.Duration(0))
	assert.Greater(t, s.AvgQueryDuration(), time.Duration(0))

	drv.QueryStats().Reset()
	assert.Equal(t, int64(0), drv.QueryStats().Stats().TotalQueries)
}

func TestStatsDriver_SlowQueryHook(t *testing.T) {
	var slow []string
	drv, mock := statsDriver(t,
		// Everything is slow with a zero-ish threshold.
		WithSlowThreshold(time.Nanosecond),
		WithSlowQueryHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)

	mock.ExpectQuery("SELECT pg_sleep").WillReturnRows(sqlmock.NewRows([]string{"ok"}).AddRow(1))
	rows := &Rows{}
	require.NoError(t, drv.Query(context.Background(), "SELECT pg_sleep(1)", []any{}, rows))
	require.NoError(t, rows.Close())

	assert.Equal(t, []string{"SELECT pg_sleep(1)"}, slow)
	assert.Equal(t, int64(1), drv.QueryStats().Stats().SlowQueries)
}

func TestStatsDriver_SlowQueryLog(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	drv, mock := statsDriver(t,
		WithSlowThreshold(time.Nanosecond),
		WithSlowQueryLog(zap.New(core)),
	)

	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, drv.Exec(context.Background(), "UPDATE t SET a = 1", []any{}, nil))

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "slow query detected", entries[0].Message)
	assert.Equal(t, "UPDATE t SET a = 1", entries[0].ContextMap()["query"])
}

func TestStatsDriver_Threshold(t *testing.T) {
	drv, mock := statsDriver(t, WithSlowThreshold(time.Hour))
	assert.Equal(t, time.Hour, drv.SlowThreshold())

	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, drv.Exec(context.Background(), "INSERT INTO t VALUES (1)", []any{}, nil))
	assert.Equal(t, int64(0), drv.QueryStats().Stats().SlowQueries)

	drv.SetSlowThreshold(time.Millisecond)
	assert.Equal(t, time.Millisecond, drv.SlowThreshold())
}

func TestStatsTx(t *testing.T) {
	drv, mock := statsDriver(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "INSERT INTO t VALUES (1)", []any{}, nil))
	rows := &Rows{}
	require.NoError(t, tx.Query(ctx, "SELECT id FROM t", []any{}, rows))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())

	s := drv.QueryStats().Stats()
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(1), s.TotalExecs)
}
