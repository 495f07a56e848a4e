package dialect

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DebugDriver is a driver that logs all driver operations.
type DebugDriver struct {
	Driver             // underlying driver.
	log    *zap.Logger // log for debugging purposes.
}

// Debug gets a driver and an optional logger and returns a new debugged
// driver. When no logger is supplied, zap's no-op logger is used.
func Debug(d Driver, logger ...*zap.Logger) Driver {
	log := zap.NewNop()
	if len(logger) == 1 && logger[0] != nil {
		log = logger[0]
	}
	return &DebugDriver{d, log}
}

// Exec logs its params and calls the underlying driver Exec method.
func (d *DebugDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.log.Debug("driver.Exec", zap.String("query", query), zap.Any("args", args))
	return d.Driver.Exec(ctx, query, args, v)
}

// Query logs its params and calls the underlying driver Query method.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	d.log.Debug("driver.Query", zap.String("query", query), zap.Any("args", args))
	return d.Driver.Query(ctx, query, args, v)
}

// Tx adds a log-id for the transaction and calls the underlying driver Tx
// command.
func (d *DebugDriver) Tx(ctx context.Context) (Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	d.log.Debug("driver.Tx started", zap.String("tx", id))
	return &DebugTx{tx, id, d.log}, nil
}

// DebugTx is a transaction implementation that logs all transaction
// operations.
type DebugTx struct {
	Tx              // underlying transaction.
	id  string      // transaction logging id.
	log *zap.Logger // log for debugging purposes.
}

// Exec logs its params and calls the underlying transaction Exec method.
func (d *DebugTx) Exec(ctx context.Context, query string, args, v any) error {
	d.log.Debug("tx.Exec", zap.String("tx", d.id), zap.String("query", query), zap.Any("args", args))
	return d.Tx.Exec(ctx, query, args, v)
}

// Query logs its params and calls the underlying transaction Query method.
func (d *DebugTx) Query(ctx context.Context, query string, args, v any) error {
	d.log.Debug("tx.Query", zap.String("tx", d.id), zap.String("query", query), zap.Any("args", args))
	return d.Tx.Query(ctx, query, args, v)
}

// Commit logs this step and calls the underlying transaction Commit method.
func (d *DebugTx) Commit() error {
	d.log.Debug("tx.Commit", zap.String("tx", d.id))
	return d.Tx.Commit()
}

// Rollback logs this step and calls the underlying transaction Rollback
// method.
func (d *DebugTx) Rollback() error {
	d.log.Debug("tx.Rollback", zap.String("tx", d.id))
	return d.Tx.Rollback()
}
