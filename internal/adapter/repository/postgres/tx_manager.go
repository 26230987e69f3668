package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acmebank/account-manager/internal/usecase"
)

type pgxPool interface {
	BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error)
}

// TxManager implements usecase.TransactionManager. Transactions run at
// REPEATABLE READ so one transfer never observes another's uncommitted
// balances, and row-lock waits are bounded by lockWaitTimeout.
type TxManager struct {
	pool            pgxPool
	lockWaitTimeout time.Duration
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, lockWaitTimeout time.Duration) *TxManager {
	return newTxManagerWithPool(pool, lockWaitTimeout)
}

func newTxManagerWithPool(pool pgxPool, lockWaitTimeout time.Duration) *TxManager {
	if lockWaitTimeout <= 0 {
		lockWaitTimeout = time.Second
	}

	return &TxManager{pool: pool, lockWaitTimeout: lockWaitTimeout}
}

// Begin starts a new transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, err
	}

	// Bounds FOR UPDATE waits; expiry raises 55P03 (lock_not_available).
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockWaitTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	return &Tx{tx: tx}, nil
}

// Tx wraps a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// PgxTx returns the underlying pgx.Tx.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
