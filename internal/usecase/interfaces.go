package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acmebank/account-manager/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	// GetByIDsForUpdate fetches the given accounts under exclusive row locks,
	// acquiring them in ascending id order. Missing ids are simply absent from
	// the result. The locks are held until the transaction ends.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
}

// TransactionRepository defines data access for the transaction log.
type TransactionRepository interface {
	// Append persists the transaction as part of tx and fills in the
	// store-assigned ID and CreatedAt.
	Append(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore lets the boundary replay a completed transfer response
// instead of re-executing the transfer.
type IdempotencyStore interface {
	// CheckAndSet atomically reserves key if unseen. Returns (exists,
	// existingValue, error); a reserved-but-unfinished key yields (true, nil).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update records the final response for key.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Delete releases a reserved key so the request may be retried.
	Delete(ctx context.Context, key string) error
}
