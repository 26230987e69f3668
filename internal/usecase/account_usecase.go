package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/infrastructure/metrics"
)

// AccountUseCase serves balance queries. Reads take no lock; a single-row read
// through the store is already atomic and never observes a half-committed
// transfer.
type AccountUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. metrics may be nil.
func NewAccountUseCase(accountRepo AccountRepository, metrics *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		metrics:     metrics,
	}
}

// GetBalance returns the account's current balance, currency and type.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id int64) (*BalanceSnapshot, error) {
	start := time.Now()

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		if uc.metrics != nil {
			if derr, ok := err.(*domain.Error); ok {
				uc.metrics.BalanceQueryErrors.WithLabelValues(strconv.Itoa(int(derr.Code))).Inc()
			}
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceQueries.Inc()
		uc.metrics.BalanceQueryLatency.Observe(time.Since(start).Seconds())
	}

	return &BalanceSnapshot{
		Balance:  account.Balance,
		Currency: account.Currency,
		Type:     account.Type,
	}, nil
}
