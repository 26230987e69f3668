package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acmebank/account-manager/internal/adapter/repository/postgres"
	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/usecase"
	"github.com/acmebank/account-manager/tests/testutil"
)

func newTransferUseCase(testDB *testutil.TestDB) (*usecase.TransferUseCase, *postgres.AccountRepository) {
	pool := testDB.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txManager := postgres.NewTxManager(pool, time.Second)
	retrier := postgres.NewRetrier()

	return usecase.NewTransferUseCase(txManager, accountRepo, transactionRepo, retrier, nil, time.Second), accountRepo
}

func TestConcurrentTransfers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	transferUC, accountRepo := newTransferUseCase(testDB)

	t.Run("concurrent transfers conserve total", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 12345678, decimal.New(1000000, 0), domain.CurrencyHKD, domain.AccountTypeCurrent)
		testDB.CreateTestAccount(ctx, 88888888, decimal.New(1000000, 0), domain.CurrencyHKD, domain.AccountTypeSaving)

		numTransfers := 50
		amount := decimal.New(100, 0)

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
		)

		wg.Add(numTransfers)
		for range numTransfers {
			go func() {
				defer wg.Done()

				_, err := transferUC.Transfer(ctx, usecase.TransferInput{
					FromAccountID: 12345678,
					ToAccountID:   88888888,
					Amount:        amount,
				})
				if err == nil {
					successCount.Add(1)
				}
			}()
		}
		wg.Wait()

		if successCount.Load() != int32(numTransfers) {
			t.Errorf("expected %d successful transfers, got %d", numTransfers, successCount.Load())
		}

		source := testDB.AccountBalance(ctx, 12345678)
		dest := testDB.AccountBalance(ctx, 88888888)

		moved := amount.Mul(decimal.New(int64(numTransfers), 0))
		if !source.Equal(decimal.New(1000000, 0).Sub(moved)) {
			t.Errorf("unexpected source balance: %s", source)
		}
		if !dest.Equal(decimal.New(1000000, 0).Add(moved)) {
			t.Errorf("unexpected destination balance: %s", dest)
		}

		if !source.Add(dest).Equal(decimal.New(2000000, 0)) {
			t.Errorf("total not conserved: %s", source.Add(dest))
		}

		if got := testDB.TransactionCount(ctx); got != numTransfers {
			t.Errorf("expected %d transactions, got %d", numTransfers, got)
		}
	})

	t.Run("opposed transfers do not deadlock", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 12345678, decimal.New(1000000, 0), domain.CurrencyHKD, domain.AccountTypeCurrent)
		testDB.CreateTestAccount(ctx, 88888888, decimal.New(1000000, 0), domain.CurrencyHKD, domain.AccountTypeSaving)

		rounds := 25
		amount := decimal.New(100, 0)

		var wg sync.WaitGroup
		var failures atomic.Int32

		wg.Add(rounds * 2)
		for range rounds {
			go func() {
				defer wg.Done()
				if _, err := transferUC.Transfer(ctx, usecase.TransferInput{
					FromAccountID: 12345678,
					ToAccountID:   88888888,
					Amount:        amount,
				}); err != nil {
					failures.Add(1)
				}
			}()
			go func() {
				defer wg.Done()
				if _, err := transferUC.Transfer(ctx, usecase.TransferInput{
					FromAccountID: 88888888,
					ToAccountID:   12345678,
					Amount:        amount,
				}); err != nil {
					failures.Add(1)
				}
			}()
		}
		wg.Wait()

		if failures.Load() != 0 {
			t.Errorf("expected no failures with canonical lock ordering, got %d", failures.Load())
		}

		// Equal traffic both ways leaves both balances where they started.
		if got := testDB.AccountBalance(ctx, 12345678); !got.Equal(decimal.New(1000000, 0)) {
			t.Errorf("unexpected source balance: %s", got)
		}
		if got := testDB.AccountBalance(ctx, 88888888); !got.Equal(decimal.New(1000000, 0)) {
			t.Errorf("unexpected destination balance: %s", got)
		}
	})

	t.Run("concurrent overdraft attempts never go negative", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 12345678, decimal.New(500, 0), domain.CurrencyHKD, domain.AccountTypeCurrent)
		testDB.CreateTestAccount(ctx, 88888888, decimal.New(0, 0), domain.CurrencyHKD, domain.AccountTypeSaving)

		attempts := 20
		amount := decimal.New(100, 0)

		var (
			wg            sync.WaitGroup
			successCount  atomic.Int32
			overdraftErrs atomic.Int32
		)

		wg.Add(attempts)
		for range attempts {
			go func() {
				defer wg.Done()

				_, err := transferUC.Transfer(ctx, usecase.TransferInput{
					FromAccountID: 12345678,
					ToAccountID:   88888888,
					Amount:        amount,
				})
				switch {
				case err == nil:
					successCount.Add(1)
				case errors.Is(err, domain.ErrInsufficientFunds):
					overdraftErrs.Add(1)
				}
			}()
		}
		wg.Wait()

		// 500 covers exactly five transfers of 100.
		if successCount.Load() != 5 {
			t.Errorf("expected exactly 5 successful transfers, got %d", successCount.Load())
		}
		if overdraftErrs.Load() != int32(attempts)-5 {
			t.Errorf("expected %d overdraft rejections, got %d", attempts-5, overdraftErrs.Load())
		}

		source, err := accountRepo.GetByID(ctx, 12345678)
		if err != nil {
			t.Fatalf("failed to read source account: %v", err)
		}
		if source.Balance.IsNegative() {
			t.Errorf("source balance went negative: %s", source.Balance)
		}
		if !source.Balance.Equal(decimal.Zero) {
			t.Errorf("expected source drained to 0, got %s", source.Balance)
		}
	})
}
