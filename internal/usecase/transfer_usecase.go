package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/infrastructure/metrics"
)

// TransferUseCase is the transfer engine. It moves funds between two accounts
// under exclusive row locks, recording a transaction in the same unit of work.
type TransferUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	retrier         Retrier
	metrics         *metrics.Metrics
	timeout         time.Duration
}

// NewTransferUseCase creates a new TransferUseCase. retrier and metrics may be
// nil; timeout <= 0 falls back to DefaultTransferTimeout.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	retrier Retrier,
	metrics *metrics.Metrics,
	timeout time.Duration,
) *TransferUseCase {
	if timeout <= 0 {
		timeout = DefaultTransferTimeout
	}

	return &TransferUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		retrier:         retrier,
		metrics:         metrics,
		timeout:         timeout,
	}
}

// TransferInput represents a validated transfer request.
type TransferInput struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Currency      domain.Currency
}

// BalanceSnapshot is an account's externally visible state at a point in time.
type BalanceSnapshot struct {
	Balance  decimal.Decimal
	Currency domain.Currency
	Type     domain.AccountType
}

// TransferResult is the snapshot returned after a successful transfer.
type TransferResult struct {
	TransactionID int64
	FromAccountID int64
	FromAccount   BalanceSnapshot
	ToAccountID   int64
	ToAccount     BalanceSnapshot
	CreatedAt     time.Time
}

// Transfer atomically moves input.Amount from the source to the destination
// account. Either both accounts move and a transaction is recorded, or nothing
// changes.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	start := time.Now()

	if input.FromAccountID == input.ToAccountID {
		return nil, uc.fail(domain.SameAccount())
	}

	// The boundary rejects non-positive amounts before they get here.
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var result *TransferResult

	operation := func() error {
		r, err := uc.transferOnce(ctx, input, currency)
		if err != nil {
			return err
		}

		result = r

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}

	if err != nil {
		if derr, ok := err.(*domain.Error); ok {
			return nil, uc.fail(derr)
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return result, nil
}

// transferOnce runs one attempt as a single unit of work bounded by the
// configured timeout.
func (uc *TransferUseCase) transferOnce(ctx context.Context, input TransferInput, currency domain.Currency) (*TransferResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock both rows in ascending id order regardless of transfer direction,
	// so two opposed transfers on the same pair cannot deadlock.
	ids := []int64{input.FromAccountID, input.ToAccountID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	from := byID[input.FromAccountID]
	to := byID[input.ToAccountID]

	// Validation follows the contract order: source account first, then the
	// source balance, then the destination account.
	if err := checkTransferable(from, input.FromAccountID, currency); err != nil {
		return nil, err
	}

	newFromBalance := from.ApplyDebit(input.Amount)
	if newFromBalance.IsNegative() {
		return nil, domain.InsufficientFunds(input.FromAccountID)
	}

	if err := checkTransferable(to, input.ToAccountID, currency); err != nil {
		return nil, err
	}

	newToBalance := to.ApplyCredit(input.Amount)

	now := time.Now().UTC()

	if err := uc.accountRepo.UpdateBalance(ctx, tx, from.ID, newFromBalance, now); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, to.ID, newToBalance, now); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Amount:        input.Amount,
		Currency:      currency,
	}

	if err := uc.transactionRepo.Append(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TransferResult{
		TransactionID: txn.ID,
		FromAccountID: from.ID,
		FromAccount: BalanceSnapshot{
			Balance:  newFromBalance,
			Currency: from.Currency,
			Type:     from.Type,
		},
		ToAccountID: to.ID,
		ToAccount: BalanceSnapshot{
			Balance:  newToBalance,
			Currency: to.Currency,
			Type:     to.Type,
		},
		CreatedAt: txn.CreatedAt,
	}, nil
}

// GetTransaction retrieves a recorded transaction by id.
func (uc *TransferUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// ListTransactionsByAccountInput represents input for listing transactions.
type ListTransactionsByAccountInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// ListTransactionsByAccount lists transactions touching an account.
func (uc *TransferUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

func (uc *TransferUseCase) fail(err *domain.Error) *domain.Error {
	if uc.metrics != nil {
		uc.metrics.TransferErrors.WithLabelValues(strconv.Itoa(int(err.Code))).Inc()
	}

	return err
}

// checkTransferable enforces existence and currency. A currency mismatch is
// reported with the same code as a missing account; the wire contract does not
// distinguish the two, so only the log tells them apart.
func checkTransferable(account *domain.Account, id int64, currency domain.Currency) error {
	if account == nil {
		return domain.AccountNotFound(id)
	}

	if account.Currency != currency {
		log.Warn().
			Int64("account_id", id).
			Str("account_currency", string(account.Currency)).
			Str("requested_currency", string(currency)).
			Str("reason", "currency_mismatch").
			Msg("transfer rejected")

		return domain.AccountNotFound(id)
	}

	return nil
}
