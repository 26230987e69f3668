package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository on the
// append-only transactions table. Rows are never updated or deleted.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Append persists the transaction as part of tx. The store assigns the id
// (monotonic bigserial) and the creation timestamp, filled into txn.
func (r *TransactionRepository) Append(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	var createdAt pgtype.Timestamptz

	err := pgxTx.QueryRow(ctx,
		`INSERT INTO transactions (from_account_id, to_account_id, amount, currency)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		txn.FromAccountID, txn.ToAccountID, decimalToNumeric(txn.Amount), string(txn.Currency),
	).Scan(&txn.ID, &createdAt)
	if err != nil {
		return err
	}

	txn.CreatedAt = createdAt.Time

	return nil
}

const transactionColumns = `id, from_account_id, to_account_id, amount, currency, created_at`

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// ListByAccount lists transactions referencing an account, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE from_account_id = $1 OR to_account_id = $1
		 ORDER BY id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn       domain.Transaction
		amount    pgtype.Numeric
		currency  string
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&txn.ID, &txn.FromAccountID, &txn.ToAccountID, &amount, &currency, &createdAt); err != nil {
		return nil, err
	}

	txn.Amount = numericToDecimal(amount)
	txn.Currency = domain.Currency(currency)
	txn.CreatedAt = createdAt.Time

	return &txn, nil
}
