package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/usecase"
)

// AccountBalanceResponse represents an account's balance in API responses.
type AccountBalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Type     string          `json:"type"`
}

// AccountBalanceFromSnapshot converts a balance snapshot to a response.
func AccountBalanceFromSnapshot(s *usecase.BalanceSnapshot) *AccountBalanceResponse {
	return &AccountBalanceResponse{
		Balance:  s.Balance,
		Currency: string(s.Currency),
		Type:     string(s.Type),
	}
}

// TransferResponse represents a completed transfer in API responses. Both
// sides carry a full balance snapshot (balance, currency, type) so the caller
// needs no follow-up query.
type TransferResponse struct {
	TransactionID      int64                   `json:"transactionId"`
	FromAccountID      int64                   `json:"fromAccountId"`
	FromAccountBalance *AccountBalanceResponse `json:"fromAccountBalance"`
	ToAccountID        int64                   `json:"toAccountId"`
	ToAccountBalance   *AccountBalanceResponse `json:"toAccountBalance"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(r *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		TransactionID:      r.TransactionID,
		FromAccountID:      r.FromAccountID,
		FromAccountBalance: AccountBalanceFromSnapshot(&r.FromAccount),
		ToAccountID:        r.ToAccountID,
		ToAccountBalance:   AccountBalanceFromSnapshot(&r.ToAccount),
		CreatedAt:          r.CreatedAt,
	}
}

// TransactionResponse represents a recorded ledger transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionId"`
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		TransactionID: t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Currency:      string(t.Currency),
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}

	return result
}

// ErrorResponse represents a coded error in API responses.
type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// ValidationErrorResponse carries per-field validation failures.
type ValidationErrorResponse struct {
	Code   int               `json:"code"`
	Msg    string            `json:"msg"`
	Fields map[string]string `json:"fields"`
}
