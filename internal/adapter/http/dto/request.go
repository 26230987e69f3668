package dto

import (
	"github.com/shopspring/decimal"

	"github.com/acmebank/account-manager/internal/domain"
	"github.com/acmebank/account-manager/internal/usecase"
)

// TransferRequest represents a request to move funds between two accounts.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
}

// Validate checks the request fields and returns a field-to-message map of
// everything wrong with it. An empty map means the request is acceptable.
func (r *TransferRequest) Validate() map[string]string {
	problems := make(map[string]string)

	if r.FromAccountID <= 0 {
		problems["fromAccountId"] = "must be a positive account id"
	}

	if r.ToAccountID <= 0 {
		problems["toAccountId"] = "must be a positive account id"
	}

	if err := domain.ValidateTransferAmount(r.Amount); err != nil {
		problems["amount"] = err.Error()
	}

	if r.Currency != "" {
		if _, err := domain.ParseCurrency(r.Currency); err != nil {
			problems["currency"] = err.Error()
		}
	}

	return problems
}

// ToUseCaseInput converts the validated request to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	currency, _ := domain.ParseCurrency(r.Currency)

	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Currency:      currency,
	}
}
