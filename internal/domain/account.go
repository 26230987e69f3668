package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account holding a balance in a single currency.
// Accounts are created outside this service; only Balance and UpdatedAt change.
type Account struct {
	ID        int64
	Balance   decimal.Decimal
	Currency  Currency
	Type      AccountType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDebit reports whether debiting amount keeps the balance non-negative.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return !a.Balance.Sub(amount).IsNegative()
}

// ApplyDebit returns the balance after a debit of amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit of amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
