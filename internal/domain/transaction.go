package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the ledger entry recorded for a completed transfer.
// Once persisted it is never updated or deleted. ID and CreatedAt are
// assigned by the store at append time.
type Transaction struct {
	ID            int64
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Currency      Currency
	CreatedAt     time.Time
}
