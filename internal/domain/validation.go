package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Boundary validation errors for transfer amounts.
var (
	ErrAmountBelowMinimum = errors.New("amount below minimum allowed")
	ErrAmountTooPrecise   = errors.New("amount exceeds digit limits")
)

// Amount limits enforced at the boundary.
const (
	MinTransferAmount = "100"
	MaxIntegerDigits  = 32
	MaxFractionDigits = 18
)

var minTransferAmount = decimal.RequireFromString(MinTransferAmount)

// ValidateTransferAmount enforces the boundary contract for transfer amounts:
// positive, at least the minimum, and within the integer/fraction digit caps.
func ValidateTransferAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if amount.LessThan(minTransferAmount) {
		return fmt.Errorf("%w: minimum transfer amount is %s", ErrAmountBelowMinimum, MinTransferAmount)
	}

	if amount.Exponent() < -MaxFractionDigits {
		return fmt.Errorf("%w: at most %d fraction digits", ErrAmountTooPrecise, MaxFractionDigits)
	}

	integerDigits := len(amount.Truncate(0).Abs().String())
	if integerDigits > MaxIntegerDigits {
		return fmt.Errorf("%w: at most %d integer digits", ErrAmountTooPrecise, MaxIntegerDigits)
	}

	return nil
}
