package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccountCanDebit(t *testing.T) {
	account := &Account{ID: 1, Balance: decimal.NewFromInt(500), Currency: CurrencyHKD}

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   bool
	}{
		{"debit within balance", decimal.NewFromInt(100), true},
		{"debit entire balance", decimal.NewFromInt(500), true},
		{"debit over balance", decimal.NewFromInt(501), false},
		{"debit fractional over balance", decimal.RequireFromString("500.01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := account.CanDebit(tt.amount); got != tt.want {
				t.Errorf("CanDebit(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAccountApplyDebitCredit(t *testing.T) {
	account := &Account{ID: 1, Balance: decimal.NewFromInt(1000)}

	debited := account.ApplyDebit(decimal.NewFromInt(100))
	if !debited.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected balance 900 after debit, got %s", debited)
	}

	credited := account.ApplyCredit(decimal.NewFromInt(100))
	if !credited.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected balance 1100 after credit, got %s", credited)
	}

	// Applying returns new values; the account itself is untouched.
	if !account.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected account balance unchanged, got %s", account.Balance)
	}
}
