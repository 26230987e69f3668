package domain

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 currency code from the fixed set the bank supports.
type Currency string

const (
	CurrencyHKD Currency = "HKD"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
	CurrencySGD Currency = "SGD"
)

// DefaultCurrency is applied when a transfer request omits the currency.
const DefaultCurrency = CurrencyHKD

var supportedCurrencies = map[Currency]bool{
	CurrencyHKD: true,
	CurrencyUSD: true,
	CurrencyEUR: true,
	CurrencyGBP: true,
	CurrencyCNY: true,
	CurrencySGD: true,
}

// ParseCurrency parses a currency code. An empty value yields DefaultCurrency.
func ParseCurrency(s string) (Currency, error) {
	if s == "" {
		return DefaultCurrency, nil
	}

	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !supportedCurrencies[c] {
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
	}

	return c, nil
}

// AccountType classifies an account. Immutable for the account's lifetime.
type AccountType string

const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSaving  AccountType = "SAVING"
)

// ParseAccountType parses an account type code.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountTypeCurrent:
		return AccountTypeCurrent, nil
	case AccountTypeSaving:
		return AccountTypeSaving, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidAccountType, s)
	}
}
