package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation errors surfaced before a transfer reaches the engine.
var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrTransactionNotFound covers lookups of recorded transactions; it is
	// not part of the transfer error contract.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ErrorCode identifies a domain failure kind. Codes are part of the wire
// contract and never reused.
type ErrorCode int

const (
	CodeAccountNotFound   ErrorCode = 1001
	CodeInsufficientFunds ErrorCode = 1002
	CodeSameAccount       ErrorCode = 1003
	CodeServiceBusy       ErrorCode = 9999
)

var errorMessages = map[ErrorCode]string{
	CodeAccountNotFound:   "Specified account %s not found!",
	CodeInsufficientFunds: "Insufficient fund in account %s!",
	CodeSameAccount:       "Cannot transfer from same account!",
	CodeServiceBusy:       "Service is busy, please retry later!",
}

// Error is a domain failure carrying a stable code and the positional
// parameters needed to render its message.
type Error struct {
	Code   ErrorCode
	Params []string
}

// Error renders the coded message with its positional parameters.
func (e *Error) Error() string {
	msg, ok := errorMessages[e.Code]
	if !ok {
		return fmt.Sprintf("domain error %d", e.Code)
	}

	if strings.Contains(msg, "%s") {
		args := make([]any, len(e.Params))
		for i, p := range e.Params {
			args[i] = p
		}

		return fmt.Sprintf(msg, args...)
	}

	return msg
}

// Is matches by code so errors.Is works against the exported sentinels
// regardless of parameters.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrAccountNotFound   = &Error{Code: CodeAccountNotFound}
	ErrInsufficientFunds = &Error{Code: CodeInsufficientFunds}
	ErrSameAccount       = &Error{Code: CodeSameAccount}
	ErrServiceBusy       = &Error{Code: CodeServiceBusy}
)

// AccountNotFound returns a 1001 error naming the missing or mismatched account.
func AccountNotFound(accountID int64) *Error {
	return &Error{Code: CodeAccountNotFound, Params: []string{strconv.FormatInt(accountID, 10)}}
}

// InsufficientFunds returns a 1002 error naming the account that cannot cover
// the debit.
func InsufficientFunds(accountID int64) *Error {
	return &Error{Code: CodeInsufficientFunds, Params: []string{strconv.FormatInt(accountID, 10)}}
}

// SameAccount returns a 1003 error.
func SameAccount() *Error {
	return &Error{Code: CodeSameAccount}
}

// ServiceBusy returns a 9999 error. Transient; the caller may retry the
// identical request. Carries no account detail.
func ServiceBusy() *Error {
	return &Error{Code: CodeServiceBusy}
}
