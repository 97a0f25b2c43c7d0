package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors returned by accounts and the customer directory
var (
	// ErrInvalidAmount indicates a non-positive amount
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrInsufficientFunds indicates a debit larger than the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMinimumBalance indicates a balance below the configured floor
	ErrMinimumBalance = errors.New("minimum balance violation")

	// ErrDailyLimitExceeded indicates today's debits would exceed the daily cap
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrInvalidIFSC indicates a malformed routing code
	ErrInvalidIFSC = errors.New("invalid IFSC code")

	// ErrDuplicateAccount indicates a customer id or account number is already registered
	ErrDuplicateAccount = errors.New("duplicate account")

	// ErrNotFound indicates the requested customer or account does not exist
	ErrNotFound = errors.New("account not found")

	// ErrInvalidArgument indicates a structurally invalid request
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCreditsBlocked indicates the account does not accept credits
	ErrCreditsBlocked = errors.New("account is blocked for credits")
)

// InsufficientFundsError carries the attempted amount and the available balance.
type InsufficientFundsError struct {
	Attempted decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: attempted %s, available %s",
		e.Attempted.StringFixed(2), e.Available.StringFixed(2))
}

// Is reports ErrInsufficientFunds as the matching sentinel.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
