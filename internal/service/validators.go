package service

import (
	"fmt"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Account numbers are six digits
const (
	MinAccountNumber = 100000
	MaxAccountNumber = 999999
)

// ValidateAmount checks that amount is positive with at most two decimal places
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be greater than 0", models.ErrInvalidAmount)
	}

	if !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("%w: at most 2 decimal places allowed", models.ErrInvalidAmount)
	}

	return nil
}

// ValidateIFSC checks the routing code format: four letters, a literal zero,
// six alphanumerics. Lowercase input is accepted.
func ValidateIFSC(code string) error {
	if !models.ValidIFSC(code) {
		return fmt.Errorf("%w: %q must match AAAA0XXXXXX", models.ErrInvalidIFSC, code)
	}
	return nil
}

// ValidateCustomerID checks that id is positive
func ValidateCustomerID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: customer id must be positive", models.ErrInvalidArgument)
	}
	return nil
}

// ValidateAccountNumber checks that number has six digits
func ValidateAccountNumber(number int64) error {
	if number < MinAccountNumber || number > MaxAccountNumber {
		return fmt.Errorf("%w: account number must be between %d and %d",
			models.ErrInvalidArgument, MinAccountNumber, MaxAccountNumber)
	}
	return nil
}

// ValidateStatementCount checks that at least one transaction is requested
func ValidateStatementCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: statement count must be at least 1", models.ErrInvalidArgument)
	}
	return nil
}
