package service

import (
	"errors"
	"fmt"

	"github.com/benx421/bank-ledger/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount         = "invalid_amount"
	ErrCodeInsufficientFunds     = "insufficient_funds"
	ErrCodeMinimumBalance        = "minimum_balance_violation"
	ErrCodeDailyLimitExceeded    = "daily_limit_exceeded"
	ErrCodeInvalidIFSC           = "invalid_ifsc"
	ErrCodeDuplicateAccount      = "duplicate_account"
	ErrCodeAccountNotFound       = "account_not_found"
	ErrCodeInvalidArgument       = "invalid_argument"
	ErrCodeCreditsBlocked        = "credits_blocked"
	ErrCodeAccountNotEmpty       = "account_not_empty"
	ErrCodeCriticalInconsistency = "critical_inconsistency"
	ErrCodeInternalError         = "internal_error"
)

// wrapError attaches the error code matching err's domain sentinel. Errors that
// already carry a code pass through unchanged.
func wrapError(message string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return &ServiceError{
		Code:    codeFor(err),
		Message: message,
		Err:     err,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return ErrCodeInvalidAmount
	case errors.Is(err, models.ErrInsufficientFunds):
		return ErrCodeInsufficientFunds
	case errors.Is(err, models.ErrMinimumBalance):
		return ErrCodeMinimumBalance
	case errors.Is(err, models.ErrDailyLimitExceeded):
		return ErrCodeDailyLimitExceeded
	case errors.Is(err, models.ErrInvalidIFSC):
		return ErrCodeInvalidIFSC
	case errors.Is(err, models.ErrDuplicateAccount):
		return ErrCodeDuplicateAccount
	case errors.Is(err, models.ErrNotFound):
		return ErrCodeAccountNotFound
	case errors.Is(err, models.ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, models.ErrCreditsBlocked):
		return ErrCodeCreditsBlocked
	default:
		return ErrCodeInternalError
	}
}
