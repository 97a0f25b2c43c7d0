package api

import (
	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ErrorCode is the machine readable error in an Error body
type ErrorCode string

// Defines values for ErrorCode.
const (
	ErrorCodeInvalidRequest        ErrorCode = "invalid_request"
	ErrorCodeInvalidAmount         ErrorCode = "invalid_amount"
	ErrorCodeInsufficientFunds     ErrorCode = "insufficient_funds"
	ErrorCodeMinimumBalance        ErrorCode = "minimum_balance_violation"
	ErrorCodeDailyLimitExceeded    ErrorCode = "daily_limit_exceeded"
	ErrorCodeInvalidIfsc           ErrorCode = "invalid_ifsc"
	ErrorCodeDuplicateAccount      ErrorCode = "duplicate_account"
	ErrorCodeAccountNotFound       ErrorCode = "account_not_found"
	ErrorCodeInvalidArgument       ErrorCode = "invalid_argument"
	ErrorCodeCreditsBlocked        ErrorCode = "credits_blocked"
	ErrorCodeAccountNotEmpty       ErrorCode = "account_not_empty"
	ErrorCodeNotFound              ErrorCode = "not_found"
	ErrorCodeCriticalInconsistency ErrorCode = "critical_inconsistency"
	ErrorCodeInternalError         ErrorCode = "internal_error"
)

// HealthStatus reports whether the ledger is reachable
type HealthStatus string

// Defines values for HealthStatus.
const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// Error defines model for Error.
type Error struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status HealthStatus `json:"status"`
}

// Address defines model for Address.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode int    `json:"pin_code"`
}

// CreateCustomerRequest defines model for CreateCustomerRequest.
type CreateCustomerRequest struct {
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	CompanyName    *string          `json:"company_name,omitempty"`
	Address        *Address         `json:"address,omitempty"`
	Name           string           `json:"name"`
	Ifsc           string           `json:"ifsc"`
	AccountType    string           `json:"account_type"`
	InitialBalance decimal.Decimal  `json:"initial_balance"`
	CustomerID     int64            `json:"customer_id"`
	AccountNumber  int64            `json:"account_number"`
}

// UpdateCustomerRequest defines model for UpdateCustomerRequest.
type UpdateCustomerRequest struct {
	Name    *string  `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// AmountRequest defines model for AmountRequest.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreditBlockRequest defines model for CreditBlockRequest.
type CreditBlockRequest struct {
	Blocked bool `json:"blocked"`
}

// TransferRequest defines model for TransferRequest.
type TransferRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	FromCustomerID int64           `json:"from_customer_id"`
	ToCustomerID   int64           `json:"to_customer_id"`
}

// CustomerList defines model for CustomerList.
type CustomerList struct {
	Customers []models.CustomerSnapshot `json:"customers"`
	Count     int                       `json:"count"`
}

// InterestResponse defines model for InterestResponse.
type InterestResponse struct {
	Interest   decimal.Decimal `json:"interest"`
	CustomerID int64           `json:"customer_id"`
	Applied    bool            `json:"applied"`
}

// AccrualResult defines model for AccrualResult.
type AccrualResult struct {
	Error         *Error          `json:"error,omitempty"`
	Interest      decimal.Decimal `json:"interest"`
	CustomerID    int64           `json:"customer_id"`
	AccountNumber int64           `json:"account_number"`
}

// AccrualResponse defines model for AccrualResponse.
type AccrualResponse struct {
	Results  []AccrualResult `json:"results"`
	Credited int             `json:"credited"`
	Failed   int             `json:"failed"`
}

// DashboardResponse defines model for DashboardResponse.
type DashboardResponse struct {
	TopCustomer          *models.CustomerSnapshot `json:"top_customer,omitempty"`
	TotalBalance         decimal.Decimal          `json:"total_balance"`
	AverageBalance       decimal.Decimal          `json:"average_balance"`
	HighBalanceThreshold decimal.Decimal          `json:"high_balance_threshold"`
	CustomerCount        int                      `json:"customer_count"`
	HighBalanceCount     int                      `json:"high_balance_count"`
}

// ListCustomersParams defines parameters for ListCustomers.
type ListCustomersParams struct {
	Name          *string `form:"name,omitempty" json:"name,omitempty"`
	AccountNumber *int64  `form:"account_number,omitempty" json:"account_number,omitempty"`
}

// StatementParams defines parameters for GetStatement and ExportStatement.
type StatementParams struct {
	Count *int `form:"count,omitempty" json:"count,omitempty"`
}

// Response bodies that are the ledger's own snapshots
type (
	Customer    = models.CustomerSnapshot
	Transaction = models.Transaction
	Statement   = models.Statement
	Transfer    = models.Transfer
)

