package service

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// CustomerManager handles customer registration and lookups
type CustomerManager interface {
	Open(ctx context.Context, req OpenAccountRequest) (models.CustomerSnapshot, error)
	Get(ctx context.Context, customerID int64) (models.CustomerSnapshot, error)
	List(ctx context.Context) ([]models.CustomerSnapshot, error)
	FindByAccountNumber(ctx context.Context, accountNumber int64) (models.CustomerSnapshot, error)
	Search(ctx context.Context, name string) ([]models.CustomerSnapshot, error)
	UpdateProfile(ctx context.Context, customerID int64, update ProfileUpdate) (models.CustomerSnapshot, error)
	Close(ctx context.Context, customerID int64) (bool, error)
}

// AccountOperator handles single-account postings and queries
type AccountOperator interface {
	Deposit(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error)
	Withdraw(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error)
	Balance(ctx context.Context, customerID int64) (decimal.Decimal, error)
	Statement(ctx context.Context, customerID int64, count int) (*models.Statement, error)
	InterestQuote(ctx context.Context, customerID int64) (decimal.Decimal, error)
	ApplyInterest(ctx context.Context, customerID int64) (decimal.Decimal, error)
	SetCreditBlock(ctx context.Context, customerID int64, blocked bool) (models.CustomerSnapshot, error)
}

// Transferer moves funds between two customers' accounts
type Transferer interface {
	Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*models.Transfer, error)
}

// InterestAccruer credits interest across the whole directory
type InterestAccruer interface {
	AccrueAll(ctx context.Context) ([]AccrualResult, error)
}

// DashboardReporter summarises the ledger
type DashboardReporter interface {
	Summary(ctx context.Context) (*Summary, error)
}

// Ensure concrete types implement interfaces
var (
	_ CustomerManager   = (*CustomerService)(nil)
	_ AccountOperator   = (*AccountService)(nil)
	_ Transferer        = (*TransferService)(nil)
	_ InterestAccruer   = (*InterestService)(nil)
	_ DashboardReporter = (*DashboardService)(nil)
)
