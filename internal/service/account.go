package service

import (
	"context"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// AccountService handles postings and queries against a single account
type AccountService struct {
	store        *repository.Store
	now          func() time.Time
	maxStatement int
}

// NewAccountService creates a new AccountService. Statements are capped at
// maxStatement transactions.
func NewAccountService(store *repository.Store, maxStatement int) *AccountService {
	return &AccountService{
		store:        store,
		maxStatement: maxStatement,
		now:          time.Now,
	}
}

// Deposit credits amount to the customer's account
func (s *AccountService) Deposit(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error) {
	return s.post(customerID, amount, "deposit failed", (*models.Account).Deposit)
}

// Withdraw debits amount from the customer's account
func (s *AccountService) Withdraw(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error) {
	return s.post(customerID, amount, "withdrawal failed", (*models.Account).Withdraw)
}

func (s *AccountService) post(
	customerID int64,
	amount decimal.Decimal,
	failure string,
	apply func(*models.Account, decimal.Decimal) (models.Transaction, error),
) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, wrapError("invalid amount", err)
	}

	var txn models.Transaction
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		customer, err := repo.FindByID(customerID)
		if err != nil {
			return wrapError("customer not found", err)
		}

		txn, err = apply(customer.Account(), amount)
		if err != nil {
			return wrapError(failure, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Balance returns the current balance
func (s *AccountService) Balance(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.view(customerID, func(customer *models.Customer) error {
		balance = customer.Account().Balance()
		return nil
	})
	return balance, err
}

// Statement returns the last count transactions, oldest first. count is
// clamped to the configured maximum.
func (s *AccountService) Statement(ctx context.Context, customerID int64, count int) (*models.Statement, error) {
	if err := ValidateStatementCount(count); err != nil {
		return nil, wrapError("invalid statement request", err)
	}
	if s.maxStatement > 0 {
		count = min(count, s.maxStatement)
	}

	var statement *models.Statement
	err := s.view(customerID, func(customer *models.Customer) error {
		statement = &models.Statement{
			GeneratedAt:  s.now(),
			Customer:     customer.Snapshot(),
			Transactions: customer.Account().Statement(count),
		}
		return nil
	})
	return statement, err
}

// InterestQuote returns the month's interest without crediting it
func (s *AccountService) InterestQuote(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var interest decimal.Decimal
	err := s.view(customerID, func(customer *models.Customer) error {
		interest = customer.Account().CalculateInterest()
		return nil
	})
	return interest, err
}

// ApplyInterest credits the month's interest and returns it
func (s *AccountService) ApplyInterest(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var interest decimal.Decimal
	err := s.update(customerID, func(customer *models.Customer) error {
		var err error
		interest, err = customer.Account().AddInterestToBalance()
		if err != nil {
			return wrapError("failed to credit interest", err)
		}
		return nil
	})
	return interest, err
}

// SetCreditBlock blocks or unblocks credits to the customer's account
func (s *AccountService) SetCreditBlock(ctx context.Context, customerID int64, blocked bool) (models.CustomerSnapshot, error) {
	var snapshot models.CustomerSnapshot
	err := s.update(customerID, func(customer *models.Customer) error {
		if blocked {
			customer.Account().BlockCredits()
		} else {
			customer.Account().UnblockCredits()
		}
		snapshot = customer.Snapshot()
		return nil
	})
	return snapshot, err
}

func (s *AccountService) view(customerID int64, fn func(*models.Customer) error) error {
	return s.store.View(func(repo repository.CustomerRepository) error {
		return withCustomer(repo, customerID, fn)
	})
}

func (s *AccountService) update(customerID int64, fn func(*models.Customer) error) error {
	return s.store.Update(func(repo repository.CustomerRepository) error {
		return withCustomer(repo, customerID, fn)
	})
}

func withCustomer(repo repository.CustomerRepository, customerID int64, fn func(*models.Customer) error) error {
	customer, err := repo.FindByID(customerID)
	if err != nil {
		return wrapError("customer not found", err)
	}
	return fn(customer)
}
