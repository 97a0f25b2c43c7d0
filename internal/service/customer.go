package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest describes a new customer and the account bound to them
type OpenAccountRequest struct {
	Name           string
	IFSC           string
	CompanyName    string
	City           string
	State          string
	Type           models.AccountType
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal
	CustomerID     int64
	AccountNumber  int64
	PinCode        int
}

// ProfileUpdate carries the customer fields to replace; nil fields are kept
type ProfileUpdate struct {
	Name    *string
	Address *models.Address
}

// CustomerService handles customer registration, lookup and closure
type CustomerService struct {
	store *repository.Store
	rules models.Rules
}

// NewCustomerService creates a new CustomerService. New accounts enforce rules.
func NewCustomerService(store *repository.Store, rules models.Rules) *CustomerService {
	return &CustomerService{
		store: store,
		rules: rules,
	}
}

// Open validates req, opens the account and registers the customer
func (s *CustomerService) Open(ctx context.Context, req OpenAccountRequest) (models.CustomerSnapshot, error) {
	if err := validateOpenRequest(req); err != nil {
		return models.CustomerSnapshot{}, wrapError("invalid account request", err)
	}

	var snapshot models.CustomerSnapshot
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		customer, err := s.performOpen(repo, req)
		if err != nil {
			return err
		}
		snapshot = customer.Snapshot()
		return nil
	})
	return snapshot, err
}

func validateOpenRequest(req OpenAccountRequest) error {
	if err := ValidateCustomerID(req.CustomerID); err != nil {
		return err
	}
	if err := ValidateAccountNumber(req.AccountNumber); err != nil {
		return err
	}
	if err := ValidateIFSC(req.IFSC); err != nil {
		return err
	}
	if req.InitialBalance.IsNegative() {
		return fmt.Errorf("%w: initial balance must not be negative", models.ErrInvalidAmount)
	}
	_, err := models.NormalizeName(req.Name)
	return err
}

// performOpen contains the core account opening logic
func (s *CustomerService) performOpen(repo repository.CustomerRepository, req OpenAccountRequest) (*models.Customer, error) {
	account, err := models.NewAccount(models.AccountParams{
		Number:         req.AccountNumber,
		IFSC:           req.IFSC,
		Type:           models.AccountType(strings.ToUpper(string(req.Type))),
		InitialBalance: req.InitialBalance,
		InterestRate:   req.InterestRate,
		CompanyName:    req.CompanyName,
	}, s.rules, repo.Sequence())
	if err != nil {
		return nil, wrapError("failed to open account", err)
	}

	customer, err := models.NewCustomer(req.CustomerID, req.Name, account,
		models.NewAddress(req.City, req.State, req.PinCode))
	if err != nil {
		return nil, wrapError("failed to register customer", err)
	}

	if err := repo.Add(customer); err != nil {
		return nil, wrapError("failed to register customer", err)
	}
	return customer, nil
}

// Get returns a customer by id
func (s *CustomerService) Get(ctx context.Context, customerID int64) (models.CustomerSnapshot, error) {
	var snapshot models.CustomerSnapshot
	err := s.store.View(func(repo repository.CustomerRepository) error {
		customer, err := repo.FindByID(customerID)
		if err != nil {
			return wrapError("customer not found", err)
		}
		snapshot = customer.Snapshot()
		return nil
	})
	return snapshot, err
}

// List returns every customer in directory order
func (s *CustomerService) List(ctx context.Context) ([]models.CustomerSnapshot, error) {
	var snapshots []models.CustomerSnapshot
	err := s.store.View(func(repo repository.CustomerRepository) error {
		snapshots = snapshotAll(repo.All())
		return nil
	})
	return snapshots, err
}

// FindByAccountNumber returns the customer owning an account number
func (s *CustomerService) FindByAccountNumber(ctx context.Context, accountNumber int64) (models.CustomerSnapshot, error) {
	if err := ValidateAccountNumber(accountNumber); err != nil {
		return models.CustomerSnapshot{}, wrapError("invalid account number", err)
	}

	var snapshot models.CustomerSnapshot
	err := s.store.View(func(repo repository.CustomerRepository) error {
		customer, err := repo.FindByAccountNumber(accountNumber)
		if err != nil {
			return wrapError("account not found", err)
		}
		snapshot = customer.Snapshot()
		return nil
	})
	return snapshot, err
}

// Search returns customers whose name contains name, ignoring case
func (s *CustomerService) Search(ctx context.Context, name string) ([]models.CustomerSnapshot, error) {
	var snapshots []models.CustomerSnapshot
	err := s.store.View(func(repo repository.CustomerRepository) error {
		snapshots = snapshotAll(repo.SearchByName(name))
		return nil
	})
	return snapshots, err
}

// UpdateProfile replaces a customer's name and/or address
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID int64, update ProfileUpdate) (models.CustomerSnapshot, error) {
	var snapshot models.CustomerSnapshot
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		customer, err := s.performUpdateProfile(repo, customerID, update)
		if err != nil {
			return err
		}
		snapshot = customer.Snapshot()
		return nil
	})
	return snapshot, err
}

// performUpdateProfile validates every field before touching the customer
func (s *CustomerService) performUpdateProfile(repo repository.CustomerRepository, customerID int64, update ProfileUpdate) (*models.Customer, error) {
	if update.Name == nil && update.Address == nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidArgument,
			Message: "nothing to update",
		}
	}

	customer, err := repo.FindByID(customerID)
	if err != nil {
		return nil, wrapError("customer not found", err)
	}

	var name string
	if update.Name != nil {
		if name, err = models.NormalizeName(*update.Name); err != nil {
			return nil, wrapError("invalid name", err)
		}
	}
	if update.Address != nil && *update.Address == (models.Address{}) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidArgument,
			Message: "address required",
			Err:     models.ErrInvalidArgument,
		}
	}

	if update.Name != nil {
		if err := customer.SetName(name); err != nil {
			return nil, wrapError("invalid name", err)
		}
	}
	if update.Address != nil {
		if err := customer.SetAddress(*update.Address); err != nil {
			return nil, wrapError("invalid address", err)
		}
	}

	if err := repo.Update(customer); err != nil {
		return nil, wrapError("failed to update customer", err)
	}
	return customer, nil
}

// Close removes a customer whose account is empty. It reports false without
// an error when the account still holds funds.
func (s *CustomerService) Close(ctx context.Context, customerID int64) (bool, error) {
	var deleted bool
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		var err error
		deleted, err = repo.Delete(customerID)
		if err != nil {
			return wrapError("customer not found", err)
		}
		return nil
	})
	return deleted, err
}

func snapshotAll(customers []*models.Customer) []models.CustomerSnapshot {
	out := make([]models.CustomerSnapshot, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Snapshot())
	}
	return out
}
