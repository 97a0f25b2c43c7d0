package service

import (
	"context"
	"log/slog"

	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// AccrualResult is the outcome of crediting interest to one account
type AccrualResult struct {
	Err           error
	Interest      decimal.Decimal
	CustomerID    int64
	AccountNumber int64
}

// InterestService credits monthly interest across the directory
type InterestService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewInterestService creates a new InterestService
func NewInterestService(store *repository.Store, logger *slog.Logger) *InterestService {
	return &InterestService{
		store:  store,
		logger: logger,
	}
}

// AccrueAll credits interest to every account in directory order. A failing
// account is logged and skipped.
func (s *InterestService) AccrueAll(ctx context.Context) ([]AccrualResult, error) {
	var results []AccrualResult
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		results = s.performAccrual(ctx, repo)
		return nil
	})
	return results, err
}

func (s *InterestService) performAccrual(ctx context.Context, repo repository.CustomerRepository) []AccrualResult {
	customers := repo.All()
	results := make([]AccrualResult, 0, len(customers))

	for _, customer := range customers {
		account := customer.Account()
		interest, err := account.AddInterestToBalance()
		if err != nil {
			s.logger.WarnContext(ctx, "interest accrual failed",
				"customer_id", customer.ID(),
				"account_number", account.Number(),
				"error", err,
			)
			err = wrapError("interest accrual failed", err)
		}

		results = append(results, AccrualResult{
			CustomerID:    customer.ID(),
			AccountNumber: account.Number(),
			Interest:      interest,
			Err:           err,
		})
	}
	return results
}
