package service

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Summary aggregates balances across the directory
type Summary struct {
	TopCustomer      *models.CustomerSnapshot
	TotalBalance     decimal.Decimal
	AverageBalance   decimal.Decimal
	HighBalanceLimit decimal.Decimal
	CustomerCount    int
	HighBalanceCount int
}

// DashboardService reports ledger-wide figures
type DashboardService struct {
	store     *repository.Store
	threshold decimal.Decimal
}

// NewDashboardService creates a new DashboardService. Accounts holding more
// than threshold count as high balance.
func NewDashboardService(store *repository.Store, threshold decimal.Decimal) *DashboardService {
	return &DashboardService{
		store:     store,
		threshold: threshold,
	}
}

// Summary returns the current dashboard figures
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	var summary *Summary
	err := s.store.View(func(repo repository.CustomerRepository) error {
		summary = s.summarize(repo.All())
		return nil
	})
	return summary, err
}

func (s *DashboardService) summarize(customers []*models.Customer) *Summary {
	summary := &Summary{
		CustomerCount:    len(customers),
		TotalBalance:     decimal.Zero,
		AverageBalance:   decimal.Zero,
		HighBalanceLimit: s.threshold,
	}

	var top *models.Customer
	for _, c := range customers {
		balance := c.Account().Balance()
		summary.TotalBalance = summary.TotalBalance.Add(balance)
		if balance.GreaterThan(s.threshold) {
			summary.HighBalanceCount++
		}
		if top == nil || balance.GreaterThan(top.Account().Balance()) {
			top = c
		}
	}

	if top != nil {
		snapshot := top.Snapshot()
		summary.TopCustomer = &snapshot
		summary.AverageBalance = summary.TotalBalance.Div(decimal.NewFromInt(int64(len(customers)))).Round(2)
	}
	return summary
}
