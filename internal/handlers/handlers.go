// Package handlers implements HTTP handlers for the ledger API.
package handlers

import (
	"log/slog"

	"github.com/benx421/bank-ledger/internal/api"
	"github.com/benx421/bank-ledger/internal/service"
)

// Handler implements api.ServerInterface for all endpoints
type Handler struct {
	customers        service.CustomerManager
	accounts         service.AccountOperator
	transfers        service.Transferer
	interest         service.InterestAccruer
	dashboard        service.DashboardReporter
	healthChecker    service.HealthChecker
	logger           *slog.Logger
	defaultStatement int
}

var _ api.ServerInterface = (*Handler)(nil)

// NewHandler creates a new Handler with injected service dependencies.
// Statements default to defaultStatement transactions when no count is given.
func NewHandler(
	customers service.CustomerManager,
	accounts service.AccountOperator,
	transfers service.Transferer,
	interest service.InterestAccruer,
	dashboard service.DashboardReporter,
	healthChecker service.HealthChecker,
	defaultStatement int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		customers:        customers,
		accounts:         accounts,
		transfers:        transfers,
		interest:         interest,
		dashboard:        dashboard,
		healthChecker:    healthChecker,
		defaultStatement: defaultStatement,
		logger:           logger,
	}
}
