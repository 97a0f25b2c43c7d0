package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
	"github.com/benx421/bank-ledger/internal/config"
	"github.com/benx421/bank-ledger/internal/middleware"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/benx421/bank-ledger/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	store *repository.Store,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	customerService := service.NewCustomerService(store, cfg.Ledger.Rules())
	accountService := service.NewAccountService(store, cfg.Ledger.MaxStatement)
	transferService := service.NewTransferService(store, logger)
	interestService := service.NewInterestService(store, logger)
	dashboardService := service.NewDashboardService(store, cfg.Ledger.HighBalanceThreshold)

	handler := NewHandler(
		customerService,
		accountService,
		transferService,
		interestService,
		dashboardService,
		store,
		cfg.Ledger.DefaultStatement,
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerFromMux(handler, mux, handler.handleParamError)

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := middleware.RequestValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("request validator: %w", err)
	}

	var finalHandler http.Handler = mux

	finalHandler = validator(finalHandler)

	idempotencyRepo := repository.NewIdempotencyRepository(cfg.Ledger.IdempotencyTTL)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler, nil
}
