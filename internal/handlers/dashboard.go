package handlers

import (
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
)

// GetDashboard handles GET /api/v1/dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "dashboard", err)
		return
	}

	writeJSON(w, http.StatusOK, api.DashboardResponse{
		CustomerCount:        summary.CustomerCount,
		TotalBalance:         summary.TotalBalance,
		AverageBalance:       summary.AverageBalance,
		HighBalanceThreshold: summary.HighBalanceLimit,
		HighBalanceCount:     summary.HighBalanceCount,
		TopCustomer:          summary.TopCustomer,
	})
}
