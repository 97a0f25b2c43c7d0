package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benx421/bank-ledger/internal/api"
)

const healthTimeout = 2 * time.Second

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.ErrorContext(r.Context(), "health check failed: ledger unreachable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: api.Unhealthy})
		return
	}

	writeJSON(w, http.StatusOK, api.HealthResponse{Status: api.Healthy})
}
