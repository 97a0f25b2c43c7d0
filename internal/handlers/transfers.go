package handlers

import (
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
)

// CreateTransfer handles POST /api/v1/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var body api.TransferRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	transfer, err := h.transfers.Transfer(r.Context(), body.FromCustomerID, body.ToCustomerID, body.Amount)
	if err != nil {
		h.handleServiceError(w, r, "transfer", err)
		return
	}

	writeJSON(w, http.StatusCreated, transfer)
}
