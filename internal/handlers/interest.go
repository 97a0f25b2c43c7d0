package handlers

import (
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
)

// GetInterest handles GET /api/v1/customers/{customerId}/interest
func (h *Handler) GetInterest(w http.ResponseWriter, r *http.Request, customerID int64) {
	interest, err := h.accounts.InterestQuote(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, r, "interest quote", err)
		return
	}

	writeJSON(w, http.StatusOK, api.InterestResponse{CustomerID: customerID, Interest: interest})
}

// ApplyInterest handles POST /api/v1/customers/{customerId}/interest
func (h *Handler) ApplyInterest(w http.ResponseWriter, r *http.Request, customerID int64) {
	interest, err := h.accounts.ApplyInterest(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, r, "apply interest", err)
		return
	}

	writeJSON(w, http.StatusOK, api.InterestResponse{CustomerID: customerID, Interest: interest, Applied: true})
}

// CreateInterestAccrual handles POST /api/v1/interest-accruals
func (h *Handler) CreateInterestAccrual(w http.ResponseWriter, r *http.Request) {
	results, err := h.interest.AccrueAll(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "accrue interest", err)
		return
	}

	resp := api.AccrualResponse{Results: make([]api.AccrualResult, 0, len(results))}
	for _, result := range results {
		entry := api.AccrualResult{
			CustomerID:    result.CustomerID,
			AccountNumber: result.AccountNumber,
			Interest:      result.Interest,
		}
		switch {
		case result.Err != nil:
			entry.Error = errorBody(result.Err)
			resp.Failed++
		case result.Interest.IsPositive():
			resp.Credited++
		}
		resp.Results = append(resp.Results, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}
