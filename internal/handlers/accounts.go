package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
	"github.com/benx421/bank-ledger/internal/statement"
)

// CreateDeposit handles POST /api/v1/customers/{customerId}/deposits
func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request, customerID int64) {
	var body api.AmountRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	txn, err := h.accounts.Deposit(r.Context(), customerID, body.Amount)
	if err != nil {
		h.handleServiceError(w, r, "deposit", err)
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}

// CreateWithdrawal handles POST /api/v1/customers/{customerId}/withdrawals
func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request, customerID int64) {
	var body api.AmountRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	txn, err := h.accounts.Withdraw(r.Context(), customerID, body.Amount)
	if err != nil {
		h.handleServiceError(w, r, "withdraw", err)
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}

// GetStatement handles GET /api/v1/customers/{customerId}/statement
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request, customerID int64, params api.StatementParams) {
	stmt, err := h.accounts.Statement(r.Context(), customerID, h.statementCount(params))
	if err != nil {
		h.handleServiceError(w, r, "statement", err)
		return
	}

	writeJSON(w, http.StatusOK, stmt)
}

// ExportStatement handles GET /api/v1/customers/{customerId}/statement/export
func (h *Handler) ExportStatement(w http.ResponseWriter, r *http.Request, customerID int64, params api.StatementParams) {
	stmt, err := h.accounts.Statement(r.Context(), customerID, h.statementCount(params))
	if err != nil {
		h.handleServiceError(w, r, "export statement", err)
		return
	}

	var buf bytes.Buffer
	if err := statement.WriteXLSX(&buf, stmt.Customer, stmt.Transactions); err != nil {
		h.handleServiceError(w, r, "export statement", err)
		return
	}

	filename := statement.Filename(stmt.Customer.Account.Number, stmt.GeneratedAt)
	w.Header().Set("Content-Type", statement.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w) //nolint:errcheck // client went away
}

func (h *Handler) statementCount(params api.StatementParams) int {
	if params.Count == nil {
		return h.defaultStatement
	}
	return *params.Count
}

// SetCreditBlock handles PUT /api/v1/customers/{customerId}/credit-block
func (h *Handler) SetCreditBlock(w http.ResponseWriter, r *http.Request, customerID int64) {
	var body api.CreditBlockRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	customer, err := h.accounts.SetCreditBlock(r.Context(), customerID, body.Blocked)
	if err != nil {
		h.handleServiceError(w, r, "set credit block", err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}
