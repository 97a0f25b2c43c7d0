package handlers

import (
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/service"
	"github.com/shopspring/decimal"
)

// CreateCustomer handles POST /api/v1/customers
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCustomerRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	req := service.OpenAccountRequest{
		CustomerID:     body.CustomerID,
		Name:           body.Name,
		AccountNumber:  body.AccountNumber,
		IFSC:           body.Ifsc,
		Type:           models.AccountType(body.AccountType),
		InitialBalance: body.InitialBalance,
		InterestRate:   decimal.Zero,
	}
	if body.InterestRate != nil {
		req.InterestRate = *body.InterestRate
	}
	if body.CompanyName != nil {
		req.CompanyName = *body.CompanyName
	}
	if body.Address != nil {
		req.City = body.Address.City
		req.State = body.Address.State
		req.PinCode = body.Address.PinCode
	}

	customer, err := h.customers.Open(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, "open account", err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// ListCustomers handles GET /api/v1/customers
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request, params api.ListCustomersParams) {
	var (
		customers []models.CustomerSnapshot
		err       error
	)

	switch {
	case params.AccountNumber != nil:
		var customer models.CustomerSnapshot
		customer, err = h.customers.FindByAccountNumber(r.Context(), *params.AccountNumber)
		if err == nil {
			customers = []models.CustomerSnapshot{customer}
		} else if svcErr := extractServiceError(err); svcErr != nil && svcErr.Code == service.ErrCodeAccountNotFound {
			customers, err = []models.CustomerSnapshot{}, nil
		}
	case params.Name != nil:
		customers, err = h.customers.Search(r.Context(), *params.Name)
	default:
		customers, err = h.customers.List(r.Context())
	}
	if err != nil {
		h.handleServiceError(w, r, "list customers", err)
		return
	}

	if customers == nil {
		customers = []models.CustomerSnapshot{}
	}
	writeJSON(w, http.StatusOK, api.CustomerList{Customers: customers, Count: len(customers)})
}

// GetCustomer handles GET /api/v1/customers/{customerId}
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request, customerID int64) {
	customer, err := h.customers.Get(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, r, "get customer", err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PATCH /api/v1/customers/{customerId}
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request, customerID int64) {
	var body api.UpdateCustomerRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	update := service.ProfileUpdate{Name: body.Name}
	if body.Address != nil {
		address := models.NewAddress(body.Address.City, body.Address.State, body.Address.PinCode)
		update.Address = &address
	}

	customer, err := h.customers.UpdateProfile(r.Context(), customerID, update)
	if err != nil {
		h.handleServiceError(w, r, "update customer", err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/{customerId}
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request, customerID int64) {
	deleted, err := h.customers.Close(r.Context(), customerID)
	if err != nil {
		h.handleServiceError(w, r, "close account", err)
		return
	}

	if !deleted {
		writeError(w, http.StatusConflict, api.ErrorCodeAccountNotEmpty, "account balance must be zero before closing")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
