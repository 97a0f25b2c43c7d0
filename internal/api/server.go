package api

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/customers)
	ListCustomers(w http.ResponseWriter, r *http.Request, params ListCustomersParams)
	// (POST /api/v1/customers)
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/customers/{customerId})
	GetCustomer(w http.ResponseWriter, r *http.Request, customerID int64)
	// (PATCH /api/v1/customers/{customerId})
	UpdateCustomer(w http.ResponseWriter, r *http.Request, customerID int64)
	// (DELETE /api/v1/customers/{customerId})
	DeleteCustomer(w http.ResponseWriter, r *http.Request, customerID int64)
	// (POST /api/v1/customers/{customerId}/deposits)
	CreateDeposit(w http.ResponseWriter, r *http.Request, customerID int64)
	// (POST /api/v1/customers/{customerId}/withdrawals)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request, customerID int64)
	// (GET /api/v1/customers/{customerId}/statement)
	GetStatement(w http.ResponseWriter, r *http.Request, customerID int64, params StatementParams)
	// (GET /api/v1/customers/{customerId}/statement/export)
	ExportStatement(w http.ResponseWriter, r *http.Request, customerID int64, params StatementParams)
	// (GET /api/v1/customers/{customerId}/interest)
	GetInterest(w http.ResponseWriter, r *http.Request, customerID int64)
	// (POST /api/v1/customers/{customerId}/interest)
	ApplyInterest(w http.ResponseWriter, r *http.Request, customerID int64)
	// (PUT /api/v1/customers/{customerId}/credit-block)
	SetCreditBlock(w http.ResponseWriter, r *http.Request, customerID int64)
	// (POST /api/v1/transfers)
	CreateTransfer(w http.ResponseWriter, r *http.Request)
	// (POST /api/v1/interest-accruals)
	CreateInterestAccrual(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/dashboard)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError is passed to the error handler when a path or
// query parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts HTTP requests to typed handler calls.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// ListCustomers operation middleware
func (siw *ServerInterfaceWrapper) ListCustomers(w http.ResponseWriter, r *http.Request) {
	var params ListCustomersParams

	if err := runtime.BindQueryParameter("form", true, false, "name", r.URL.Query(), &params.Name); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "name", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "account_number", r.URL.Query(), &params.AccountNumber); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "account_number", Err: err})
		return
	}

	siw.Handler.ListCustomers(w, r, params)
}

// GetStatement operation middleware
func (siw *ServerInterfaceWrapper) GetStatement(w http.ResponseWriter, r *http.Request) {
	customerID, params, ok := siw.bindStatement(w, r)
	if !ok {
		return
	}
	siw.Handler.GetStatement(w, r, customerID, params)
}

// ExportStatement operation middleware
func (siw *ServerInterfaceWrapper) ExportStatement(w http.ResponseWriter, r *http.Request) {
	customerID, params, ok := siw.bindStatement(w, r)
	if !ok {
		return
	}
	siw.Handler.ExportStatement(w, r, customerID, params)
}

func (siw *ServerInterfaceWrapper) bindStatement(w http.ResponseWriter, r *http.Request) (int64, StatementParams, bool) {
	var params StatementParams

	customerID, ok := siw.bindCustomerID(w, r)
	if !ok {
		return 0, params, false
	}

	if err := runtime.BindQueryParameter("form", true, false, "count", r.URL.Query(), &params.Count); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "count", Err: err})
		return 0, params, false
	}
	return customerID, params, true
}

// withCustomerID adapts a handler taking the customerId path parameter.
func (siw *ServerInterfaceWrapper) withCustomerID(fn func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := siw.bindCustomerID(w, r)
		if !ok {
			return
		}
		fn(w, r, customerID)
	}
}

func (siw *ServerInterfaceWrapper) bindCustomerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var customerID int64

	err := runtime.BindStyledParameterWithOptions("simple", "customerId", r.PathValue("customerId"), &customerID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "customerId", Err: err})
		return 0, false
	}
	return customerID, true
}

// HandlerFromMux registers every operation of si on m.
func HandlerFromMux(si ServerInterface, m *http.ServeMux, errorHandler func(w http.ResponseWriter, r *http.Request, err error)) http.Handler {
	if errorHandler == nil {
		errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: errorHandler,
	}

	m.HandleFunc("GET /health", si.GetHealth)
	m.HandleFunc("GET /api/v1/customers", wrapper.ListCustomers)
	m.HandleFunc("POST /api/v1/customers", si.CreateCustomer)
	m.HandleFunc("GET /api/v1/customers/{customerId}", wrapper.withCustomerID(si.GetCustomer))
	m.HandleFunc("PATCH /api/v1/customers/{customerId}", wrapper.withCustomerID(si.UpdateCustomer))
	m.HandleFunc("DELETE /api/v1/customers/{customerId}", wrapper.withCustomerID(si.DeleteCustomer))
	m.HandleFunc("POST /api/v1/customers/{customerId}/deposits", wrapper.withCustomerID(si.CreateDeposit))
	m.HandleFunc("POST /api/v1/customers/{customerId}/withdrawals", wrapper.withCustomerID(si.CreateWithdrawal))
	m.HandleFunc("GET /api/v1/customers/{customerId}/statement", wrapper.GetStatement)
	m.HandleFunc("GET /api/v1/customers/{customerId}/statement/export", wrapper.ExportStatement)
	m.HandleFunc("GET /api/v1/customers/{customerId}/interest", wrapper.withCustomerID(si.GetInterest))
	m.HandleFunc("POST /api/v1/customers/{customerId}/interest", wrapper.withCustomerID(si.ApplyInterest))
	m.HandleFunc("PUT /api/v1/customers/{customerId}/credit-block", wrapper.withCustomerID(si.SetCreditBlock))
	m.HandleFunc("POST /api/v1/transfers", si.CreateTransfer)
	m.HandleFunc("POST /api/v1/interest-accruals", si.CreateInterestAccrual)
	m.HandleFunc("GET /api/v1/dashboard", si.GetDashboard)

	return m
}
