package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/benx421/bank-ledger/internal/api"
	"github.com/benx421/bank-ledger/internal/service"
)

const maxBodyBytes = 1 << 20

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeInsufficientFunds:
		return api.ErrorCodeInsufficientFunds
	case service.ErrCodeMinimumBalance:
		return api.ErrorCodeMinimumBalance
	case service.ErrCodeDailyLimitExceeded:
		return api.ErrorCodeDailyLimitExceeded
	case service.ErrCodeInvalidIFSC:
		return api.ErrorCodeInvalidIfsc
	case service.ErrCodeDuplicateAccount:
		return api.ErrorCodeDuplicateAccount
	case service.ErrCodeAccountNotFound:
		return api.ErrorCodeAccountNotFound
	case service.ErrCodeInvalidArgument:
		return api.ErrorCodeInvalidArgument
	case service.ErrCodeCreditsBlocked:
		return api.ErrorCodeCreditsBlocked
	case service.ErrCodeAccountNotEmpty:
		return api.ErrorCodeAccountNotEmpty
	case service.ErrCodeCriticalInconsistency:
		return api.ErrorCodeCriticalInconsistency
	default:
		return api.ErrorCodeInternalError
	}
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidAmount, service.ErrCodeInvalidIFSC, service.ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case service.ErrCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case service.ErrCodeMinimumBalance, service.ErrCodeDailyLimitExceeded, service.ErrCodeCreditsBlocked:
		return http.StatusUnprocessableEntity
	case service.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case service.ErrCodeDuplicateAccount, service.ErrCodeAccountNotEmpty:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func errorBody(err error) *api.Error {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		return &api.Error{Error: api.ErrorCodeInternalError, Message: "internal server error"}
	}
	return &api.Error{Error: mapServiceErrorToCode(svcErr.Code), Message: svcErr.Error()}
}

// handleServiceError maps service errors to appropriate HTTP responses.
// Anything without a client-facing code is logged and hidden behind 500.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.ErrorContext(r.Context(), "unexpected error", "operation", operation, "error", err)
		writeError(w, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal server error")
		return
	}

	status := statusForCode(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "operation failed",
			"operation", operation,
			"code", svcErr.Code,
			"error", svcErr,
		)
	}
	writeError(w, status, mapServiceErrorToCode(svcErr.Code), svcErr.Error())
}

// handleParamError answers requests whose path or query parameters cannot be bound.
func (h *Handler) handleParamError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Nothing useful to do if encoding fails
}

func writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	writeJSON(w, status, api.Error{Error: code, Message: message})
}
