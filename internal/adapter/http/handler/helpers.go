package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/acmebank/account-manager/internal/adapter/http/dto"
	"github.com/acmebank/account-manager/internal/domain"
)

// codeValidationFailed is the wire code for boundary validation failures,
// which carry no domain error code.
const codeValidationFailed = 400

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a coded error response.
func writeError(w http.ResponseWriter, status, code int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Code: code, Msg: msg})
}

// writeValidationError writes a per-field validation failure response.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
		Code:   codeValidationFailed,
		Msg:    "Invalid request!",
		Fields: fields,
	})
}

// writeDomainError renders a domain failure as {code,msg}. Every coded
// domain error maps to HTTP 400; callers distinguish them by code, with
// 9999 marking a retryable condition.
func writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		writeError(w, http.StatusBadRequest, int(domainErr.Code), domainErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		writeError(w, http.StatusNotFound, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, http.StatusInternalServerError, "internal server error")
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return i
}
