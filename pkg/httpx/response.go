// Package httpx provides small helpers for JSON request/response handling
// shared by all HTTP handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/mailflow/pkg/validator"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes err as a JSON error response, mapping the error type to an
// HTTP status code: ValidationErrors → 422 with field detail, HTTPError →
// its own code, ErrInvalidBody → 400, anything else → 500.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := ErrorResponse{Message: err.Error()}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		status = http.StatusUnprocessableEntity
		body.Errors = verrs.ToMap()
	} else if httpErr := (HTTPError{}); errors.As(err, &httpErr) {
		status = httpErr.Code
		body.Message = http.StatusText(httpErr.Code)
	} else if errors.Is(err, ErrInvalidBody) {
		status = http.StatusBadRequest
	}

	JSON(w, status, body)
}
