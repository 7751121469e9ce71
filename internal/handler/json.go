package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/afkcodes/storefront/internal/domain"
)

// Response is the JSON envelope every endpoint uses.
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Retryable tells the client it may usefully offer a retry affordance.
	Retryable bool `json:"retryable,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a 200 response with the data envelope.
func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Response{Data: data})
}

// WriteError maps a domain error to an HTTP status and writes the error
// envelope. Internal details are logged, never shown.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)

	if code == domain.EINTERNAL || code == domain.EUNAVAILABLE {
		logger.Error("request failed", "code", code, "error", err)
	}

	WriteJSON(w, statusForCode(code), Response{
		Error: &ErrorBody{
			Code:      code,
			Message:   domain.ErrorMessage(err),
			Retryable: code == domain.EUNAVAILABLE,
		},
	})
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
