package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkovs/puzzletrack/internal/errs"
)

// Wire error codes of the action contract.
const (
	codeUnauthorized    = "UNAUTHORIZED"
	codeNotFound        = "NOT_FOUND"
	codeForbidden       = "FORBIDDEN"
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeInternal        = "INTERNAL"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeData writes the uniform success envelope.
func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeError writes the uniform failure envelope with the status matching
// the wire code.
func writeError(w http.ResponseWriter, code, message string) {
	writeJSON(w, httpStatus(code), envelope{Success: false, Error: &apiError{Code: code, Message: message}})
}

func httpStatus(code string) int {
	switch code {
	case codeUnauthorized:
		return http.StatusUnauthorized
	case codeNotFound:
		return http.StatusNotFound
	case codeForbidden:
		return http.StatusForbidden
	case codeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError maps service sentinels onto wire codes; anything else
// is logged and reported as internal.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		writeError(w, codeUnauthorized, "authentication required")
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, codeNotFound, "not found")
	case errors.Is(err, errs.ErrForbidden):
		writeError(w, codeForbidden, "forbidden")
	case errors.Is(err, errs.ErrInvalidInput):
		writeError(w, codeInvalidArgument, err.Error())
	default:
		log.Error(op, zap.Error(err))
		writeError(w, codeInternal, "internal error")
	}
}
