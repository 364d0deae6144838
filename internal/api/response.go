package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/mlenz/cellgraph/pkg/errors"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps the error's code to an HTTP status and writes the
// standard error envelope. Errors without a code map to 500.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	writeJSON(w, statusFor(code), errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(code),
	})
}

func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidCell, apperrors.ErrCodeInvalidGraph:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeCellNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
