package http_common

import (
	"net/http"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

type ErrorResponse struct {
	Message string          `json:"message"`
	Code    model.ErrorCode `json:"code,omitempty"`
}

// StatusOf maps domain errors onto HTTP statuses.
func StatusOf(err error) int {
	switch model.CodeOf(err) {
	case model.CodeNotFound:
		return http.StatusNotFound
	case model.CodeInvalidState, model.CodeConflict:
		return http.StatusConflict
	case model.CodeForbidden:
		return http.StatusForbidden
	case model.CodeLimitExceeded:
		return http.StatusUnprocessableEntity
	case model.CodeInvalidInput:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NewErrorResponse hides internal failure details from the client.
func NewErrorResponse(err error) ErrorResponse {
	code := model.CodeOf(err)
	if code == model.CodeInternal {
		return ErrorResponse{Message: "internal error", Code: code}
	}
	return ErrorResponse{Message: err.Error(), Code: code}
}
