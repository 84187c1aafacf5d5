package controller

import (
	"errors"
	"net/http"

	"github.com/evamed/evamed/internal/service"
)

// StatusFor maps the service failure taxonomy onto HTTP codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEvaluationNotFound),
		errors.Is(err, service.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrEmptyCatalog):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyCompleted),
		errors.Is(err, service.ErrOutOfOrder),
		errors.Is(err, service.ErrResultNotReady):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
