package handler

import (
	"errors"
	"net/http"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

// errorEnvelope is the failure shape shared by all endpoints.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func failure(message string) errorEnvelope {
	return errorEnvelope{Success: false, Message: message}
}

// statusFor maps a domain error to its HTTP status. Unknown errors map to
// 500 and should be returned to Echo so the central handler logs them.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
