package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dailydone/marketplace-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally; the underlying detail is exposed to
//     the client only in development mode.
//   - Renders a consistent JSON envelope: {"success": false, "message": …}.
func NewHTTPErrorHandler(env string, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, internal := resolveError(err, log, c)

		resp := errorResponse{Success: false, Message: msg}
		if internal != nil && env == "development" {
			resp.Error = internal.Error()
		}
		_ = c.JSON(code, resp)
	}
}

// resolveError returns the status, client message, and — for unexpected
// failures only — the underlying error.
func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, error) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest, err.Error(), nil
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", err
}
