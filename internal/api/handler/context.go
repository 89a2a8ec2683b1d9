package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// bearerToken extracts the token from the Authorization header. Returns the
// empty string when no bearer credentials are present.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. A missing id means the middleware did not run, so fail with
// 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
