package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailydone/marketplace-api/internal/api/metrics"
	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=user helper"`
}

type authResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Token       string       `json:"token"`
	User        *domain.User `json:"user"`
	RedirectURL string       `json:"redirect_url"`
}

type verifyResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	Valid   bool         `json:"valid"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return err
		}
		if code == http.StatusUnauthorized {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		}
		return c.JSON(code, failure(err.Error()))
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Success:     true,
		Message:     "login successful",
		Token:       result.Token,
		User:        result.User,
		RedirectURL: result.RedirectURL,
	})
}

// Register creates a new account and returns a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(code, failure(err.Error()))
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Success:     true,
		Message:     "registration successful",
		Token:       result.Token,
		User:        result.User,
		RedirectURL: result.RedirectURL,
	})
}

// Verify validates the bearer token and returns the current user record,
// fresh from the store so profile edits are reflected.
//
// @Summary      Verify the session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := bearerToken(c)

	user, err := h.authService.VerifyToken(c.Request().Context(), token)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			return err
		}
		switch code {
		case http.StatusUnauthorized:
			metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
		default:
			metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		}
		return c.JSON(code, failure(err.Error()))
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, verifyResponse{Success: true, User: user, Valid: true})
}

// Logout acknowledges the client-side token discard. When a revocation list
// is configured the token is denylisted until its embedded expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Failure      500  {object}  errorEnvelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), bearerToken(c), c.RealIP()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "logout successful"})
}
