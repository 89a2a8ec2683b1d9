package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

// UserHandler handles profile updates and the admin user listing.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type updateProfileRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email"`
	Rating         *float64 `json:"rating"`
	CompletedTasks *int     `json:"completedTasks"`
	MoneySaved     *int     `json:"moneySaved"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type userListResponse struct {
	Success bool           `json:"success"`
	Users   []*domain.User `json:"users"`
	Total   int            `json:"total"`
}

// UpdateMe updates the authenticated user's profile. Absent fields are left
// untouched.
//
// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid payload"))
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.UserPatch{
		Name:           req.Name,
		Email:          req.Email,
		Rating:         req.Rating,
		CompletedTasks: req.CompletedTasks,
		MoneySaved:     req.MoneySaved,
	})
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			return err
		}
		return c.JSON(code, failure(err.Error()))
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// List returns every user record, hash stripped. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Success: true, Users: users, Total: len(users)})
}
