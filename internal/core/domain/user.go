package domain

import "time"

const (
	RoleUser   = "user"
	RoleHelper = "helper"
	RoleAdmin  = "admin"
)

// RegistrableRole reports whether a role may be chosen through public
// registration. Admin accounts are provisioned out of band only.
func RegistrableRole(role string) bool {
	return role == RoleUser || role == RoleHelper
}

// DashboardPath returns the role-derived redirect hint sent back by login
// and register so the client knows which dashboard to open.
func DashboardPath(role string) string {
	if role == RoleHelper {
		return "/helper-dashboard"
	}
	return "/dashboard"
}

// User models an account in the task marketplace.
// PasswordHash never leaves the server: it is excluded from JSON.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	PasswordHash   string    `json:"-"`
	Rating         float64   `json:"rating"`
	CompletedTasks int       `json:"completedTasks"`
	MoneySaved     int       `json:"moneySaved"`
	CreatedAt      time.Time `json:"createdAt"`
}
