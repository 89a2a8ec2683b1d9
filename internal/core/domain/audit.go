package domain

import "time"

// Auth audit actions.
const (
	AuditLogin         = "login"
	AuditLoginFailed   = "login_failed"
	AuditRegister      = "register"
	AuditLogout        = "logout"
	AuditProfileUpdate = "profile_update"
)

// AuthEvent records a single authentication-related action for the audit
// trail. UserID may be empty for failed logins against unknown accounts.
type AuthEvent struct {
	UserID    string
	Email     string
	Role      string
	Action    string
	RemoteIP  string
	Timestamp time.Time
}
