package domain

import "errors"

// Sentinel errors surfaced by the auth service and repositories. The API
// layer maps each one to a deterministic HTTP status and message.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidUsername    = errors.New("username must be 3-20 characters: letters, numbers, and underscore only")
	ErrInvalidRole        = errors.New("role must be one of: user, helper")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrTokenRequired      = errors.New("access token required")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)
