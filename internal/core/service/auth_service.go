package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
)

const minPasswordLength = 8

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

// RevocationList abstracts the optional token denylist (Redis). A nil list
// means logout is a pure client-side discard.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements login, registration, token verification, logout,
// and profile updates on top of a credential store and a token codec.
type AuthService struct {
	repo    ports.UserRepository
	codec   ports.TokenCodec
	revoked RevocationList
	audit   ports.AuditSink
	log     zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	codec ports.TokenCodec,
	revoked RevocationList,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, codec: codec, revoked: revoked, audit: audit, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password, remoteIP string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a wrong password, to avoid account enumeration.
			s.emit(domain.AuthEvent{Email: email, Action: domain.AuditLoginFailed, RemoteIP: remoteIP})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.emit(domain.AuthEvent{UserID: user.ID, Email: user.Email, Action: domain.AuditLoginFailed, RemoteIP: remoteIP})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.emit(domain.AuthEvent{UserID: user.ID, Email: user.Email, Role: user.Role, Action: domain.AuditLogin, RemoteIP: remoteIP})
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return &ports.AuthResult{
		Token:       token,
		User:        user,
		RedirectURL: domain.DashboardPath(user.Role),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrMissingFields
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !usernamePattern.MatchString(input.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.RegistrableRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.ToLower(input.Username),
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		Role:         role,
		PasswordHash: string(hash),
		Rating:       5.0,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(created)
	if err != nil {
		return nil, err
	}

	s.emit(domain.AuthEvent{UserID: created.ID, Email: created.Email, Role: created.Role, Action: domain.AuditRegister, RemoteIP: input.RemoteIP})
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{
		Token:       token,
		User:        created,
		RedirectURL: domain.DashboardPath(created.Role),
	}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}

	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			s.log.Warn().Err(err).Msg("revocation check failed, accepting token")
		} else if revoked {
			return nil, domain.ErrTokenInvalid
		}
	}

	// Fresh read so profile edits made since issuance are reflected, and so
	// tokens for deleted accounts are rejected.
	return s.repo.FindByID(ctx, claims.UserID)
}

func (s *AuthService) Logout(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return nil
	}

	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil
	}

	if s.revoked != nil {
		if err := s.revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
			s.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("token revocation failed")
		}
	}

	s.emit(domain.AuthEvent{UserID: claims.UserID, Email: claims.Email, Role: claims.Role, Action: domain.AuditLogout, RemoteIP: remoteIP})
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error) {
	if patch.Email != nil {
		if !emailPattern.MatchString(*patch.Email) {
			return nil, domain.ErrInvalidEmail
		}
		lowered := strings.ToLower(*patch.Email)
		patch.Email = &lowered
	}

	updated, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.emit(domain.AuthEvent{UserID: updated.ID, Email: updated.Email, Role: updated.Role, Action: domain.AuditProfileUpdate})
	return updated, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	return s.codec.Issue(domain.TokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		TokenID: uuid.NewString(),
	})
}

func (s *AuthService) emit(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}
