package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lab-booking-service/internal/auth"
	"github.com/spec-kit/lab-booking-service/internal/config"
	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/repository"
	apperrors "github.com/spec-kit/lab-booking-service/pkg/util"
)

// AuthService validates credentials and mints session tokens.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	limiter  *auth.LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, limiter *auth.LoginLimiter) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		limiter:  limiter,
	}
}

// Authenticate checks the username/password pair and returns a signed session
// token embedding the credential-free profile. Unknown usernames and wrong
// passwords produce the same Unauthorized error so account existence does not
// leak to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, time.Time, error) {
	if !s.limiter.Allow(ctx, username) {
		return "", time.Time{}, apperrors.NewTooManyRequests("too many failed login attempts")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.limiter.RecordFailure(ctx, username)
			return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.limiter.RecordFailure(ctx, username)
		return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}

	s.limiter.Reset(ctx, username)

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.Public())
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Profile returns the fresh credential-free profile for a user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.PublicProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PublicProfile{}, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return domain.PublicProfile{}, err
	}
	return user.Public(), nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
