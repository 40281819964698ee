package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/metrics"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// LoginFailureDelay is applied before answering a wrong-password login.
// Unknown emails are answered without it.
const LoginFailureDelay = 500 * time.Millisecond

// AuthService verifies credentials.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users        repository.UserRepository
	hasher       auth.PasswordHasher
	log          zerolog.Logger
	failureDelay time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, log zerolog.Logger) AuthService {
	return &authService{
		users:        users,
		hasher:       hasher,
		log:          log,
		failureDelay: LoginFailureDelay,
	}
}

// Login returns the stored principal, password hash included; callers must not expose it.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginEmailNotFound).Inc()
			s.log.Warn().Str("reason", metrics.LoginEmailNotFound).Msg("login failed")
			return nil, apperrors.EmailNotFound(email)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("stored password hash is unusable")
	}
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginBadPassword).Inc()
		s.log.Warn().Str("reason", metrics.LoginBadPassword).Uint("user_id", user.ID).Msg("login failed")
		sleep(ctx, s.failureDelay)
		return nil, apperrors.ErrUnauthorized
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	return user, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
