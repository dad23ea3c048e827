package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carehub/hospital-system/internal/api/metrics"
	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

// AuthService is the session manager. It orchestrates the credential store
// and token codec and owns the single-active-refresh-token invariant: every
// successful login or refresh overwrites the stored refresh token, so at
// most one presented token can ever match.
type AuthService struct {
	repo   ports.AuthRepository
	codec  ports.TokenCodec
	guard  ports.LoginGuard // optional
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, codec ports.TokenCodec, guard ports.LoginGuard, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, guard: guard, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Password) == "" ||
		strings.TrimSpace(in.MobileNumber) == "" {
		return nil, domain.ErrMissingFields
	}
	if !in.Role.Valid() {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		FullName:     in.FullName,
		MobileNumber: in.MobileNumber,
		PasswordHash: string(hash),
		Role:         in.Role,
		Lifecycle:    domain.Lifecycle{Active: in.Active, Deleted: in.Deleted},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if s.guard != nil {
		blocked, err := s.guard.Blocked(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login guard unavailable")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindUsableByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.guard != nil {
			if err := s.guard.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("login guard unavailable")
			}
		}
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login guard unavailable")
		}
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	sanitized := *user
	sanitized.PasswordHash = ""
	sanitized.RefreshToken = ""
	return &ports.LoginResult{User: &sanitized, Tokens: *pair}, nil
}

// Refresh implements single-use rotation. The presented token must verify
// against the refresh secret, belong to an existing user, and exactly match
// the stored value; the store swap is conditional on that match so two
// concurrent refreshes cannot both win.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*ports.TokenPair, error) {
	if presented == "" {
		return nil, domain.ErrMissingRefreshToken
	}

	userID, err := s.codec.VerifyRefresh(presented)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("unknown_user").Inc()
		return nil, domain.ErrTokenMalformed
	}

	access, err := s.codec.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RotateRefreshToken(ctx, user.ID, presented, refresh); err != nil {
		if err == domain.ErrStaleRefreshToken {
			metrics.TokenRefreshesTotal.WithLabelValues("stale").Inc()
			s.logger.Warn().Str("user_id", user.ID).Msg("stale refresh token presented")
		}
		return nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.SetRefreshToken(ctx, userID, ""); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

// ChangePassword re-hashes the password but leaves the stored refresh token
// alone: existing sessions stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return domain.ErrMissingFields
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// issuePair mints a fresh token pair and persists the refresh half,
// invalidating whatever token a previous login may have left behind.
func (s *AuthService) issuePair(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	access, err := s.codec.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
