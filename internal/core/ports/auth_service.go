package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// RegisterInput carries the fields required to create a new identity.
type RegisterInput struct {
	Email        string
	FullName     string
	Password     string
	MobileNumber string
	Role         domain.Role
	Active       bool
	Deleted      bool
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService is the session manager: it owns the invariant that at most one
// refresh token is live per identity at any time.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a presented refresh token for a fresh pair,
	// invalidating the presented one. Refresh tokens are single-use.
	Refresh(ctx context.Context, presented string) (*TokenPair, error)
	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// LoginGuard throttles repeated failed logins per login key. Implementations
// may be a no-op; the session manager treats guard errors as advisory.
type LoginGuard interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
