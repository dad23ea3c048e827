package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// AuthRepository is the credential store behind the session manager.
type AuthRepository interface {
	// Create persists a new identity. Returns domain.ErrEmailTaken when the
	// email unique index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindUsableByEmail matches only active, non-deleted identities.
	FindUsableByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetRefreshToken overwrites the stored refresh token; an empty value
	// unsets the field entirely.
	SetRefreshToken(ctx context.Context, id, token string) error
	// RotateRefreshToken atomically replaces the stored token with next, but
	// only while it still equals presented. Returns
	// domain.ErrStaleRefreshToken when another rotation or a logout won the
	// race.
	RotateRefreshToken(ctx context.Context, id, presented, next string) error
	SetPasswordHash(ctx context.Context, id, hash string) error
}
