package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	FullName     *string
	Email        *string
	MobileNumber *string
	Role         *domain.Role
	Active       *bool
	Deleted      *bool
}

// UserRepository persists identity records for the administrative surface.
// Writes to credentials go through AuthRepository instead.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListUsable(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
}

// UserService exposes the administrative user operations. requesterRole
// gates visibility of inactive or deleted records.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string, requesterRole domain.Role) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
