package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

// UserService covers the administrative user surface. Registration lives in
// AuthService; this service only reads and mutates existing identities.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsable(ctx)
}

// Get returns the identity. Inactive or deleted records are visible only to
// admins; everyone else gets ErrForbidden.
func (s *UserService) Get(ctx context.Context, id string, requesterRole domain.Role) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Lifecycle.Usable() && requesterRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, domain.ErrMissingFields
	}
	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user soft-deleted")
	return nil
}
