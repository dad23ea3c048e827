package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

type CreateFacilityInput struct {
	Name    string
	Address domain.Address
	Type    domain.FacilityType
}

// UpdateFacilityInput is a partial update; nil fields are left untouched.
type UpdateFacilityInput struct {
	Name    *string
	Address *domain.Address
	Type    *domain.FacilityType
}

type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
	FindByID(ctx context.Context, id string) (*domain.Facility, error)
	ListUsable(ctx context.Context) ([]domain.Facility, error)
	Update(ctx context.Context, id string, in UpdateFacilityInput) (*domain.Facility, error)
	SoftDelete(ctx context.Context, id string) error
}

type FacilityService interface {
	Create(ctx context.Context, in CreateFacilityInput) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	Get(ctx context.Context, id string) (*domain.Facility, error)
	Update(ctx context.Context, id string, in UpdateFacilityInput) (*domain.Facility, error)
	Delete(ctx context.Context, id string) error
}
