package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

type CreateBedInput struct {
	BedNumber  string
	Room       string
	HospitalID string
}

// UpdateBedInput is a partial update; nil fields are left untouched.
type UpdateBedInput struct {
	Room       *string
	IsOccupied *bool
	PatientID  *string
	HospitalID *string
}

type BedRepository interface {
	Create(ctx context.Context, b *domain.Bed) (*domain.Bed, error)
	FindByID(ctx context.Context, id string) (*domain.Bed, error)
	ListUsable(ctx context.Context) ([]domain.Bed, error)
	Update(ctx context.Context, id string, in UpdateBedInput) (*domain.Bed, error)
	SoftDelete(ctx context.Context, id string) error
}

type BedService interface {
	Create(ctx context.Context, in CreateBedInput) (*domain.Bed, error)
	List(ctx context.Context) ([]domain.Bed, error)
	Get(ctx context.Context, id string) (*domain.Bed, error)
	Update(ctx context.Context, id string, in UpdateBedInput) (*domain.Bed, error)
	Delete(ctx context.Context, id string) error
}
