package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// CreateHospitalInput carries the writable hospital fields.
type CreateHospitalInput struct {
	Name          string
	Address       domain.Address
	SpecializedIn []string
	ContactNumber string
}

// UpdateHospitalInput is a partial update; nil fields are left untouched.
type UpdateHospitalInput struct {
	Name          *string
	Address       *domain.Address
	SpecializedIn *[]string
	ContactNumber *string
}

type HospitalRepository interface {
	Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error)
	FindByID(ctx context.Context, id string) (*domain.Hospital, error)
	ListUsable(ctx context.Context) ([]domain.Hospital, error)
	Update(ctx context.Context, id string, in UpdateHospitalInput) (*domain.Hospital, error)
	SoftDelete(ctx context.Context, id string) error
}

type HospitalService interface {
	Create(ctx context.Context, in CreateHospitalInput) (*domain.Hospital, error)
	List(ctx context.Context) ([]domain.Hospital, error)
	Get(ctx context.Context, id string) (*domain.Hospital, error)
	Update(ctx context.Context, id string, in UpdateHospitalInput) (*domain.Hospital, error)
	Delete(ctx context.Context, id string) error
}
