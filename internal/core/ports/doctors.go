package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

type CreateDoctorInput struct {
	UserID            string
	Salary            float64
	Qualification     string
	ExperienceInYears int
	HospitalIDs       []string
	Gender            string
	Availability      []domain.AvailabilitySlot
}

// UpdateDoctorInput is a partial update; nil fields are left untouched.
type UpdateDoctorInput struct {
	Salary            *float64
	Qualification     *string
	ExperienceInYears *int
	HospitalIDs       *[]string
	Gender            *string
	Availability      *[]domain.AvailabilitySlot
}

type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id string) (*domain.Doctor, error)
	ListUsable(ctx context.Context) ([]domain.Doctor, error)
	Update(ctx context.Context, id string, in UpdateDoctorInput) (*domain.Doctor, error)
	SoftDelete(ctx context.Context, id string) error
}

type DoctorService interface {
	Create(ctx context.Context, in CreateDoctorInput) (*domain.Doctor, error)
	List(ctx context.Context) ([]domain.Doctor, error)
	Get(ctx context.Context, id string) (*domain.Doctor, error)
	Update(ctx context.Context, id string, in UpdateDoctorInput) (*domain.Doctor, error)
	Delete(ctx context.Context, id string) error
}
