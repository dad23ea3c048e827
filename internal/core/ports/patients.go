package ports

import (
	"context"

	"github.com/carehub/hospital-system/internal/core/domain"
)

type CreatePatientInput struct {
	UserID           string
	Age              int
	BloodGroup       string
	MedicalHistory   string
	Allergies        []string
	HospitalID       string
	EmergencyContact string
	CurrentCondition string
	Gender           string
	AssignedDoctorID string
}

// UpdatePatientInput is a partial update; nil fields are left untouched.
type UpdatePatientInput struct {
	Age              *int
	BloodGroup       *string
	MedicalHistory   *string
	Allergies        *[]string
	HospitalID       *string
	EmergencyContact *string
	CurrentCondition *string
	AssignedDoctorID *string
}

type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	ListUsable(ctx context.Context) ([]domain.Patient, error)
	Update(ctx context.Context, id string, in UpdatePatientInput) (*domain.Patient, error)
	SoftDelete(ctx context.Context, id string) error
}

type PatientService interface {
	Create(ctx context.Context, in CreatePatientInput) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	Update(ctx context.Context, id string, in UpdatePatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id string) error
}
