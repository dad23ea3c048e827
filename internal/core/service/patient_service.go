package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

var validGenders = map[string]struct{}{"M": {}, "F": {}, "O": {}}

type PatientService struct {
	repo   ports.PatientRepository
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, logger: logger}
}

func (s *PatientService) Create(ctx context.Context, in ports.CreatePatientInput) (*domain.Patient, error) {
	if strings.TrimSpace(in.UserID) == "" ||
		in.Age < 0 ||
		strings.TrimSpace(in.BloodGroup) == "" ||
		strings.TrimSpace(in.MedicalHistory) == "" {
		return nil, domain.ErrMissingFields
	}
	if _, ok := validGenders[in.Gender]; !ok {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		UserID:           in.UserID,
		Age:              in.Age,
		BloodGroup:       in.BloodGroup,
		MedicalHistory:   in.MedicalHistory,
		Allergies:        in.Allergies,
		HospitalID:       in.HospitalID,
		EmergencyContact: in.EmergencyContact,
		CurrentCondition: in.CurrentCondition,
		Gender:           in.Gender,
		AssignedDoctorID: in.AssignedDoctorID,
		Lifecycle:        domain.NewLifecycle(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("patient_id", created.ID).Str("user_id", created.UserID).Msg("patient created")
	return created, nil
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.ListUsable(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) Update(ctx context.Context, id string, in ports.UpdatePatientInput) (*domain.Patient, error) {
	if in.Age != nil && *in.Age < 0 {
		return nil, domain.ErrMissingFields
	}
	return s.repo.Update(ctx, id, in)
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("patient_id", id).Msg("patient soft-deleted")
	return nil
}
