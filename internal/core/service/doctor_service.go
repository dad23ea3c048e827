package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type DoctorService struct {
	repo   ports.DoctorRepository
	logger zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, logger zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, logger: logger}
}

func (s *DoctorService) Create(ctx context.Context, in ports.CreateDoctorInput) (*domain.Doctor, error) {
	if strings.TrimSpace(in.UserID) == "" ||
		in.Salary <= 0 ||
		strings.TrimSpace(in.Qualification) == "" ||
		strings.TrimSpace(in.Gender) == "" ||
		len(in.HospitalIDs) == 0 ||
		len(in.Availability) == 0 {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	doctor := &domain.Doctor{
		UserID:            in.UserID,
		Salary:            in.Salary,
		Qualification:     in.Qualification,
		ExperienceInYears: in.ExperienceInYears,
		HospitalIDs:       in.HospitalIDs,
		Gender:            in.Gender,
		Availability:      in.Availability,
		Lifecycle:         domain.NewLifecycle(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("doctor_id", created.ID).Str("user_id", created.UserID).Msg("doctor created")
	return created, nil
}

func (s *DoctorService) List(ctx context.Context) ([]domain.Doctor, error) {
	return s.repo.ListUsable(ctx)
}

func (s *DoctorService) Get(ctx context.Context, id string) (*domain.Doctor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DoctorService) Update(ctx context.Context, id string, in ports.UpdateDoctorInput) (*domain.Doctor, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("doctor_id", id).Msg("doctor soft-deleted")
	return nil
}
