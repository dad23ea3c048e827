package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type HospitalService struct {
	repo   ports.HospitalRepository
	logger zerolog.Logger
}

func NewHospitalService(repo ports.HospitalRepository, logger zerolog.Logger) *HospitalService {
	return &HospitalService{repo: repo, logger: logger}
}

func (s *HospitalService) Create(ctx context.Context, in ports.CreateHospitalInput) (*domain.Hospital, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Address.State) == "" ||
		strings.TrimSpace(in.Address.City) == "" ||
		strings.TrimSpace(in.Address.Pincode) == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	hospital := &domain.Hospital{
		Name:          in.Name,
		Address:       in.Address,
		SpecializedIn: in.SpecializedIn,
		ContactNumber: in.ContactNumber,
		Lifecycle:     domain.NewLifecycle(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, hospital)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("hospital_id", created.ID).Str("name", created.Name).Msg("hospital created")
	return created, nil
}

func (s *HospitalService) List(ctx context.Context) ([]domain.Hospital, error) {
	return s.repo.ListUsable(ctx)
}

func (s *HospitalService) Get(ctx context.Context, id string) (*domain.Hospital, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HospitalService) Update(ctx context.Context, id string, in ports.UpdateHospitalInput) (*domain.Hospital, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *HospitalService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("hospital_id", id).Msg("hospital soft-deleted")
	return nil
}
