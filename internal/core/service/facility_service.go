package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type FacilityService struct {
	repo   ports.FacilityRepository
	logger zerolog.Logger
}

func NewFacilityService(repo ports.FacilityRepository, logger zerolog.Logger) *FacilityService {
	return &FacilityService{repo: repo, logger: logger}
}

func (s *FacilityService) Create(ctx context.Context, in ports.CreateFacilityInput) (*domain.Facility, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Address.State) == "" ||
		strings.TrimSpace(in.Address.City) == "" ||
		strings.TrimSpace(in.Address.Pincode) == "" {
		return nil, domain.ErrMissingFields
	}
	if !in.Type.Valid() {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	facility := &domain.Facility{
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		Type:      in.Type,
		Lifecycle: domain.NewLifecycle(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, facility)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("facility_id", created.ID).Msg("facility created")
	return created, nil
}

func (s *FacilityService) List(ctx context.Context) ([]domain.Facility, error) {
	return s.repo.ListUsable(ctx)
}

func (s *FacilityService) Get(ctx context.Context, id string) (*domain.Facility, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FacilityService) Update(ctx context.Context, id string, in ports.UpdateFacilityInput) (*domain.Facility, error) {
	if in.Type != nil && !in.Type.Valid() {
		return nil, domain.ErrMissingFields
	}
	return s.repo.Update(ctx, id, in)
}

func (s *FacilityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("facility_id", id).Msg("facility soft-deleted")
	return nil
}
