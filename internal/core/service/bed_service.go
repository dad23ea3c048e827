package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type BedService struct {
	repo   ports.BedRepository
	logger zerolog.Logger
}

func NewBedService(repo ports.BedRepository, logger zerolog.Logger) *BedService {
	return &BedService{repo: repo, logger: logger}
}

func (s *BedService) Create(ctx context.Context, in ports.CreateBedInput) (*domain.Bed, error) {
	if strings.TrimSpace(in.BedNumber) == "" || strings.TrimSpace(in.Room) == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	bed := &domain.Bed{
		BedNumber:  in.BedNumber,
		Room:       in.Room,
		HospitalID: in.HospitalID,
		Lifecycle:  domain.NewLifecycle(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, bed)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("bed_id", created.ID).Str("bed_number", created.BedNumber).Msg("bed created")
	return created, nil
}

func (s *BedService) List(ctx context.Context) ([]domain.Bed, error) {
	return s.repo.ListUsable(ctx)
}

func (s *BedService) Get(ctx context.Context, id string) (*domain.Bed, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BedService) Update(ctx context.Context, id string, in ports.UpdateBedInput) (*domain.Bed, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *BedService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("bed_id", id).Msg("bed soft-deleted")
	return nil
}
