package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/api/metrics"
	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

// ReportDedup abstracts the idempotency store (Redis) for report intake.
type ReportDedup interface {
	IsDuplicate(ctx context.Context, patientID string, reportedAt time.Time) (bool, error)
	Mark(ctx context.Context, patientID string, reportedAt time.Time) error
}

type healthRecordService struct {
	recordRepo  ports.HealthRecordRepository
	patientRepo ports.PatientRepository
	dedup       ReportDedup
	log         zerolog.Logger
}

// NewHealthRecordService returns a HealthRecordService implementation.
func NewHealthRecordService(
	recordRepo ports.HealthRecordRepository,
	patientRepo ports.PatientRepository,
	dedup ReportDedup,
	log zerolog.Logger,
) ports.HealthRecordService {
	return &healthRecordService{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		dedup:       dedup,
		log:         log,
	}
}

// Process validates, deduplicates, and persists a single health report.
// It runs on the dispatcher workers.
func (s *healthRecordService) Process(ctx context.Context, in ports.HealthReportInput) error {
	start := time.Now()

	if in.PatientID == "" || in.FacilityID == "" || in.ReportedByID == "" || len(in.Data) == 0 {
		metrics.ReportsErrorsTotal.WithLabelValues("invalid_report").Inc()
		return domain.ErrInvalidReport
	}

	// Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.PatientID, in.DateOfReport)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", in.PatientID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ReportsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("patient_id", in.PatientID).Msg("duplicate report skipped")
		return nil
	}
	metrics.ReportsDedupTotal.WithLabelValues("miss").Inc()

	// The report must target a usable patient.
	patient, err := s.patientRepo.FindByID(ctx, in.PatientID)
	if err != nil {
		metrics.ReportsErrorsTotal.WithLabelValues("patient_not_found").Inc()
		return fmt.Errorf("process report: %w", err)
	}
	if !patient.Lifecycle.Usable() {
		metrics.ReportsErrorsTotal.WithLabelValues("patient_unusable").Inc()
		return fmt.Errorf("process report: %w", domain.ErrForbidden)
	}

	record := &domain.HealthRecord{
		PatientID:    in.PatientID,
		DoctorID:     in.DoctorID,
		FacilityID:   in.FacilityID,
		ReportedByID: in.ReportedByID,
		Data:         in.Data,
		DateOfReport: in.DateOfReport,
		Status:       domain.ReportPending,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.recordRepo.Create(ctx, record); err != nil {
		metrics.ReportsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process report: insert: %w", err)
	}

	// Mark only after a durable write; a failed insert stays unmarked so a
	// redelivery of the same report is processed instead of skipped.
	if markErr := s.dedup.Mark(ctx, in.PatientID, in.DateOfReport); markErr != nil {
		s.log.Warn().Err(markErr).Str("patient_id", in.PatientID).Msg("failed to set dedup key")
	}

	metrics.ReportsProcessedTotal.WithLabelValues(string(domain.ReportPending)).Inc()
	metrics.ReportProcessingDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("patient_id", in.PatientID).
		Str("facility_id", in.FacilityID).
		Str("reported_by", in.ReportedByID).
		Msg("health report persisted")

	return nil
}

func (s *healthRecordService) List(ctx context.Context, patientID string) ([]domain.HealthRecord, error) {
	if patientID != "" {
		return s.recordRepo.ListByPatient(ctx, patientID)
	}
	return s.recordRepo.List(ctx)
}

func (s *healthRecordService) Get(ctx context.Context, id string) (*domain.HealthRecord, error) {
	return s.recordRepo.FindByID(ctx, id)
}
