package ports

import (
	"context"
	"time"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// HealthReportInput is the DTO passed from the transport layer into the
// intake pipeline.
type HealthReportInput struct {
	PatientID    string
	DoctorID     string
	FacilityID   string
	ReportedByID string
	Data         map[string]any
	DateOfReport time.Time
}

type HealthRecordRepository interface {
	Create(ctx context.Context, r *domain.HealthRecord) (*domain.HealthRecord, error)
	FindByID(ctx context.Context, id string) (*domain.HealthRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]domain.HealthRecord, error)
	List(ctx context.Context) ([]domain.HealthRecord, error)
}

// HealthRecordService processes submitted reports. Process runs on the
// dispatcher workers, not the request path.
type HealthRecordService interface {
	Process(ctx context.Context, in HealthReportInput) error
	List(ctx context.Context, patientID string) ([]domain.HealthRecord, error)
	Get(ctx context.Context, id string) (*domain.HealthRecord, error)
}
