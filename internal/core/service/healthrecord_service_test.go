package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type stubRecordRepo struct {
	records []domain.HealthRecord
	failing bool
}

func (r *stubRecordRepo) Create(_ context.Context, rec *domain.HealthRecord) (*domain.HealthRecord, error) {
	if r.failing {
		return nil, errors.New("insert failed")
	}
	copy := *rec
	copy.ID = "rec_" + strconv.Itoa(len(r.records)+1)
	r.records = append(r.records, copy)
	return &copy, nil
}

func (r *stubRecordRepo) FindByID(_ context.Context, id string) (*domain.HealthRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			copy := r.records[i]
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRecordRepo) ListByPatient(_ context.Context, patientID string) ([]domain.HealthRecord, error) {
	var out []domain.HealthRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubRecordRepo) List(_ context.Context) ([]domain.HealthRecord, error) {
	return append([]domain.HealthRecord(nil), r.records...), nil
}

type stubPatientRepo struct {
	patients map[string]*domain.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	copy := *p
	if copy.ID == "" {
		copy.ID = "pat_" + strconv.Itoa(len(r.patients)+1)
	}
	r.patients[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *stubPatientRepo) ListUsable(_ context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	for _, p := range r.patients {
		if p.Lifecycle.Usable() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, id string, _ ports.UpdatePatientInput) (*domain.Patient, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubPatientRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := r.patients[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Lifecycle.Deleted = true
	return nil
}

type memoryDedup struct {
	seen map[string]bool
}

func newMemoryDedup() *memoryDedup {
	return &memoryDedup{seen: make(map[string]bool)}
}

func (d *memoryDedup) key(patientID string, at time.Time) string {
	return fmt.Sprintf("%s:%d", patientID, at.Unix())
}

func (d *memoryDedup) IsDuplicate(_ context.Context, patientID string, at time.Time) (bool, error) {
	return d.seen[d.key(patientID, at)], nil
}

func (d *memoryDedup) Mark(_ context.Context, patientID string, at time.Time) error {
	d.seen[d.key(patientID, at)] = true
	return nil
}

func validReport(patientID string) ports.HealthReportInput {
	return ports.HealthReportInput{
		PatientID:    patientID,
		FacilityID:   "fac_1",
		ReportedByID: "user_1",
		Data:         map[string]any{"temperature": 37.2},
		DateOfReport: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func usablePatient(id string) *domain.Patient {
	return &domain.Patient{ID: id, UserID: "user_p", Lifecycle: domain.NewLifecycle()}
}

func TestHealthRecordService_Process_Success(t *testing.T) {
	recordRepo := &stubRecordRepo{}
	patientRepo := newStubPatientRepo()
	patientRepo.patients["pat_1"] = usablePatient("pat_1")

	svc := NewHealthRecordService(recordRepo, patientRepo, newMemoryDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), validReport("pat_1")); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if len(recordRepo.records) != 1 {
		t.Fatalf("expected 1 record persisted, got %d", len(recordRepo.records))
	}
	rec := recordRepo.records[0]
	if rec.Status != domain.ReportPending {
		t.Fatalf("expected pending status, got %q", rec.Status)
	}
	if rec.PatientID != "pat_1" || rec.ReportedByID != "user_1" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestHealthRecordService_Process_Validation(t *testing.T) {
	svc := NewHealthRecordService(&stubRecordRepo{}, newStubPatientRepo(), newMemoryDedup(), zerolog.Nop())

	in := validReport("pat_1")
	in.Data = nil
	if err := svc.Process(context.Background(), in); err != domain.ErrInvalidReport {
		t.Fatalf("expected ErrInvalidReport for empty data, got %v", err)
	}

	in = validReport("")
	if err := svc.Process(context.Background(), in); err != domain.ErrInvalidReport {
		t.Fatalf("expected ErrInvalidReport for missing patient, got %v", err)
	}
}

func TestHealthRecordService_Process_DuplicateSkipped(t *testing.T) {
	recordRepo := &stubRecordRepo{}
	patientRepo := newStubPatientRepo()
	patientRepo.patients["pat_1"] = usablePatient("pat_1")

	svc := NewHealthRecordService(recordRepo, patientRepo, newMemoryDedup(), zerolog.Nop())

	report := validReport("pat_1")
	if err := svc.Process(context.Background(), report); err != nil {
		t.Fatalf("first Process failed: %v", err)
	}
	// same patient, same timestamp: the idempotency key matches
	if err := svc.Process(context.Background(), report); err != nil {
		t.Fatalf("duplicate Process should be silent, got %v", err)
	}

	if len(recordRepo.records) != 1 {
		t.Fatalf("expected duplicate skipped, got %d records", len(recordRepo.records))
	}
}

func TestHealthRecordService_Process_InsertFailureIsRetryable(t *testing.T) {
	recordRepo := &stubRecordRepo{failing: true}
	patientRepo := newStubPatientRepo()
	patientRepo.patients["pat_1"] = usablePatient("pat_1")

	svc := NewHealthRecordService(recordRepo, patientRepo, newMemoryDedup(), zerolog.Nop())

	report := validReport("pat_1")
	if err := svc.Process(context.Background(), report); err == nil {
		t.Fatalf("expected error when insert fails")
	}

	// a failed insert must not leave the idempotency key behind: the same
	// report redelivered after the store recovers gets persisted
	recordRepo.failing = false
	if err := svc.Process(context.Background(), report); err != nil {
		t.Fatalf("redelivery after insert failure returned error: %v", err)
	}
	if len(recordRepo.records) != 1 {
		t.Fatalf("expected redelivered report persisted, got %d records", len(recordRepo.records))
	}
}

func TestHealthRecordService_Process_UnknownPatient(t *testing.T) {
	svc := NewHealthRecordService(&stubRecordRepo{}, newStubPatientRepo(), newMemoryDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), validReport("ghost"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHealthRecordService_Process_DeletedPatient(t *testing.T) {
	patientRepo := newStubPatientRepo()
	p := usablePatient("pat_1")
	p.Lifecycle.Deleted = true
	patientRepo.patients["pat_1"] = p

	svc := NewHealthRecordService(&stubRecordRepo{}, patientRepo, newMemoryDedup(), zerolog.Nop())

	err := svc.Process(context.Background(), validReport("pat_1"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestHealthRecordService_List(t *testing.T) {
	recordRepo := &stubRecordRepo{}
	patientRepo := newStubPatientRepo()
	patientRepo.patients["pat_1"] = usablePatient("pat_1")
	patientRepo.patients["pat_2"] = usablePatient("pat_2")

	svc := NewHealthRecordService(recordRepo, patientRepo, newMemoryDedup(), zerolog.Nop())

	_ = svc.Process(context.Background(), validReport("pat_1"))
	second := validReport("pat_2")
	second.DateOfReport = second.DateOfReport.Add(time.Hour)
	_ = svc.Process(context.Background(), second)

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	filtered, err := svc.List(context.Background(), "pat_2")
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].PatientID != "pat_2" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
}
