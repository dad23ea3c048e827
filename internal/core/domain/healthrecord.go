package domain

import (
	"errors"
	"time"
)

// ReportStatus is the review state of a submitted health record.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

var ErrInvalidReport = errors.New("invalid health report")

// HealthRecord is a clinical report filed against a patient. Records enter
// the store through the asynchronous intake pipeline and start out pending.
type HealthRecord struct {
	ID           string         `json:"id"`
	PatientID    string         `json:"patient_id"`
	DoctorID     string         `json:"doctor_id,omitempty"`
	FacilityID   string         `json:"facility_id"`
	ReportedByID string         `json:"reported_by_id"`
	Data         map[string]any `json:"data"`
	DateOfReport time.Time      `json:"date_of_report"`
	Status       ReportStatus   `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}
