package domain

import "time"

// Bed is a single trackable bed within a hospital room.
type Bed struct {
	ID         string    `json:"id"`
	BedNumber  string    `json:"bed_number"`
	Room       string    `json:"room"`
	IsOccupied bool      `json:"is_occupied"`
	PatientID  string    `json:"patient_id,omitempty"`
	HospitalID string    `json:"hospital_id,omitempty"`
	Lifecycle  Lifecycle `json:"lifecycle"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
