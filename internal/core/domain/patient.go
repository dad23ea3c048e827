package domain

import "time"

// Patient extends a User with clinical details.
type Patient struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Age              int       `json:"age"`
	BloodGroup       string    `json:"blood_group"`
	MedicalHistory   string    `json:"medical_history"`
	Allergies        []string  `json:"allergies"`
	HospitalID       string    `json:"hospital_id,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	CurrentCondition string    `json:"current_condition,omitempty"`
	Gender           string    `json:"gender"`
	AssignedDoctorID string    `json:"assigned_doctor_id,omitempty"`
	Lifecycle        Lifecycle `json:"lifecycle"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
