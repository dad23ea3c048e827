package domain

import "time"

// FacilityType classifies a facility. Stored as the legacy numeric code.
type FacilityType int

const (
	FacilityHospital     FacilityType = 0
	FacilityClinic       FacilityType = 1
	FacilityHealthCenter FacilityType = 2
)

// Valid reports whether t is a known facility type.
func (t FacilityType) Valid() bool {
	return t >= FacilityHospital && t <= FacilityHealthCenter
}

// Facility is a care site (hospital building, clinic, health center).
type Facility struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   Address      `json:"address"`
	Type      FacilityType `json:"type"`
	Lifecycle Lifecycle    `json:"lifecycle"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
