package domain

import "time"

// AvailabilitySlot is one recurring consultation window.
type AvailabilitySlot struct {
	Day  string `json:"day" bson:"day"`
	Time string `json:"time" bson:"time"`
}

// Doctor extends a User with practitioner details. UserID links back to the
// identity record used for login.
type Doctor struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	Salary            float64            `json:"salary"`
	Qualification     string             `json:"qualification"`
	ExperienceInYears int                `json:"experience_in_years"`
	HospitalIDs       []string           `json:"hospital_ids"`
	Gender            string             `json:"gender"`
	Availability      []AvailabilitySlot `json:"availability"`
	Lifecycle         Lifecycle          `json:"lifecycle"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
