package domain

import "time"

// Address is a nested postal address shared by hospitals and facilities.
type Address struct {
	State   string `json:"state" bson:"state"`
	City    string `json:"city" bson:"city"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// Hospital is a registered care institution. Facility, doctor, and bed ids
// are loose references; referential integrity is not enforced.
type Hospital struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       Address   `json:"address"`
	SpecializedIn []string  `json:"specialized_in"`
	ContactNumber string    `json:"contact_number"`
	FacilityIDs   []string  `json:"facility_ids"`
	DoctorIDs     []string  `json:"doctor_ids"`
	BedIDs        []string  `json:"bed_ids"`
	Lifecycle     Lifecycle `json:"lifecycle"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
