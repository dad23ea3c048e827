package domain

import "time"

// User models an authenticated actor in the system. PasswordHash and
// RefreshToken never leave the process: both are excluded from JSON and the
// API layer additionally responds with dedicated DTOs.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	MobileNumber string    `json:"mobile_number"`
	PasswordHash string    `json:"-"`
	RefreshToken string    `json:"-"`
	Role         Role      `json:"role"`
	Lifecycle    Lifecycle `json:"lifecycle"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
