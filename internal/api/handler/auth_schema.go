package handler

import (
	"time"

	"github.com/carehub/hospital-system/internal/core/domain"
)

type registerRequest struct {
	Email        string      `json:"email"         validate:"required,email"`
	FullName     string      `json:"full_name"     validate:"required"`
	Password     string      `json:"password"      validate:"required,min=8"`
	MobileNumber string      `json:"mobile_number" validate:"required"`
	Role         domain.Role `json:"role"          validate:"required"`
	Active       *bool       `json:"active"`
	Deleted      *bool       `json:"deleted"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// userResponse is the outward identity representation: no password hash, no
// refresh token, ever.
type userResponse struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	FullName     string      `json:"full_name"`
	MobileNumber string      `json:"mobile_number"`
	Role         domain.Role `json:"role"`
	Active       bool        `json:"active"`
	Deleted      bool        `json:"deleted"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		MobileNumber: u.MobileNumber,
		Role:         u.Role,
		Active:       u.Lifecycle.Active,
		Deleted:      u.Lifecycle.Deleted,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type loginResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
