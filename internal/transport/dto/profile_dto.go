package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	UserID   uuid.UUID
	FullName *string
}

// UpdateProfileRequest is a partial update; nil fields are left untouched.
type UpdateProfileRequest struct {
	UserID      uuid.UUID          `json:"-"`
	FullName    *string            `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Headline    *string            `json:"headline,omitempty" validate:"omitempty,max=255"`
	Bio         *string            `json:"bio,omitempty" validate:"omitempty,max=5000"`
	PhoneNumber *string            `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	ResumeURL   *string            `json:"resume_url,omitempty" validate:"omitempty,max=2048"`
	Visibility  *models.Visibility `json:"visibility,omitempty" validate:"omitempty,visibility"`
}

type ProfileResponse struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	FullName    *string           `json:"full_name,omitempty"`
	Headline    *string           `json:"headline,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	PhoneNumber *string           `json:"phone_number,omitempty"`
	ResumeURL   *string           `json:"resume_url,omitempty"`
	Visibility  models.Visibility `json:"visibility"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
