package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Application Request DTOs ---

// SubmitApplicationRequest carries what the applicant sends. Resume presence
// is checked by the service after authorization, so it carries no required tag.
type SubmitApplicationRequest struct {
	JobID       uuid.UUID `json:"-"`
	Resume      string    `json:"resume" validate:"max=2048"`
	CoverLetter *string   `json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
}

// CreateApplicationRequest is the storage-level insert.
type CreateApplicationRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Resume      string
	CoverLetter *string
}

type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-"`
	Status models.ApplicationStatus `json:"status"`
}

type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-"`
}

type ListApplicationsRequest struct {
	Job         string                    `form:"job_id" validate:"omitempty,uuid"`
	JobID       *uuid.UUID                `form:"-"`
	Status      *models.ApplicationStatus `form:"status" validate:"omitempty,application_status"`
	ApplicantID *uuid.UUID                `form:"-"` // Forced by the service for non-admins
	Limit       int                       `form:"limit,default=20" validate:"min=1,max=100"`
	Offset      int                       `form:"offset,default=0" validate:"min=0"`
}

// --- Application Response DTOs ---

type JobSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
}

type ApplicantSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type ApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	Job         JobSummaryResponse       `json:"job"`
	Applicant   ApplicantSummaryResponse `json:"applicant"`
	Resume      string                   `json:"resume"`
	CoverLetter *string                  `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}
