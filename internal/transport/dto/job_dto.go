package dto

import (
	"slices"
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Description string           `json:"description" validate:"required"`
	Company     string           `json:"company" validate:"required,max=255"`
	Location    string           `json:"location" validate:"required,max=255"`
	Latitude    *float64         `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64         `json:"longitude,omitempty" validate:"omitempty,longitude"`
	JobType     models.JobType   `json:"job_type" validate:"required,job_type"`
	SalaryMin   *decimal.Decimal `json:"salary_min,omitempty" validate:"omitempty,salary"`
	SalaryMax   *decimal.Decimal `json:"salary_max,omitempty" validate:"omitempty,salary"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	PostedBy    uuid.UUID        `json:"-"` // Set by the service from the acting admin
}

// Nullable job fields that an update can reset through UpdateJobRequest.Clear.
const (
	JobFieldCategory  = "category_id"
	JobFieldSalaryMin = "salary_min"
	JobFieldSalaryMax = "salary_max"
	JobFieldLatitude  = "latitude"
	JobFieldLongitude = "longitude"
)

// UpdateJobRequest only touches non-nil fields. Fields named in Clear are set
// to NULL. PostedBy is immutable.
type UpdateJobRequest struct {
	ID          uuid.UUID        `json:"-"`
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Company     *string          `json:"company,omitempty" validate:"omitempty,min=1,max=255"`
	Location    *string          `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	Latitude    *float64         `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64         `json:"longitude,omitempty" validate:"omitempty,longitude"`
	JobType     *models.JobType  `json:"job_type,omitempty" validate:"omitempty,job_type"`
	SalaryMin   *decimal.Decimal `json:"salary_min,omitempty" validate:"omitempty,salary"`
	SalaryMax   *decimal.Decimal `json:"salary_max,omitempty" validate:"omitempty,salary"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Clear       []string         `json:"clear,omitempty" validate:"omitempty,dive,oneof=category_id salary_min salary_max latitude longitude"`
}

// Clears reports whether field is listed in Clear.
func (r *UpdateJobRequest) Clears(field string) bool {
	return slices.Contains(r.Clear, field)
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-"`
}

type DeleteJobRequest struct {
	ID uuid.UUID `json:"-"`
}

// ListJobsRequest supports free-text search over title and company plus exact filters.
type ListJobsRequest struct {
	Query      string          `form:"q" validate:"omitempty,max=255"`
	JobType    *models.JobType `form:"job_type" validate:"omitempty,job_type"`
	Category   string          `form:"category" validate:"omitempty,uuid"`
	CategoryID *uuid.UUID      `form:"-"` // Parsed from Category by the handler
	Limit      int             `form:"limit,default=10" validate:"min=1,max=100"`
	Offset     int             `form:"offset,default=0" validate:"min=0"`
}

// --- Job Response DTOs ---

type JobResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Company     string            `json:"company"`
	Location    string            `json:"location"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	JobType     models.JobType    `json:"job_type"`
	SalaryMin   *decimal.Decimal  `json:"salary_min,omitempty"`
	SalaryMax   *decimal.Decimal  `json:"salary_max,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	PostedBy    uuid.UUID         `json:"posted_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
