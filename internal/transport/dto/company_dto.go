package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	WebsiteURL  *string   `json:"website_url,omitempty" validate:"omitempty,url,max=2048"`
	Logo        *string   `json:"logo,omitempty" validate:"omitempty,max=2048"`
	OwnerID     uuid.UUID `json:"-"`
}

// UpdateCompanyRequest has no owner field: ownership never changes.
type UpdateCompanyRequest struct {
	ID          uuid.UUID `json:"-"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	WebsiteURL  *string   `json:"website_url,omitempty" validate:"omitempty,url,max=2048"`
	Logo        *string   `json:"logo,omitempty" validate:"omitempty,max=2048"`
}

type GetCompanyByIDRequest struct {
	ID uuid.UUID `json:"-"`
}

type DeleteCompanyRequest struct {
	ID uuid.UUID `json:"-"`
}

type ListCompaniesRequest struct {
	Query  string `form:"q" validate:"omitempty,max=255"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
	Offset int    `form:"offset,default=0" validate:"min=0"`
}

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	WebsiteURL  *string   `json:"website_url,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
