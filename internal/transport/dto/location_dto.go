package dto

import "github.com/google/uuid"

// LocationIDRequest addresses a single country, state or city.
type LocationIDRequest struct {
	ID uuid.UUID `json:"-"`
}

// --- Country ---

type CreateCountryRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	ISOCode *string `json:"iso_code,omitempty" validate:"omitempty,min=2,max=3,alpha"`
}

type UpdateCountryRequest struct {
	ID      uuid.UUID `json:"-"`
	Name    *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ISOCode *string   `json:"iso_code,omitempty" validate:"omitempty,min=2,max=3,alpha"`
}

type ListCountriesRequest struct {
	Limit  int `form:"limit,default=100" validate:"min=1,max=500"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}

// --- State ---

type CreateStateRequest struct {
	CountryID uuid.UUID `json:"country_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
}

type UpdateStateRequest struct {
	ID   uuid.UUID `json:"-"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

type ListStatesRequest struct {
	Country   string     `form:"country_id" validate:"omitempty,uuid"`
	CountryID *uuid.UUID `form:"-"`
	Limit     int        `form:"limit,default=100" validate:"min=1,max=500"`
	Offset    int        `form:"offset,default=0" validate:"min=0"`
}

// --- City ---

type CreateCityRequest struct {
	StateID uuid.UUID `json:"state_id" validate:"required"`
	Name    string    `json:"name" validate:"required,max=100"`
}

type UpdateCityRequest struct {
	ID   uuid.UUID `json:"-"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

type ListCitiesRequest struct {
	State   string     `form:"state_id" validate:"omitempty,uuid"`
	StateID *uuid.UUID `form:"-"`
	Limit   int        `form:"limit,default=100" validate:"min=1,max=500"`
	Offset  int        `form:"offset,default=0" validate:"min=0"`
}
