package dto

import "github.com/google/uuid"

// CreateCategoryRequest derives the slug from the name when Slug is empty.
type CreateCategoryRequest struct {
	Name string  `json:"name" validate:"required,max=100"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,max=100"`
}

type UpdateCategoryRequest struct {
	ID   uuid.UUID `json:"-"`
	Name *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug *string   `json:"slug,omitempty" validate:"omitempty,min=1,max=100"`
}

type GetCategoryByIDRequest struct {
	ID uuid.UUID `json:"-"`
}

type DeleteCategoryRequest struct {
	ID uuid.UUID `json:"-"`
}

type ListCategoriesRequest struct {
	Limit  int `form:"limit,default=50" validate:"min=1,max=100"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
