package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		case "job_type":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of %v", fieldName, models.JobTypes)
		case "application_status":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of %v", fieldName, models.ApplicationStatuses)
		case "visibility":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be 'public' or 'private'", fieldName)
		case "salary":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a non-negative amount with at most 10 digits and 2 decimals", fieldName)
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
}

// bindJSON decodes and validates the body into req. It writes the 400
// response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// bindQuery is bindJSON for query strings.
func bindQuery(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s ID format", resource)})
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses an already validated, possibly empty, query value.
func optionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// --- Response mapping ---

func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func MapProfileModelToResponse(p *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		FullName:    p.FullName,
		Headline:    p.Headline,
		Bio:         p.Bio,
		PhoneNumber: p.PhoneNumber,
		ResumeURL:   p.ResumeURL,
		Visibility:  p.Visibility,
		UpdatedAt:   p.UpdatedAt,
	}
}

func MapCategoryModelToResponse(c *models.JobCategory) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		Location:    job.Location,
		Latitude:    job.Latitude,
		Longitude:   job.Longitude,
		JobType:     job.JobType,
		SalaryMin:   job.SalaryMin,
		SalaryMax:   job.SalaryMax,
		PostedBy:    job.PostedBy,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.Category != nil {
		category := MapCategoryModelToResponse(job.Category)
		resp.Category = &category
	}
	return resp
}

func MapApplicationModelToResponse(app *models.ApplicationDetail) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID: app.ID,
		Job: dto.JobSummaryResponse{
			ID:      app.Job.ID,
			Title:   app.Job.Title,
			Company: app.Job.Company,
		},
		Applicant: dto.ApplicantSummaryResponse{
			ID:    app.Applicant.ID,
			Email: app.Applicant.Email,
		},
		Resume:      app.Resume,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

func MapCompanyModelToResponse(c *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		WebsiteURL:  c.WebsiteURL,
		Logo:        c.Logo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// mapSlice converts a slice of models with the given mapper.
func mapSlice[M any, R any](items []M, fn func(*M) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
