package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		service:   service,
		validator: validate,
	}
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Admin only. The caller becomes the owner.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company body dto.CreateCompanyRequest true "Company"
// @Success      201 {object} dto.CompanyResponse
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceCompany, "to create company")
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create company")
		return
	}
	c.JSON(http.StatusCreated, MapCompanyModelToResponse(company))
}

// ListCompanies godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        q query string false "Name search"
// @Success      200 {array} dto.CompanyResponse
// @Router       /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var req dto.ListCompaniesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	companies, err := h.service.ListCompanies(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve companies")
		return
	}
	c.JSON(http.StatusOK, mapSlice(companies, MapCompanyModelToResponse))
}

// GetCompanyByID godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID" Format(uuid)
// @Success      200 {object} dto.CompanyResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "company")
	if !ok {
		return
	}

	company, err := h.service.GetCompanyByID(c.Request.Context(), middleware.ActorFromContext(c), &dto.GetCompanyByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve company")
		return
	}
	c.JSON(http.StatusOK, MapCompanyModelToResponse(company))
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID" Format(uuid)
// @Param        company body dto.UpdateCompanyRequest true "Fields to update"
// @Success      200 {object} dto.CompanyResponse
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceCompany, "to update company")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "company")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	company, err := h.service.UpdateCompany(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update company")
		return
	}
	c.JSON(http.StatusOK, MapCompanyModelToResponse(company))
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         companies
// @Param        id path string true "Company ID" Format(uuid)
// @Success      204 "No Content"
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionDelete, policy.ResourceCompany, "to delete company")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "company")
	if !ok {
		return
	}

	if err := h.service.DeleteCompany(c.Request.Context(), actor, &dto.DeleteCompanyRequest{ID: id}); err != nil {
		respondError(c, err, "to delete company")
		return
	}
	c.Status(http.StatusNoContent)
}
