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

type CategoryHandler struct {
	service   services.CategoryService
	validator *validator.Validate
}

func NewCategoryHandler(service services.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		service:   service,
		validator: validate,
	}
}

// CreateCategory godoc
// @Summary      Create a job category
// @Description  The slug is derived from the name when omitted.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body dto.CreateCategoryRequest true "Category"
// @Success      201 {object} dto.CategoryResponse
// @Failure      409 {object} map[string]string "Slug already in use"
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceCategory, "to create category")
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create category")
		return
	}
	c.JSON(http.StatusCreated, MapCategoryModelToResponse(category))
}

// ListCategories godoc
// @Summary      List job categories
// @Tags         categories
// @Produce      json
// @Success      200 {array} dto.CategoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req dto.ListCategoriesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	categories, err := h.service.ListCategories(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, mapSlice(categories, MapCategoryModelToResponse))
}

// GetCategoryByID godoc
// @Summary      Get a job category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" Format(uuid)
// @Success      200 {object} dto.CategoryResponse
// @Failure      404 {object} map[string]string "Category not found"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "category")
	if !ok {
		return
	}

	category, err := h.service.GetCategoryByID(c.Request.Context(), middleware.ActorFromContext(c), &dto.GetCategoryByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve category")
		return
	}
	c.JSON(http.StatusOK, MapCategoryModelToResponse(category))
}

// UpdateCategory godoc
// @Summary      Update a job category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" Format(uuid)
// @Param        category body dto.UpdateCategoryRequest true "Fields to update"
// @Success      200 {object} dto.CategoryResponse
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceCategory, "to update category")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "category")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	category, err := h.service.UpdateCategory(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update category")
		return
	}
	c.JSON(http.StatusOK, MapCategoryModelToResponse(category))
}

// DeleteCategory godoc
// @Summary      Delete a job category
// @Description  Jobs in the category keep existing without one.
// @Tags         categories
// @Param        id path string true "Category ID" Format(uuid)
// @Success      204 "No Content"
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionDelete, policy.ResourceCategory, "to delete category")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "category")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), actor, &dto.DeleteCategoryRequest{ID: id}); err != nil {
		respondError(c, err, "to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
