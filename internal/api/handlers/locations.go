package handlers

import (
	"context"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LocationHandler serves the country / state / city reference data.
// Models are returned as-is; they carry no private fields.
type LocationHandler struct {
	service   services.LocationService
	validator *validator.Validate
}

func NewLocationHandler(service services.LocationService, validate *validator.Validate) *LocationHandler {
	return &LocationHandler{
		service:   service,
		validator: validate,
	}
}

// --- Countries ---

// CreateCountry godoc
// @Summary  Create a country
// @Tags     locations
// @Accept   json
// @Produce  json
// @Param    country body dto.CreateCountryRequest true "Country"
// @Success  201 {object} models.Country
// @Router   /locations/countries [post]
// @Security BearerAuth
func (h *LocationHandler) CreateCountry(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceLocation, "to create country")
	if !ok {
		return
	}
	var req dto.CreateCountryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create country")
		return
	}
	c.JSON(http.StatusCreated, country)
}

// ListCountries godoc
// @Summary  List countries
// @Tags     locations
// @Produce  json
// @Success  200 {array} models.Country
// @Router   /locations/countries [get]
func (h *LocationHandler) ListCountries(c *gin.Context) {
	var req dto.ListCountriesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	countries, err := h.service.ListCountries(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve countries")
		return
	}
	c.JSON(http.StatusOK, nonNil(countries))
}

func (h *LocationHandler) GetCountry(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "country")
	if !ok {
		return
	}

	country, err := h.service.GetCountry(c.Request.Context(), middleware.ActorFromContext(c), &dto.LocationIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve country")
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *LocationHandler) UpdateCountry(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceLocation, "to update country")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "country")
	if !ok {
		return
	}
	var req dto.UpdateCountryRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	country, err := h.service.UpdateCountry(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update country")
		return
	}
	c.JSON(http.StatusOK, country)
}

// DeleteCountry godoc
// @Summary      Delete a country
// @Description  Also removes the country's states and cities.
// @Tags         locations
// @Param        id path string true "Country ID" Format(uuid)
// @Success      204 "No Content"
// @Router       /locations/countries/{id} [delete]
// @Security     BearerAuth
func (h *LocationHandler) DeleteCountry(c *gin.Context) {
	h.delete(c, "country", h.service.DeleteCountry)
}

// --- States ---

func (h *LocationHandler) CreateState(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceLocation, "to create state")
	if !ok {
		return
	}
	var req dto.CreateStateRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	state, err := h.service.CreateState(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create state")
		return
	}
	c.JSON(http.StatusCreated, state)
}

// ListStates godoc
// @Summary  List states
// @Tags     locations
// @Produce  json
// @Param    country_id query string false "Country ID" Format(uuid)
// @Success  200 {array} models.State
// @Router   /locations/states [get]
func (h *LocationHandler) ListStates(c *gin.Context) {
	var req dto.ListStatesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.CountryID = optionalUUID(req.Country)

	states, err := h.service.ListStates(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve states")
		return
	}
	c.JSON(http.StatusOK, nonNil(states))
}

func (h *LocationHandler) GetState(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "state")
	if !ok {
		return
	}

	state, err := h.service.GetState(c.Request.Context(), middleware.ActorFromContext(c), &dto.LocationIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve state")
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *LocationHandler) UpdateState(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceLocation, "to update state")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "state")
	if !ok {
		return
	}
	var req dto.UpdateStateRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	state, err := h.service.UpdateState(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update state")
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *LocationHandler) DeleteState(c *gin.Context) {
	h.delete(c, "state", h.service.DeleteState)
}

// --- Cities ---

func (h *LocationHandler) CreateCity(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionCreate, policy.ResourceLocation, "to create city")
	if !ok {
		return
	}
	var req dto.CreateCityRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to create city")
		return
	}
	c.JSON(http.StatusCreated, city)
}

// ListCities godoc
// @Summary  List cities
// @Tags     locations
// @Produce  json
// @Param    state_id query string false "State ID" Format(uuid)
// @Success  200 {array} models.City
// @Router   /locations/cities [get]
func (h *LocationHandler) ListCities(c *gin.Context) {
	var req dto.ListCitiesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.StateID = optionalUUID(req.State)

	cities, err := h.service.ListCities(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve cities")
		return
	}
	c.JSON(http.StatusOK, nonNil(cities))
}

func (h *LocationHandler) GetCity(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "city")
	if !ok {
		return
	}

	city, err := h.service.GetCity(c.Request.Context(), middleware.ActorFromContext(c), &dto.LocationIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve city")
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *LocationHandler) UpdateCity(c *gin.Context) {
	actor, ok := authorizeRequest(c, policy.ActionUpdate, policy.ResourceLocation, "to update city")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "city")
	if !ok {
		return
	}
	var req dto.UpdateCityRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id

	city, err := h.service.UpdateCity(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update city")
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *LocationHandler) DeleteCity(c *gin.Context) {
	h.delete(c, "city", h.service.DeleteCity)
}

type locationDeleter func(ctx context.Context, actor policy.Actor, req *dto.LocationIDRequest) error

func (h *LocationHandler) delete(c *gin.Context, kind string, fn locationDeleter) {
	op := "to delete " + kind
	actor, ok := authorizeRequest(c, policy.ActionDelete, policy.ResourceLocation, op)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", kind)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), actor, &dto.LocationIDRequest{ID: id}); err != nil {
		respondError(c, err, op)
		return
	}
	c.Status(http.StatusNoContent)
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T models.Country | models.State | models.City](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
