package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler serves the user directory and profiles.
type UserHandler struct {
	users     services.UserService
	profiles  services.ProfileService
	validator *validator.Validate
}

func NewUserHandler(users services.UserService, profiles services.ProfileService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		users:     users,
		profiles:  profiles,
		validator: validate,
	}
}

// GetMe godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200 {object} dto.UserResponse
// @Failure      401 {object} map[string]string "Unauthorized"
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.Me(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "to retrieve current user")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit  query int false "Page size" default(20)
// @Param        offset query int false "Offset" default(0)
// @Success      200 {array}  dto.UserResponse
// @Failure      401 {object} map[string]string "Unauthorized"
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	users, err := h.users.List(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		respondError(c, err, "to retrieve users")
		return
	}
	c.JSON(http.StatusOK, mapSlice(users, MapUserModelToUserResponse))
}

// GetUserByID godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" Format(uuid)
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} map[string]string "Invalid ID format"
// @Failure      404 {object} map[string]string "User not found"
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), middleware.ActorFromContext(c), &dto.GetUserByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "to retrieve user")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// GetUserProfile godoc
// @Summary      Get a user's profile
// @Description  Only the profile owner may read it.
// @Tags         profiles
// @Produce      json
// @Param        id path string true "User ID" Format(uuid)
// @Success      200 {object} dto.ProfileResponse
// @Failure      403 {object} map[string]string "Forbidden"
// @Failure      404 {object} map[string]string "Profile not found"
// @Router       /users/{id}/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		respondError(c, err, "to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}

// GetMyProfile godoc
// @Summary      Current user's profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} dto.ProfileResponse
// @Router       /profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetMyProfile(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	profile, err := h.profiles.Get(c.Request.Context(), actor, actor.ID)
	if err != nil {
		respondError(c, err, "to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}

// UpdateMyProfile godoc
// @Summary      Update the current user's profile
// @Description  Partial update; omitted fields are left unchanged.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile body dto.UpdateProfileRequest true "Fields to update"
// @Success      200 {object} dto.ProfileResponse
// @Failure      400 {object} map[string]interface{} "Validation failed"
// @Router       /profile [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var req dto.UpdateProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = actor.ID

	profile, err := h.profiles.Update(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "to update profile")
		return
	}
	c.JSON(http.StatusOK, MapProfileModelToResponse(profile))
}
