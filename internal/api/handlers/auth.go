package handlers

import (
	"net/http"

	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler serves the token endpoints.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a regular user with an empty profile and returns a token pair. The role is always "user".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Registration details"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  map[string]interface{} "Validation failed"
// @Failure      409  {object}  map[string]string "Email already registered"
// @Failure      429  {object}  map[string]string "Too many requests"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, tokens, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: MapUserModelToUserResponse(user), Tokens: *tokens})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email and password for an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Credentials"
// @Success      200  {object}  dto.AuthResponse
// @Failure      400  {object}  map[string]interface{} "Validation failed"
// @Failure      401  {object}  map[string]string "Invalid email or password"
// @Failure      429  {object}  map[string]string "Too many requests"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "to log in")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: MapUserModelToUserResponse(user), Tokens: *tokens})
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Description  The presented refresh token is revoked and a new pair is issued. Replaying a rotated token fails.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.TokenPair
// @Failure      401  {object}  map[string]string "Token is invalid or expired"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "to refresh token")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Verify godoc
// @Summary      Verify a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body dto.VerifyTokenRequest true "Access or refresh token"
// @Success      200  {object}  dto.VerifyTokenResponse
// @Failure      401  {object}  map[string]string "Token is invalid or expired"
// @Router       /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyTokenRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	resp, err := h.service.VerifyToken(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "to verify token")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the refresh token. Revoking an already revoked token succeeds.
// @Tags         auth
// @Accept       json
// @Param        token body dto.LogoutRequest true "Refresh token"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string "Token is invalid or expired"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondError(c, err, "to log out")
		return
	}

	c.Status(http.StatusNoContent)
}
