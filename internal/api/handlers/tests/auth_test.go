package handlers_test

import (
	"net/http"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authRouter(svc *mocks.MockUserService) *gin.Engine {
	h := handlers.NewAuthHandler(svc, handlers.NewValidator())
	router := newRouter(anonymous)
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.Refresh)
	router.POST("/auth/verify", h.Verify)
	router.POST("/auth/logout", h.Logout)
	return router
}

func testTokens() *dto.TokenPair {
	return &dto.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}
}

func TestRegister(t *testing.T) {
	svc := new(mocks.MockUserService)
	user := &models.User{ID: uuid.New(), Email: "new@example.com", Role: models.RoleUser, IsActive: true}
	svc.On("Register", mock.Anything, mock.MatchedBy(func(req *dto.RegisterRequest) bool {
		return req.Email == "new@example.com" && req.FullName != nil && *req.FullName == "New User"
	})).Return(user, testTokens(), nil).Once()

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/register", map[string]interface{}{
		"email":     "new@example.com",
		"password":  "correct-horse",
		"full_name": "New User",
		"role":      "admin",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.AuthResponse](t, w)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, "access", resp.Tokens.AccessToken)
	assert.NotContains(t, w.Body.String(), "password")
	svc.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	svc := new(mocks.MockUserService)

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/register", map[string]interface{}{
		"email":    "not-an-email",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]interface{}](t, w)
	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_MalformedJSON(t *testing.T) {
	w := doRequest(authRouter(new(mocks.MockUserService)), http.MethodPost, "/auth/register", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := new(mocks.MockUserService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, nil, services.ErrConflict).Once()

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/register", map[string]interface{}{
		"email": "dup@example.com", "password": "correct-horse",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mocks.MockUserService)
		svc.On("Login", mock.Anything, &dto.LoginRequest{Email: "a@example.com", Password: "pw"}).
			Return(&models.User{ID: uuid.New(), Email: "a@example.com", Role: models.RoleAdmin}, testTokens(), nil).Once()

		w := doRequest(authRouter(svc), http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "pw"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.RoleAdmin, decode[dto.AuthResponse](t, w).User.Role)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(mocks.MockUserService)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, nil, services.ErrInvalidCredentials).Once()

		w := doRequest(authRouter(svc), http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
	})
}

func TestRefresh_ReplayedToken(t *testing.T) {
	svc := new(mocks.MockUserService)
	svc.On("Refresh", mock.Anything, &dto.RefreshRequest{RefreshToken: "old"}).Return(nil, services.ErrInvalidToken).Once()

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "old"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify(t *testing.T) {
	svc := new(mocks.MockUserService)
	userID := uuid.New()
	svc.On("VerifyToken", mock.Anything, &dto.VerifyTokenRequest{Token: "tok"}).
		Return(&dto.VerifyTokenResponse{Valid: true, UserID: userID, Role: models.RoleUser}, nil).Once()

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/verify", map[string]string{"token": "tok"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.VerifyTokenResponse](t, w)
	assert.True(t, resp.Valid)
	assert.Equal(t, userID, resp.UserID)
}

func TestLogout(t *testing.T) {
	svc := new(mocks.MockUserService)
	svc.On("Logout", mock.Anything, &dto.LogoutRequest{RefreshToken: "refresh"}).Return(nil).Once()

	w := doRequest(authRouter(svc), http.MethodPost, "/auth/logout", map[string]string{"refresh_token": "refresh"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
