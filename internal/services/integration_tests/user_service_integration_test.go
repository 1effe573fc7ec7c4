package integration_tests

import (
	"context"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/security"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/redisstore"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) services.UserService {
	t.Helper()
	store, _ := getTestStore(t)
	rdb := getTestRedis(t)
	jwt := security.NewTokenManager("integration-secret", "jobboard-test", 5*time.Minute, time.Hour)
	return services.NewUserService(store, redisstore.NewTokenStore(rdb), jwt)
}

func TestUserService_AuthFlow(t *testing.T) {
	users := setupUserService(t)
	ctx := context.Background()

	registered, tokens, err := users.Register(ctx, &dto.RegisterRequest{Email: "New@Example.com", Password: "password123", FullName: ptrString("New User")})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", registered.Email)
	assert.Equal(t, models.RoleUser, registered.Role)

	_, _, err = users.Register(ctx, &dto.RegisterRequest{Email: "new@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrConflict)

	actor, err := users.Authenticate(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, policy.NewActor(registered.ID, models.RoleUser), actor)

	_, loginTokens, err := users.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = users.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	rotated, err := users.Refresh(ctx, &dto.RefreshRequest{RefreshToken: loginTokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, loginTokens.RefreshToken, rotated.RefreshToken)

	_, err = users.Refresh(ctx, &dto.RefreshRequest{RefreshToken: loginTokens.RefreshToken})
	assert.ErrorIs(t, err, services.ErrInvalidToken, "a rotated refresh token cannot be replayed")

	verified, err := users.VerifyToken(ctx, &dto.VerifyTokenRequest{Token: rotated.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, verified.UserID)

	require.NoError(t, users.Logout(ctx, &dto.LogoutRequest{RefreshToken: rotated.RefreshToken}))
	require.NoError(t, users.Logout(ctx, &dto.LogoutRequest{RefreshToken: rotated.RefreshToken}))
	_, err = users.VerifyToken(ctx, &dto.VerifyTokenRequest{Token: rotated.RefreshToken})
	assert.ErrorIs(t, err, services.ErrInvalidToken, "a revoked refresh token no longer verifies")
	_, err = users.Refresh(ctx, &dto.RefreshRequest{RefreshToken: rotated.RefreshToken})
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestUserService_CreateAdmin(t *testing.T) {
	users := setupUserService(t)
	ctx := context.Background()

	admin, err := users.CreateAdmin(ctx, &dto.CreateAdminRequest{Email: "root@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsVerified)

	_, tokens, err := users.Login(ctx, &dto.LoginRequest{Email: "root@example.com", Password: "password123"})
	require.NoError(t, err)
	actor, err := users.Authenticate(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.True(t, actor.IsAdmin())
}
