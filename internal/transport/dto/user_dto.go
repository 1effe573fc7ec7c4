package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Auth Request DTOs ---

// RegisterRequest creates a regular user. The role is never taken from the client.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- User Request DTOs ---

// CreateUserRequest is the storage-level insert; the password is already hashed.
type CreateUserRequest struct {
	Email        string
	PasswordHash string
	Role         models.Role
	IsVerified   bool
}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ListUsersRequest struct {
	Limit  int `form:"limit,default=20" validate:"min=1,max=100"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}

// CreateAdminRequest is used by the command line only.
type CreateAdminRequest struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

// --- Response DTOs ---

type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	IsActive   bool        `json:"is_active"`
	IsVerified bool        `json:"is_verified"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

type VerifyTokenResponse struct {
	Valid  bool        `json:"valid"`
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
}
