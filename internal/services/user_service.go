package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/security"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

type userService struct {
	store  storage.Store
	tokens storage.TokenStore
	jwt    *security.TokenManager
}

// NewUserService creates a new instance of UserService.
func NewUserService(store storage.Store, tokens storage.TokenStore, jwt *security.TokenManager) UserService {
	return &userService{store: store, tokens: tokens, jwt: jwt}
}

// Register always creates a regular user together with an empty profile.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenPair, error) {
	user, err := s.createWithProfile(ctx, req.Email, req.Password, models.RoleUser, false, req.FullName)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// CreateAdmin is the only way an admin account comes into existence.
func (s *userService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.User, error) {
	return s.createWithProfile(ctx, req.Email, req.Password, models.RoleAdmin, true, nil)
}

func (s *userService) createWithProfile(ctx context.Context, email, password string, role models.Role, verified bool, fullName *string) (*models.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	var user *models.User
	// --- Transaction Start ---
	err = s.store.RunInTx(ctx, func(tx storage.Store) error {
		created, err := tx.Users().Create(ctx, &dto.CreateUserRequest{
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			IsVerified:   verified,
		})
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return fmt.Errorf("%w: email already registered", ErrConflict)
			}
			return mapRepoError(err, "creating user")
		}
		if _, err := tx.Profiles().Create(ctx, &dto.CreateProfileRequest{UserID: created.ID, FullName: fullName}); err != nil {
			return mapRepoError(err, "creating profile")
		}
		user = created
		return nil
	})
	// --- End Transaction ---
	if err != nil {
		return nil, err
	}
	log.Printf("UserService: Created %s %s", user.Role, user.ID)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPair, error) {
	user, err := s.store.Users().GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: req.Email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := security.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, security.ErrPasswordMismatch) {
			log.Printf("Error comparing password for %s: %v", req.Email, err)
		}
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Printf("Login attempt failed for email %s: account disabled", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh rotates a refresh token. The presented token is revoked first, so
// replaying it (or racing two refreshes) yields ErrInvalidToken for all but one caller.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPair, error) {
	claims, err := s.jwt.Parse(req.RefreshToken, security.TokenTypeRefresh)
	if err != nil {
		log.Printf("Refresh: rejected token: %v", err)
		return nil, ErrInvalidToken
	}
	userID, _ := claims.UserID()

	removed, err := s.tokens.Revoke(ctx, userID, claims.ID)
	if err != nil {
		log.Printf("Refresh: Error revoking token %s: %v", claims.ID, err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}
	if !removed {
		log.Printf("Refresh: token %s for user %s is not in the allow-list", claims.ID, userID)
		return nil, ErrInvalidToken
	}

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// VerifyToken accepts either token type and reports whose it is. A refresh
// token must also still be in the allow-list.
func (s *userService) VerifyToken(ctx context.Context, req *dto.VerifyTokenRequest) (*dto.VerifyTokenResponse, error) {
	claims, err := s.jwt.Parse(req.Token, security.TokenTypeAccess)
	if errors.Is(err, security.ErrWrongTokenType) {
		claims, err = s.jwt.Parse(req.Token, security.TokenTypeRefresh)
	}
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, _ := claims.UserID()

	if claims.Type == security.TokenTypeRefresh {
		live, err := s.tokens.Exists(ctx, userID, claims.ID)
		if err != nil {
			log.Printf("VerifyToken: Error looking up token %s: %v", claims.ID, err)
			return nil, fmt.Errorf("internal error verifying token: %w", err)
		}
		if !live {
			return nil, ErrInvalidToken
		}
	}
	return &dto.VerifyTokenResponse{Valid: true, UserID: userID, Role: claims.Role}, nil
}

// Logout revokes the refresh token. Revoking an already revoked token is not an error.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	claims, err := s.jwt.Parse(req.RefreshToken, security.TokenTypeRefresh)
	if err != nil {
		return ErrInvalidToken
	}
	userID, _ := claims.UserID()
	if _, err := s.tokens.Revoke(ctx, userID, claims.ID); err != nil {
		log.Printf("Logout: Error revoking token %s: %v", claims.ID, err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

// Authenticate trusts the token for identity only; the role and the active
// flag are read from the store so a demoted or disabled user loses access at once.
func (s *userService) Authenticate(ctx context.Context, accessToken string) (policy.Actor, error) {
	claims, err := s.jwt.Parse(accessToken, security.TokenTypeAccess)
	if err != nil {
		return policy.Anonymous(), ErrInvalidToken
	}
	userID, _ := claims.UserID()
	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return policy.Anonymous(), err
	}
	return policy.NewActor(user.ID, user.Role), nil
}

func (s *userService) Me(ctx context.Context, actor policy.Actor) (*models.User, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthorized
	}
	user, err := s.store.Users().GetByID(ctx, &dto.GetUserByIDRequest{ID: actor.ID})
	if err != nil {
		return nil, mapRepoError(err, "getting current user")
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, actor policy.Actor, req *dto.GetUserByIDRequest) (*models.User, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceUserDirectory, "GetUserByID"); err != nil {
		return nil, err
	}
	user, err := s.store.Users().GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, actor policy.Actor, req *dto.ListUsersRequest) ([]models.User, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceUserDirectory, "ListUsers"); err != nil {
		return nil, err
	}
	users, err := s.store.Users().List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

func (s *userService) activeUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, &dto.GetUserByIDRequest{ID: id})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, mapRepoError(err, "loading token subject")
	}
	if !user.IsActive {
		log.Printf("Token subject %s is disabled", user.ID)
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenPair, error) {
	access, err := s.jwt.IssueAccess(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwt.IssueRefresh(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating refresh token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.tokens.Save(ctx, user.ID, refresh.ID, s.jwt.RefreshTTL()); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("internal error storing refresh token: %w", err)
	}
	return &dto.TokenPair{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwt.AccessTTL().Seconds()),
	}, nil
}
