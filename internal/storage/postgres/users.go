package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, email, password_hash, role, is_active, is_verified, created_at, updated_at"

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) *UserRepo {
	return &UserRepo{db: tx}
}

var _ storage.UserRepository = (*UserRepo)(nil)

// Create inserts a user. Emails are stored lower-cased so uniqueness is case-insensitive.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, role, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, NOW(), NOW())
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		strings.ToLower(strings.TrimSpace(req.Email)),
		req.PasswordHash,
		req.Role,
		req.IsVerified,
	)
	if err != nil {
		log.Printf("Error creating user %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", mapPgError(err))
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrConflict) {
			log.Printf("Error creating user: email %s already registered", req.Email)
		} else {
			log.Printf("Error creating user %s: %v\n", req.Email, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", mapped)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, req.ID)
	if err != nil {
		log.Printf("Error querying user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		log.Printf("Error querying user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error) {
	var q listQuery
	query := q.build(`SELECT `+userColumns+` FROM users`, "created_at ASC, id ASC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		log.Printf("Error querying users: %v\n", err)
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error scanning users: %v\n", err)
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
