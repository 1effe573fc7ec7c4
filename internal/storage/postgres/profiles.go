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

const profileColumns = "id, user_id, full_name, headline, bio, phone_number, resume_url, visibility, updated_at"

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

func NewProfileRepo(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) WithTx(tx pgx.Tx) *ProfileRepo {
	return &ProfileRepo{db: tx}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

func (r *ProfileRepo) Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, user_id, full_name, visibility, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + profileColumns

	rows, err := r.db.Query(ctx, query, uuid.New(), req.UserID, req.FullName, models.VisibilityPublic)
	if err != nil {
		log.Printf("Error creating profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to create profile: %w", mapPgError(err))
	}
	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		log.Printf("Error creating profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to create profile: %w", mapPgError(err))
	}
	return &profile, nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("Error querying profile for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning profile for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get profile: %w", mapped)
	}
	return &profile, nil
}

// Update modifies the non-nil fields of the profile owned by req.UserID.
func (r *ProfileRepo) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	var u updateSet
	if req.FullName != nil {
		u.set("full_name", *req.FullName)
	}
	if req.Headline != nil {
		u.set("headline", *req.Headline)
	}
	if req.Bio != nil {
		u.set("bio", *req.Bio)
	}
	if req.PhoneNumber != nil {
		u.set("phone_number", *req.PhoneNumber)
	}
	if req.ResumeURL != nil {
		u.set("resume_url", *req.ResumeURL)
	}
	if req.Visibility != nil {
		u.set("visibility", *req.Visibility)
	}

	if u.empty() {
		return r.GetByUserID(ctx, req.UserID)
	}

	u.clauses = append(u.clauses, "updated_at = NOW()")
	u.args = append(u.args, req.UserID)
	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE user_id = $%d RETURNING %s`,
		strings.Join(u.clauses, ", "), len(u.args), profileColumns)

	rows, err := r.db.Query(ctx, query, u.args...)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		mapped := mapPgError(err)
		if !errors.Is(mapped, storage.ErrNotFound) {
			log.Printf("Error updating profile for user %s: %v\n", req.UserID, err)
		}
		return nil, fmt.Errorf("failed to update profile: %w", mapped)
	}

	log.Printf("Profile updated for user %s", req.UserID)
	return &profile, nil
}
