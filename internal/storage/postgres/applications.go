package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = "id, job_id, applicant_id, resume, cover_letter, status, created_at, updated_at"

// applicationDetailSelect eagerly joins the job and applicant summaries.
const applicationDetailSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at,
	       j.title, j.company, u.email
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN users u ON u.id = a.applicant_id`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db Querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) WithTx(tx pgx.Tx) *ApplicationRepo {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplicationDetail(row pgx.Row) (*models.ApplicationDetail, error) {
	var d models.ApplicationDetail
	err := row.Scan(
		&d.ID,
		&d.JobID,
		&d.ApplicantID,
		&d.Resume,
		&d.CoverLetter,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Job.Title,
		&d.Job.Company,
		&d.Applicant.Email,
	)
	if err != nil {
		return nil, err
	}
	d.Job.ID = d.JobID
	d.Applicant.ID = d.ApplicantID
	return &d, nil
}

// Create inserts a submitted application. The unique (job_id, applicant_id)
// index turns a concurrent duplicate into storage.ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, resume, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.JobID,
		req.ApplicantID,
		req.Resume,
		req.CoverLetter,
		models.ApplicationStatusSubmitted,
	)
	if err != nil {
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", mapPgError(err))
	}
	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		mapped := mapPgError(err)
		switch {
		case errors.Is(mapped, storage.ErrConflict):
			log.Printf("Error creating application (unique violation) job=%s applicant=%s", req.JobID, req.ApplicantID)
			return nil, fmt.Errorf("failed to create application: already applied: %w", mapped)
		case errors.Is(mapped, storage.ErrInvalidReference):
			log.Printf("Error creating application (foreign key violation) job=%s applicant=%s", req.JobID, req.ApplicantID)
			return nil, fmt.Errorf("failed to create application: job no longer exists: %w", storage.ErrNotFound)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", mapped)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return &app, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.ApplicationDetail, error) {
	d, err := scanApplicationDetail(r.db.QueryRow(ctx, applicationDetailSelect+` WHERE a.id = $1`, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}
	return d, nil
}

func (r *ApplicationRepo) ExistsForApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	if err != nil {
		log.Printf("Error checking existing application job=%s applicant=%s: %v\n", jobID, applicantID, err)
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return exists, nil
}

// List returns applications newest first. ApplicantID, when set, restricts
// the result to a single applicant.
func (r *ApplicationRepo) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]models.ApplicationDetail, error) {
	var q listQuery
	if req.ApplicantID != nil {
		q.where("a.applicant_id = $%d", *req.ApplicantID)
	}
	if req.JobID != nil {
		q.where("a.job_id = $%d", *req.JobID)
	}
	if req.Status != nil {
		q.where("a.status = $%d", *req.Status)
	}

	query := q.build(applicationDetailSelect, "a.created_at DESC, a.id DESC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		log.Printf("Error querying applications: %v\n", err)
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationDetail{}
	for rows.Next() {
		d, err := scanApplicationDetail(rows)
		if err != nil {
			log.Printf("Error scanning applications: %v\n", err)
			return nil, fmt.Errorf("failed to scan applications: %w", err)
		}
		apps = append(apps, *d)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating applications: %v\n", err)
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query, req.Status, req.ID)
	if err != nil {
		log.Printf("Error updating application status for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	log.Printf("Application %s moved to status %s", app.ID, app.Status)
	return &app, nil
}
