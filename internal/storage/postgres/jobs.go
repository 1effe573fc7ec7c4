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
	"github.com/shopspring/decimal"
)

// jobSelect joins the category so responses can embed it without a second round trip.
// Salaries travel as text so numeric(12,2) values keep their exact digits.
const jobSelect = `
	SELECT j.id, j.title, j.description, j.company, j.location, j.latitude, j.longitude,
	       j.job_type, j.salary_min::text, j.salary_max::text, j.category_id, j.posted_by,
	       j.created_at, j.updated_at, c.name, c.slug
	FROM jobs j
	LEFT JOIN job_categories c ON c.id = j.category_id`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db Querier) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo with the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) *JobRepo {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

var clearableJobColumns = map[string]string{
	dto.JobFieldCategory:  "category_id",
	dto.JobFieldSalaryMin: "salary_min",
	dto.JobFieldSalaryMax: "salary_max",
	dto.JobFieldLatitude:  "latitude",
	dto.JobFieldLongitude: "longitude",
}

// numericArg sends a decimal as text, which Postgres parses into numeric without rounding.
func numericArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func parseNumeric(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric %q: %w", *s, err)
	}
	return &d, nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var (
		job          models.Job
		salaryMin    *string
		salaryMax    *string
		categoryName *string
		categorySlug *string
	)
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Company,
		&job.Location,
		&job.Latitude,
		&job.Longitude,
		&job.JobType,
		&salaryMin,
		&salaryMax,
		&job.CategoryID,
		&job.PostedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
		&categoryName,
		&categorySlug,
	)
	if err != nil {
		return nil, err
	}
	if job.SalaryMin, err = parseNumeric(salaryMin); err != nil {
		return nil, err
	}
	if job.SalaryMax, err = parseNumeric(salaryMax); err != nil {
		return nil, err
	}
	if job.CategoryID != nil && categoryName != nil {
		job.Category = &models.JobCategory{ID: *job.CategoryID, Name: *categoryName}
		if categorySlug != nil {
			job.Category.Slug = *categorySlug
		}
	}
	return &job, nil
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	id := uuid.New()
	query := `
		INSERT INTO jobs (id, title, description, company, location, latitude, longitude,
		                  job_type, salary_min, salary_max, category_id, posted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		id,
		req.Title,
		req.Description,
		req.Company,
		req.Location,
		req.Latitude,
		req.Longitude,
		req.JobType,
		numericArg(req.SalaryMin),
		numericArg(req.SalaryMax),
		req.CategoryID,
		req.PostedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrInvalidReference) {
			log.Printf("Error creating job: foreign key violation (category: %v, posted_by: %s): %v\n", req.CategoryID, req.PostedBy, err)
			return nil, fmt.Errorf("failed to create job: invalid category or poster: %w", mapped)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", mapped)
	}

	log.Printf("Job created successfully with ID: %s", id)
	return r.GetByID(ctx, &dto.GetJobByIDRequest{ID: id})
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}
	return job, nil
}

// List returns jobs newest first, filtered by search text, type and category.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	var q listQuery
	if search := strings.TrimSpace(req.Query); search != "" {
		q.where("(j.title ILIKE $%[1]d OR j.company ILIKE $%[1]d)", "%"+escapeLike(search)+"%")
	}
	if req.JobType != nil {
		q.where("j.job_type = $%d", *req.JobType)
	}
	if req.CategoryID != nil {
		q.where("j.category_id = $%d", *req.CategoryID)
	}

	query := q.build(jobSelect, "j.created_at DESC, j.id DESC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Printf("Error scanning jobs: %v\n", err)
			return nil, fmt.Errorf("failed to scan jobs: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating jobs: %v\n", err)
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var u updateSet
	if req.Title != nil {
		u.set("title", *req.Title)
	}
	if req.Description != nil {
		u.set("description", *req.Description)
	}
	if req.Company != nil {
		u.set("company", *req.Company)
	}
	if req.Location != nil {
		u.set("location", *req.Location)
	}
	if req.Latitude != nil {
		u.set("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		u.set("longitude", *req.Longitude)
	}
	if req.JobType != nil {
		u.set("job_type", *req.JobType)
	}
	if req.SalaryMin != nil {
		u.set("salary_min", numericArg(req.SalaryMin))
	}
	if req.SalaryMax != nil {
		u.set("salary_max", numericArg(req.SalaryMax))
	}
	if req.CategoryID != nil {
		u.set("category_id", *req.CategoryID)
	}
	for _, field := range req.Clear {
		column, ok := clearableJobColumns[field]
		if !ok {
			return nil, fmt.Errorf("failed to update job %s: %q cannot be cleared", req.ID, field)
		}
		u.set(column, nil)
	}

	if u.empty() {
		log.Printf("Update called for job %s with no fields to change.", req.ID)
		return r.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	}

	query, args := u.build("jobs", req.ID, true, "id")
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrNotFound) {
			log.Printf("Job not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, mapped)
	}

	log.Printf("Job updated successfully: %s", id)
	return r.GetByID(ctx, &dto.GetJobByIDRequest{ID: id})
}

// Delete removes a job by its ID. Its applications go with it (ON DELETE CASCADE).
func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, req.ID)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", req.ID)
	return nil
}
