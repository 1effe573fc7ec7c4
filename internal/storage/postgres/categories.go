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

const categoryColumns = "id, name, slug"

// CategoryRepo implements the storage.CategoryRepository interface using PostgreSQL.
type CategoryRepo struct {
	db Querier
}

func NewCategoryRepo(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) WithTx(tx pgx.Tx) *CategoryRepo {
	return &CategoryRepo{db: tx}
}

var _ storage.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(ctx context.Context, name, slug string) (*models.JobCategory, error) {
	query := `INSERT INTO job_categories (id, name, slug) VALUES ($1, $2, $3) RETURNING ` + categoryColumns

	var c models.JobCategory
	err := r.db.QueryRow(ctx, query, uuid.New(), name, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		log.Printf("Error creating category %q: %v\n", name, err)
		return nil, fmt.Errorf("failed to create category: %w", mapPgError(err))
	}

	log.Printf("Category created successfully with ID: %s", c.ID)
	return &c, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error) {
	var c models.JobCategory
	err := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM job_categories WHERE id = $1`, req.ID).
		Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning category by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get category %s: %w", req.ID, err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context, req *dto.ListCategoriesRequest) ([]models.JobCategory, error) {
	var q listQuery
	query := q.build(`SELECT `+categoryColumns+` FROM job_categories`, "name ASC", req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		log.Printf("Error querying categories: %v\n", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobCategory])
	if err != nil {
		log.Printf("Error scanning categories: %v\n", err)
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	if categories == nil {
		categories = []models.JobCategory{}
	}
	return categories, nil
}

func (r *CategoryRepo) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.JobCategory, error) {
	var u updateSet
	if req.Name != nil {
		u.set("name", *req.Name)
	}
	if req.Slug != nil {
		u.set("slug", *req.Slug)
	}
	if u.empty() {
		return r.GetByID(ctx, &dto.GetCategoryByIDRequest{ID: req.ID})
	}

	query, args := u.build("job_categories", req.ID, false, categoryColumns)
	var c models.JobCategory
	if err := r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		mapped := mapPgError(err)
		if !errors.Is(mapped, storage.ErrNotFound) {
			log.Printf("Error updating category %s: %v\n", req.ID, err)
		}
		return nil, fmt.Errorf("failed to update category %s: %w", req.ID, mapped)
	}

	log.Printf("Category updated successfully: %s", c.ID)
	return &c, nil
}

// Delete removes a category. Jobs referencing it keep existing with a NULL category.
func (r *CategoryRepo) Delete(ctx context.Context, req *dto.DeleteCategoryRequest) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_categories WHERE id = $1`, req.ID)
	if err != nil {
		log.Printf("Error deleting category %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete category %s: %w", req.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Category deleted successfully: %s", req.ID)
	return nil
}
