package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyColumns = "id, owner_id, name, description, industry, website_url, logo, created_at, updated_at"

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

func NewCompanyRepo(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) WithTx(tx pgx.Tx) *CompanyRepo {
	return &CompanyRepo{db: tx}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (id, owner_id, name, description, industry, website_url, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + companyColumns

	company, err := queryOne[models.Company](ctx, r.db, "creating company", query,
		uuid.New(), req.OwnerID, req.Name, req.Description, req.Industry, req.WebsiteURL, req.Logo)
	if err != nil {
		return nil, err
	}

	log.Printf("Company created successfully with ID: %s", company.ID)
	return company, nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	return queryOne[models.Company](ctx, r.db, fmt.Sprintf("getting company %s", req.ID),
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, req.ID)
}

func (r *CompanyRepo) List(ctx context.Context, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	var q listQuery
	if search := strings.TrimSpace(req.Query); search != "" {
		q.where("name ILIKE $%d", "%"+escapeLike(search)+"%")
	}
	query := q.build(`SELECT `+companyColumns+` FROM companies`, "name ASC, id ASC", req.Limit, req.Offset)

	return queryMany[models.Company](ctx, r.db, "listing companies", query, q.args...)
}

// Update never touches owner_id.
func (r *CompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	var u updateSet
	if req.Name != nil {
		u.set("name", *req.Name)
	}
	if req.Description != nil {
		u.set("description", *req.Description)
	}
	if req.Industry != nil {
		u.set("industry", *req.Industry)
	}
	if req.WebsiteURL != nil {
		u.set("website_url", *req.WebsiteURL)
	}
	if req.Logo != nil {
		u.set("logo", *req.Logo)
	}
	if u.empty() {
		return r.GetByID(ctx, &dto.GetCompanyByIDRequest{ID: req.ID})
	}

	query, args := u.build("companies", req.ID, true, companyColumns)
	company, err := queryOne[models.Company](ctx, r.db, fmt.Sprintf("updating company %s", req.ID), query, args...)
	if err != nil {
		return nil, err
	}

	log.Printf("Company updated successfully: %s", company.ID)
	return company, nil
}

func (r *CompanyRepo) Delete(ctx context.Context, req *dto.DeleteCompanyRequest) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, req.ID)
	if err != nil {
		log.Printf("Error deleting company %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete company %s: %w", req.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Company deleted successfully: %s", req.ID)
	return nil
}
