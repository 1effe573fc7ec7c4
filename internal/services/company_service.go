package services

import (
	"context"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type companyService struct {
	store storage.Store
}

func NewCompanyService(store storage.Store) CompanyService {
	return &companyService{store: store}
}

// CreateCompany records the acting admin as owner. Ownership never changes afterwards.
func (s *companyService) CreateCompany(ctx context.Context, actor policy.Actor, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if err := authorize(actor, policy.ActionCreate, policy.ResourceCompany, "CreateCompany"); err != nil {
		return nil, err
	}
	create := *req
	create.OwnerID = actor.ID

	var company *models.Company
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		c, err := tx.Companies().Create(ctx, &create)
		if err != nil {
			return mapRepoError(err, "creating company")
		}
		company = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("CompanyService: Created company %s owned by %s", company.ID, company.OwnerID)
	return company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, actor policy.Actor, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceCompany, "GetCompanyByID"); err != nil {
		return nil, err
	}
	company, err := s.store.Companies().GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting company by ID")
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, actor policy.Actor, req *dto.ListCompaniesRequest) ([]models.Company, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceCompany, "ListCompanies"); err != nil {
		return nil, err
	}
	companies, err := s.store.Companies().List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing companies")
	}
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, actor policy.Actor, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if err := authorize(actor, policy.ActionUpdate, policy.ResourceCompany, "UpdateCompany"); err != nil {
		return nil, err
	}
	var company *models.Company
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		c, err := tx.Companies().Update(ctx, req)
		if err != nil {
			return mapRepoError(err, "updating company")
		}
		company = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, actor policy.Actor, req *dto.DeleteCompanyRequest) error {
	if err := authorize(actor, policy.ActionDelete, policy.ResourceCompany, "DeleteCompany"); err != nil {
		return err
	}
	return s.store.RunInTx(ctx, func(tx storage.Store) error {
		if err := tx.Companies().Delete(ctx, req); err != nil {
			return mapRepoError(err, "deleting company")
		}
		return nil
	})
}
