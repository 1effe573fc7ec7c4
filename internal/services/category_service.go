package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type categoryService struct {
	store storage.Store
}

func NewCategoryService(store storage.Store) CategoryService {
	return &categoryService{store: store}
}

func (s *categoryService) CreateCategory(ctx context.Context, actor policy.Actor, req *dto.CreateCategoryRequest) (*models.JobCategory, error) {
	if err := authorize(actor, policy.ActionCreate, policy.ResourceCategory, "CreateCategory"); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	source := name
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		source = *req.Slug
	}
	slug := Slugify(source)
	if slug == "" {
		return nil, fmt.Errorf("%w: cannot derive a slug from %q", ErrInvalidArgument, source)
	}

	var category *models.JobCategory
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		c, err := tx.Categories().Create(ctx, name, slug)
		if err != nil {
			return mapRepoError(err, "creating category")
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("CategoryService: Created category %s (%s)", category.ID, category.Slug)
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, actor policy.Actor, req *dto.GetCategoryByIDRequest) (*models.JobCategory, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceCategory, "GetCategoryByID"); err != nil {
		return nil, err
	}
	category, err := s.store.Categories().GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting category by ID")
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, actor policy.Actor, req *dto.ListCategoriesRequest) ([]models.JobCategory, error) {
	if err := authorize(actor, policy.ActionRead, policy.ResourceCategory, "ListCategories"); err != nil {
		return nil, err
	}
	categories, err := s.store.Categories().List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing categories")
	}
	return categories, nil
}

// UpdateCategory keeps the existing slug unless a new one is supplied.
func (s *categoryService) UpdateCategory(ctx context.Context, actor policy.Actor, req *dto.UpdateCategoryRequest) (*models.JobCategory, error) {
	if err := authorize(actor, policy.ActionUpdate, policy.ResourceCategory, "UpdateCategory"); err != nil {
		return nil, err
	}
	update := dto.UpdateCategoryRequest{ID: req.ID}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", ErrInvalidArgument)
		}
		update.Name = &name
	}
	if req.Slug != nil {
		slug := Slugify(*req.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: invalid slug %q", ErrInvalidArgument, *req.Slug)
		}
		update.Slug = &slug
	}

	var category *models.JobCategory
	err := s.store.RunInTx(ctx, func(tx storage.Store) error {
		c, err := tx.Categories().Update(ctx, &update)
		if err != nil {
			return mapRepoError(err, "updating category")
		}
		category = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory leaves jobs in place; their category reference is cleared.
func (s *categoryService) DeleteCategory(ctx context.Context, actor policy.Actor, req *dto.DeleteCategoryRequest) error {
	if err := authorize(actor, policy.ActionDelete, policy.ResourceCategory, "DeleteCategory"); err != nil {
		return err
	}
	return s.store.RunInTx(ctx, func(tx storage.Store) error {
		if err := tx.Categories().Delete(ctx, req); err != nil {
			return mapRepoError(err, "deleting category")
		}
		return nil
	})
}
