package service

import (
	"context"
	"strings"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

type CategoryStore interface {
	Create(ctx context.Context, c *model.Category) error
	Get(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category, omit ...string) error
	Delete(ctx context.Context, id uint) error
	ExistsName(ctx context.Context, name string, excludeID uint) (bool, error)
	ListActive(ctx context.Context) ([]model.Category, error)
	SearchByName(ctx context.Context, name string) ([]model.Category, error)
}

// categoryUsage counts the clients assigned to a category
type categoryUsage interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type CategoryService struct {
	categories CategoryStore
	clients    categoryUsage
}

func NewCategoryService(categories CategoryStore, clients categoryUsage) *CategoryService {
	return &CategoryService{categories: categories, clients: clients}
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.checkName(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        in.Name,
		Description: in.Description,
		Benefits:    in.Benefits,
		Active:      boolOr(in.Active, true),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("category", "create")
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*model.Category, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.checkName(ctx, in.Name, id); err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Description = in.Description
	category.Benefits = in.Benefits
	category.Active = boolOr(in.Active, category.Active)
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("category", "update")
	return category, nil
}

// Delete removes a category no client is assigned to
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.clients.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("category is assigned to clients and cannot be deleted")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("category", "delete")
	return nil
}

func (s *CategoryService) ListActive(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *CategoryService) SearchByName(ctx context.Context, name string) ([]model.Category, error) {
	return s.categories.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *CategoryService) checkName(ctx context.Context, name string, excludeID uint) error {
	taken, err := s.categories.ExistsName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Duplicate("category name already registered: " + name)
	}
	return nil
}
