package service

import (
	"context"
	"strings"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

type ServiceStore interface {
	Create(ctx context.Context, s *model.Service) error
	Get(ctx context.Context, id uint) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Update(ctx context.Context, s *model.Service, omit ...string) error
	Delete(ctx context.Context, id uint) error
	ListActive(ctx context.Context) ([]model.Service, error)
	SearchByName(ctx context.Context, name string) ([]model.Service, error)
	ListByCategory(ctx context.Context, category model.ServiceCategory) ([]model.Service, error)
}

// serviceUsage counts the contract items billing a service
type serviceUsage interface {
	CountByService(ctx context.Context, serviceID uint) (int64, error)
}

// CatalogService manages the services catalog
type CatalogService struct {
	services ServiceStore
	items    serviceUsage
}

func NewCatalogService(services ServiceStore, items serviceUsage) *CatalogService {
	return &CatalogService{services: services, items: items}
}

func (s *CatalogService) Create(ctx context.Context, in ServiceInput) (*model.Service, error) {
	svc := &model.Service{Active: true}
	if err := applyService(svc, in); err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("service", "create")
	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*model.Service, error) {
	return s.services.Get(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]model.Service, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) Update(ctx context.Context, id uint, in ServiceInput) (*model.Service, error) {
	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyService(svc, in); err != nil {
		return nil, err
	}
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("service", "update")
	return svc, nil
}

// Delete removes a service no contract item refers to
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.services.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.items.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("service is billed by contract items and cannot be deleted")
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("service", "delete")
	return nil
}

func (s *CatalogService) ListActive(ctx context.Context) ([]model.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *CatalogService) SearchByName(ctx context.Context, name string) ([]model.Service, error) {
	return s.services.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]model.Service, error) {
	c, err := parseServiceCategory(category)
	if err != nil {
		return nil, err
	}
	return s.services.ListByCategory(ctx, c)
}

func applyService(svc *model.Service, in ServiceInput) error {
	if in.Price <= 0 {
		return fieldError("price", "price must be positive")
	}
	category, err := parseServiceCategory(in.Category)
	if err != nil {
		return err
	}

	svc.Name = strings.TrimSpace(in.Name)
	svc.Description = in.Description
	svc.Price = in.Price
	svc.Category = category
	svc.Active = boolOr(in.Active, svc.Active)
	return nil
}

func parseServiceCategory(raw string) (model.ServiceCategory, error) {
	c := model.ServiceCategory(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fieldError("category", "category must be one of RECHARGE, FINANCIAL, DIGITAL")
	}
	return c, nil
}
