package service

import (
	"context"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/internal/pricing"
	"github.com/Tinaglini/RV-Project/prometheus"
)

type ItemStore interface {
	Create(ctx context.Context, i *model.Item) error
	Get(ctx context.Context, id uint) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, i *model.Item, omit ...string) error
	Delete(ctx context.Context, id uint) error
	ListByContract(ctx context.Context, contractID uint) ([]model.Item, error)
	ListByService(ctx context.Context, serviceID uint) ([]model.Item, error)
}

// serviceLookup loads the catalog entry an item bills
type serviceLookup interface {
	Get(ctx context.Context, id uint) (*model.Service, error)
}

type ItemService struct {
	items     ItemStore
	contracts existenceChecker
	services  serviceLookup
}

func NewItemService(items ItemStore, contracts existenceChecker, services serviceLookup) *ItemService {
	return &ItemService{items: items, contracts: contracts, services: services}
}

func (s *ItemService) Create(ctx context.Context, in ItemInput) (*model.Item, error) {
	item := &model.Item{}
	if err := s.apply(ctx, item, in); err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("item", "create")
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.items.List(ctx)
}

// Update replaces the amounts of an item and recomputes its final value
func (s *ItemService) Update(ctx context.Context, id uint, in ItemInput) (*model.Item, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, in); err != nil {
		return nil, err
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("item", "update")
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id uint) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("item", "delete")
	return nil
}

func (s *ItemService) ListByContract(ctx context.Context, contractID uint) ([]model.Item, error) {
	return s.items.ListByContract(ctx, contractID)
}

func (s *ItemService) ListByService(ctx context.Context, serviceID uint) ([]model.Item, error) {
	return s.items.ListByService(ctx, serviceID)
}

func (s *ItemService) apply(ctx context.Context, item *model.Item, in ItemInput) error {
	if in.Quantity <= 0 {
		return fieldError("quantity", "quantity must be positive")
	}
	if in.UnitValue != nil && *in.UnitValue <= 0 {
		return fieldError("unit_value", "unit value must be positive")
	}
	if in.Discount < 0 {
		return fieldError("discount", "discount cannot be negative")
	}

	if err := checkReference(ctx, s.contracts, in.ContractID, "contract"); err != nil {
		return err
	}
	if in.ServiceID == 0 {
		return fieldError("service_id", "service is required")
	}
	svc, err := s.services.Get(ctx, in.ServiceID)
	if err != nil {
		if appErr, ok := apperr.As(err); ok && appErr.Kind == apperr.KindNotFound {
			return apperr.MissingReference("service not found")
		}
		return err
	}

	unitValue := svc.Price
	if in.UnitValue != nil {
		unitValue = *in.UnitValue
	}

	item.Quantity = in.Quantity
	item.UnitValue = unitValue
	item.Discount = in.Discount
	item.FinalValue = pricing.ComputeFinalValue(in.Quantity, unitValue, in.Discount)
	item.ContractID = in.ContractID
	item.ServiceID = in.ServiceID
	return nil
}
