package service

import (
	"context"
	"strings"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

type AddressStore interface {
	Create(ctx context.Context, a *model.Address) error
	Get(ctx context.Context, id uint) (*model.Address, error)
	List(ctx context.Context) ([]model.Address, error)
	Update(ctx context.Context, a *model.Address, omit ...string) error
	Delete(ctx context.Context, id uint) error
	ListByClient(ctx context.Context, clientID uint) ([]model.Address, error)
	SearchByCity(ctx context.Context, city string) ([]model.Address, error)
}

type AddressService struct {
	addresses AddressStore
	clients   existenceChecker
}

func NewAddressService(addresses AddressStore, clients existenceChecker) *AddressService {
	return &AddressService{addresses: addresses, clients: clients}
}

func (s *AddressService) Create(ctx context.Context, in AddressInput) (*model.Address, error) {
	if err := checkReference(ctx, s.clients, in.ClientID, "client"); err != nil {
		return nil, err
	}

	address := &model.Address{}
	applyAddress(address, in)
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("address", "create")
	return address, nil
}

func (s *AddressService) Get(ctx context.Context, id uint) (*model.Address, error) {
	return s.addresses.Get(ctx, id)
}

func (s *AddressService) List(ctx context.Context) ([]model.Address, error) {
	return s.addresses.List(ctx)
}

func (s *AddressService) Update(ctx context.Context, id uint, in AddressInput) (*model.Address, error) {
	address, err := s.addresses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkReference(ctx, s.clients, in.ClientID, "client"); err != nil {
		return nil, err
	}

	applyAddress(address, in)
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("address", "update")
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, id uint) error {
	if err := s.addresses.Delete(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("address", "delete")
	return nil
}

func (s *AddressService) ListByClient(ctx context.Context, clientID uint) ([]model.Address, error) {
	return s.addresses.ListByClient(ctx, clientID)
}

func (s *AddressService) SearchByCity(ctx context.Context, city string) ([]model.Address, error) {
	return s.addresses.SearchByCity(ctx, strings.TrimSpace(city))
}

func applyAddress(a *model.Address, in AddressInput) {
	a.Street = strings.TrimSpace(in.Street)
	a.Number = strings.TrimSpace(in.Number)
	a.City = strings.TrimSpace(in.City)
	a.State = strings.ToUpper(strings.TrimSpace(in.State))
	a.PostalCode = strings.TrimSpace(in.PostalCode)
	a.Principal = in.Principal
	a.ClientID = in.ClientID
}

// checkReference fails with a reference NotFound when the id does not exist
func checkReference(ctx context.Context, store existenceChecker, id uint, entity string) error {
	if id == 0 {
		return fieldError(entity+"_id", entity+" is required")
	}
	ok, err := store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.MissingReference(entity + " not found")
	}
	return nil
}
