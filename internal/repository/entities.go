package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	*Store[model.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{Store: NewStore[model.Category](db, "category")}
}

// ExistsName reports whether another category already uses name
func (r *CategoryRepository) ExistsName(ctx context.Context, name string, excludeID uint) (bool, error) {
	n, err := r.Count(ctx, Eq("name", name), NotID(excludeID))
	return n > 0, err
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	return r.First(ctx, Eq("name", name))
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]model.Category, error) {
	return r.Find(ctx, Eq("active", true))
}

func (r *CategoryRepository) SearchByName(ctx context.Context, name string) ([]model.Category, error) {
	return r.Find(ctx, ContainsFold("name", name))
}

type AddressRepository struct {
	*Store[model.Address]
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{Store: NewStore[model.Address](db, "address")}
}

func (r *AddressRepository) ListByClient(ctx context.Context, clientID uint) ([]model.Address, error) {
	return r.Find(ctx, Eq("client_id", clientID))
}

func (r *AddressRepository) SearchByCity(ctx context.Context, city string) ([]model.Address, error) {
	return r.Find(ctx, ContainsFold("city", city))
}

type ContractRepository struct {
	*Store[model.Contract]
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{Store: NewStore[model.Contract](db, "contract")}
}

func (r *ContractRepository) ListByClient(ctx context.Context, clientID uint) ([]model.Contract, error) {
	return r.Find(ctx, Eq("client_id", clientID))
}

func (r *ContractRepository) ListByStatus(ctx context.Context, status model.ContractStatus) ([]model.Contract, error) {
	return r.Find(ctx, Eq("status", status))
}

// DeleteCascade removes the contract and its items in one transaction
func (r *ContractRepository) DeleteCascade(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&model.Item{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Contract{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.notFound()
		}
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return r.internal("delete", err)
	}
	return nil
}

type ServiceRepository struct {
	*Store[model.Service]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{Store: NewStore[model.Service](db, "service")}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]model.Service, error) {
	return r.Find(ctx, Eq("active", true))
}

func (r *ServiceRepository) SearchByName(ctx context.Context, name string) ([]model.Service, error) {
	return r.Find(ctx, ContainsFold("name", name))
}

func (r *ServiceRepository) ListByCategory(ctx context.Context, category model.ServiceCategory) ([]model.Service, error) {
	return r.Find(ctx, Eq("category", category))
}

type ItemRepository struct {
	*Store[model.Item]
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{Store: NewStore[model.Item](db, "item")}
}

func (r *ItemRepository) ListByContract(ctx context.Context, contractID uint) ([]model.Item, error) {
	return r.Find(ctx, Eq("contract_id", contractID))
}

func (r *ItemRepository) ListByService(ctx context.Context, serviceID uint) ([]model.Item, error) {
	return r.Find(ctx, Eq("service_id", serviceID))
}

// CountByService returns how many items reference the service
func (r *ItemRepository) CountByService(ctx context.Context, serviceID uint) (int64, error) {
	return r.Count(ctx, Eq("service_id", serviceID))
}
