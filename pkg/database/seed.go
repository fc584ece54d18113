package database

import (
	"context"
	"fmt"

	"github.com/Tinaglini/RV-Project/internal/model"
	"gorm.io/gorm"
)

// IndividualCategory is the category assigned to clients created without one
const IndividualCategory = "PESSOA_FISICA"

var seedCategories = []model.Category{
	{Name: IndividualCategory, Description: "Clientes pessoa física", Benefits: "Taxas reduzidas, atendimento personalizado", Active: true},
	{Name: "PESSOA_JURIDICA", Description: "Clientes pessoa jurídica", Benefits: "Desconto por volume, relatórios detalhados", Active: true},
}

var seedServices = []model.Service{
	{Name: "Recarga de Celular", Description: "Recarga para todas as operadoras", Price: 10.0, Category: model.ServiceRecharge, Active: true},
	{Name: "Pagamento de Boletos", Description: "Pagamento de contas e boletos", Price: 2.5, Category: model.ServiceFinancial, Active: true},
	{Name: "Transferência PIX", Description: "Transferências via PIX", Price: 1.0, Category: model.ServiceFinancial, Active: true},
	{Name: "Cartão Pré-pago", Description: "Emissão de cartão pré-pago", Price: 15.0, Category: model.ServiceDigital, Active: true},
}

// Seed fills the empty category and service tables with the initial data.
// Tables that already hold rows are left alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, &model.Category{}, seedCategories); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := seedTable(tx, &model.Service{}, seedServices); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		return nil
	})
}

func seedTable[T any](tx *gorm.DB, table interface{}, rows []T) error {
	var n int64
	if err := tx.Model(table).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	// copy so repeated seeding never reuses assigned ids
	batch := append([]T(nil), rows...)
	return tx.Create(&batch).Error
}

// ResolveDefaultCategory returns configured when set, otherwise the id of the
// individual category. It returns 0 when neither exists.
func ResolveDefaultCategory(ctx context.Context, db *gorm.DB, configured uint) (uint, error) {
	if configured != 0 {
		var n int64
		if err := db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", configured).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("default category %d does not exist", configured)
		}
		return configured, nil
	}

	var category model.Category
	err := db.WithContext(ctx).Where("name = ?", IndividualCategory).Limit(1).Find(&category).Error
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}
