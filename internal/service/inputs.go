package service

import (
	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
)

// ClientInput is the create/update payload of a client.
// Password is mandatory on create and optional on update.
type ClientInput struct {
	Name       string     `json:"name" validate:"required,max=100"`
	TaxID      string     `json:"tax_id" validate:"required,min=11,max=14"`
	Email      string     `json:"email" validate:"omitempty,email,max=100"`
	Phone      string     `json:"phone" validate:"omitempty,max=15"`
	BirthDate  model.Date `json:"birth_date"`
	CategoryID *uint      `json:"category_id"`
	Active     *bool      `json:"active"`
	Password   string     `json:"password"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=200"`
	Benefits    string `json:"benefits" validate:"omitempty,max=100"`
	Active      *bool  `json:"active"`
}

type AddressInput struct {
	Street     string `json:"street" validate:"required,max=150"`
	Number     string `json:"number" validate:"required,max=10"`
	City       string `json:"city" validate:"required,max=50"`
	State      string `json:"state" validate:"required,len=2,alpha"`
	PostalCode string `json:"postal_code" validate:"required,min=8,max=9"`
	Principal  bool   `json:"principal"`
	ClientID   uint   `json:"client_id" validate:"required"`
}

type ContractInput struct {
	StartDate  model.Date  `json:"start_date"`
	EndDate    *model.Date `json:"end_date"`
	Status     string      `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE CANCELLED"`
	TotalValue float64     `json:"total_value" validate:"gte=0"`
	Notes      string      `json:"notes" validate:"omitempty,max=255"`
	ClientID   uint        `json:"client_id" validate:"required"`
}

type ServiceInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=255"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"required,oneof=RECHARGE FINANCIAL DIGITAL"`
	Active      *bool   `json:"active"`
}

// ItemInput is the create/update payload of a contract item. The final
// value is always derived, so the payload has no field for it.
type ItemInput struct {
	Quantity   int      `json:"quantity" validate:"gt=0"`
	UnitValue  *float64 `json:"unit_value" validate:"omitempty,gt=0"`
	Discount   float64  `json:"discount" validate:"gte=0"`
	ContractID uint     `json:"contract_id" validate:"required"`
	ServiceID  uint     `json:"service_id" validate:"required"`
}

// Existence answers a tax id / email availability check
type Existence struct {
	Exists   bool   `json:"exists"`
	ClientID uint   `json:"client_id,omitempty"`
	Name     string `json:"name,omitempty"`
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func fieldError(field, msg string) error {
	return apperr.ValidationFields(msg, map[string]string{field: msg})
}
