package model

import "time"

// Item is a contract line: a quantity of a catalog service.
// FinalValue is derived from the other amounts and never taken from input.
type Item struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitValue  float64   `json:"unit_value" gorm:"not null"`
	Discount   float64   `json:"discount" gorm:"not null;default:0"`
	FinalValue float64   `json:"final_value" gorm:"not null"`
	ContractID uint      `json:"contract_id" gorm:"index;not null"`
	ServiceID  uint      `json:"service_id" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
