package model

import "time"

type ServiceCategory string

const (
	ServiceRecharge  ServiceCategory = "RECHARGE"
	ServiceFinancial ServiceCategory = "FINANCIAL"
	ServiceDigital   ServiceCategory = "DIGITAL"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case ServiceRecharge, ServiceFinancial, ServiceDigital:
		return true
	}
	return false
}

// Service is an entry of the services catalog
type Service struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:varchar(255);not null"`
	Price       float64         `json:"price" gorm:"not null"`
	Category    ServiceCategory `json:"category" gorm:"type:varchar(50);not null;index"`
	Active      bool            `json:"active" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
