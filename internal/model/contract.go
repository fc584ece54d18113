package model

import "time"

type ContractStatus string

const (
	ContractActive    ContractStatus = "ACTIVE"
	ContractInactive  ContractStatus = "INACTIVE"
	ContractCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractInactive, ContractCancelled:
		return true
	}
	return false
}

// Contract is a service agreement signed by a client
type Contract struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	StartDate  Date           `json:"start_date" gorm:"not null"`
	EndDate    *Date          `json:"end_date,omitempty"`
	Status     ContractStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	TotalValue float64        `json:"total_value" gorm:"not null;default:0"`
	Notes      string         `json:"notes,omitempty" gorm:"type:varchar(255)"`
	ClientID   uint           `json:"client_id" gorm:"index;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
