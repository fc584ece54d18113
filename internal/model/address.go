package model

import "time"

// Address belongs to exactly one client
type Address struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Street     string    `json:"street" gorm:"type:varchar(150);not null"`
	Number     string    `json:"number" gorm:"type:varchar(10);not null"`
	City       string    `json:"city" gorm:"type:varchar(50);not null"`
	State      string    `json:"state" gorm:"type:varchar(2);not null"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(9);not null"`
	Principal  bool      `json:"principal" gorm:"not null"`
	ClientID   uint      `json:"client_id" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
