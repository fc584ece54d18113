package model

import (
	"strings"
	"time"
)

// RegistrationStatus tells whether a client's contact data is complete
type RegistrationStatus string

const (
	RegistrationComplete   RegistrationStatus = "COMPLETE"
	RegistrationIncomplete RegistrationStatus = "INCOMPLETE"
)

// RegistrationStatusFor derives the registration status from the phone number
func RegistrationStatusFor(phone string) RegistrationStatus {
	if strings.TrimSpace(phone) == "" {
		return RegistrationIncomplete
	}
	return RegistrationComplete
}

// Client represents a registered customer together with its credential state
type Client struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	Name               string             `json:"name" gorm:"type:varchar(100);not null"`
	TaxID              string             `json:"tax_id" gorm:"type:varchar(14);uniqueIndex;not null"`
	Email              *string            `json:"email,omitempty" gorm:"type:varchar(100);uniqueIndex"`
	Phone              string             `json:"phone,omitempty" gorm:"type:varchar(15)"`
	BirthDate          Date               `json:"birth_date" gorm:"not null"`
	CategoryID         *uint              `json:"category_id,omitempty" gorm:"index"`
	Active             bool               `json:"active" gorm:"not null"`
	RegistrationStatus RegistrationStatus `json:"registration_status" gorm:"type:varchar(20);not null"`

	// Credential state, owned by the identity store
	PasswordHash   string     `json:"-" gorm:"type:varchar(255);not null"`
	FailedAttempts int        `json:"failed_attempts" gorm:"not null;default:0"`
	AccountLocked  bool       `json:"account_locked" gorm:"not null;default:false;index"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmailValue returns the email or an empty string
func (c *Client) EmailValue() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}
