// Package models contains domain entities and business models for the portal backend
package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account roles
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// Account represents a registered user of the portal. Email is the login key.
type Account struct {
	ID   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`

	Email        string `gorm:"size:255;not null;uniqueIndex:idx_accounts_email" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // Never serialize password hash

	FirstName   string  `gorm:"size:150" json:"first_name"`
	LastName    string  `gorm:"size:150" json:"last_name"`
	Phone       *string `gorm:"size:20" json:"phone,omitempty"`
	CompanyName *string `gorm:"size:200" json:"company_name,omitempty"`

	// Role determines admin surface access; admin and staff both count as staff
	Role string `gorm:"size:20;not null;default:customer;index:idx_accounts_role" json:"role"`

	// PreferredLanguage is the durable account locale, distinct from the
	// request-scoped lang query parameter on public content endpoints
	PreferredLanguage string `gorm:"size:2;not null;default:fa" json:"preferred_language"`

	IsVerified *bool `gorm:"default:false" json:"is_verified"`
	IsActive   *bool `gorm:"default:true;index:idx_accounts_is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_accounts_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Conversations []Conversation `gorm:"foreignKey:ParticipantID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:AccountID" json:"-"`
}

func (Account) TableName() string { return "accounts" }

// BeforeCreate ensures UUID and timestamps are set
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	if a.Role == "" {
		a.Role = RoleCustomer
	}
	if a.PreferredLanguage == "" {
		a.PreferredLanguage = utils.LocalePersian
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = utils.UTCNow()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// IsAdmin reports whether the account holds the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsStaff reports whether the account holds cross-conversation visibility rights
func (a *Account) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleStaff
}

// AccountFilter represents filter criteria for account queries
type AccountFilter struct {
	ID            *uint      `json:"id,omitempty"`
	UUID          *uuid.UUID `json:"uuid,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Role          *string    `json:"role,omitempty"`
	IsVerified    *bool      `json:"is_verified,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}
