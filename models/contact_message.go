package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// ContactMessage is an unauthenticated contact-form submission awaiting staff review
type ContactMessage struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"size:200;not null" json:"name"`
	Email   string  `gorm:"size:255;not null" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone,omitempty"`
	Subject string  `gorm:"size:200;not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
	IsRead  *bool   `gorm:"default:false;index:idx_contact_messages_is_read" json:"is_read"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_contact_messages_created_at" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// BeforeCreate normalizes the creation timestamp
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = utils.UTCNow()
	}
	return nil
}

// ContactMessageFilter represents filter criteria for contact message queries
type ContactMessageFilter struct {
	ID            *uint      `json:"id,omitempty"`
	Email         *string    `json:"email,omitempty"`
	IsRead        *bool      `json:"is_read,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}
