package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeMessage = "message"
	NotificationTypeSystem  = "system"
	NotificationTypeUpdate  = "update"
)

// Notification is a feed entry owned by exactly one account. Created by system
// events (for example a new message) and only ever mutated by the read flag.
type Notification struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID uint    `gorm:"not null;index:idx_notifications_account_id" json:"account_id"`
	Title     string  `gorm:"size:200;not null" json:"title"`
	Body      string  `gorm:"type:text;not null" json:"body"`
	Type      string  `gorm:"size:20;not null;default:message" json:"type"`
	Link      *string `gorm:"size:500" json:"link,omitempty"`
	IsRead    *bool   `gorm:"default:false;index:idx_notifications_is_read" json:"is_read"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_notifications_created_at" json:"created_at"`

	// Relations
	Account *Account `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
}

func (Notification) TableName() string { return "notifications" }

// BeforeCreate normalizes type and timestamp
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.Type == "" {
		n.Type = NotificationTypeMessage
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = utils.UTCNow()
	}
	return nil
}

// NotificationFilter represents filter criteria for notification queries
type NotificationFilter struct {
	ID            *uint      `json:"id,omitempty"`
	AccountID     *uint      `json:"account_id,omitempty"`
	Type          *string    `json:"type,omitempty"`
	IsRead        *bool      `json:"is_read,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}
