package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a message thread between one participant account and staff.
// The participant never changes after creation. UpdatedAt advances whenever a
// message is posted into the thread, which drives triage ordering.
type Conversation struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	ParticipantID uint      `gorm:"not null;index:idx_conversations_participant_id" json:"participant_id"`
	Subject       string    `gorm:"size:200;not null" json:"subject"`
	IsActive      *bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_conversations_updated_at" json:"updated_at"`

	// Relations
	Participant *Account  `gorm:"foreignKey:ParticipantID;references:ID;constraint:OnDelete:CASCADE" json:"participant,omitempty"`
	Messages    []Message `gorm:"foreignKey:ConversationID" json:"-"`
}

func (Conversation) TableName() string { return "conversations" }

// BeforeCreate ensures UUID and timestamps are set
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = utils.UTCNow()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// ConversationFilter represents filter criteria for conversation queries
type ConversationFilter struct {
	ID            *uint      `json:"id,omitempty"`
	UUID          *uuid.UUID `json:"uuid,omitempty"`
	ParticipantID *uint      `json:"participant_id,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	UpdatedAfter  *time.Time `json:"updated_after,omitempty"`
	UpdatedBefore *time.Time `json:"updated_before,omitempty"`
}
