package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// Message is a single entry in a conversation. Immutable once created except
// for the one-way unread to read transition: ReadAt is set if and only if
// IsRead is true, exactly once, and never by the message's own sender.
type Message struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint       `gorm:"not null;index:idx_messages_conversation_id" json:"conversation_id"`
	SenderID       uint       `gorm:"not null;index:idx_messages_sender_id" json:"sender_id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	Attachment     *string    `gorm:"size:500" json:"attachment,omitempty"`
	IsRead         *bool      `gorm:"default:false;index:idx_messages_is_read" json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_messages_created_at" json:"created_at"`

	// Relations
	Conversation *Conversation `gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE" json:"conversation,omitempty"`
	Sender       *Account      `gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
}

func (Message) TableName() string { return "messages" }

// BeforeCreate normalizes the creation timestamp
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = utils.UTCNow()
	}
	return nil
}

// MessageFilter represents filter criteria for message queries
type MessageFilter struct {
	ID             *uint      `json:"id,omitempty"`
	ConversationID *uint      `json:"conversation_id,omitempty"`
	SenderID       *uint      `json:"sender_id,omitempty"`
	IsRead         *bool      `json:"is_read,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
}
