package repository

import (
	"context"
	"errors"

	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// MessageRepositoryImpl implements MessageRepository interface
type MessageRepositoryImpl struct {
	*BaseRepository[models.Message, models.MessageFilter]
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Message, models.MessageFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *MessageRepositoryImpl) applyFilter(query *gorm.DB, filter models.MessageFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.ConversationID != nil {
		query = query.Where("conversation_id = ?", *filter.ConversationID)
	}
	if filter.SenderID != nil {
		query = query.Where("sender_id = ?", *filter.SenderID)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves messages based on filter criteria, newest first by default
func (r *MessageRepositoryImpl) ByFilter(ctx context.Context, filter models.MessageFilter, orderBy string, limit, offset int) ([]*models.Message, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Message{}), filter)

	if orderBy == "" {
		orderBy = "created_at DESC, id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Message
	if err := query.Preload("Sender").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of messages matching filter
func (r *MessageRepositoryImpl) Count(ctx context.Context, filter models.MessageFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Message{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any message matches the filter
func (r *MessageRepositoryImpl) Exists(ctx context.Context, filter models.MessageFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// LastByConversation returns the most recent message by wall-clock entry
func (r *MessageRepositoryImpl) LastByConversation(ctx context.Context, conversationID uint) (*models.Message, error) {
	db := r.getDB(ctx)
	var row models.Message
	err := db.Model(&models.Message{}).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Preload("Sender").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// CountUnreadInConversation counts messages not sent by the participant and
// not yet read. This is always recomputed, never stored.
func (r *MessageRepositoryImpl) CountUnreadInConversation(ctx context.Context, conversationID, participantID uint) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.Message{}).
		Where("conversation_id = ?", conversationID).
		Where("sender_id <> ?", participantID).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountUnreadForParticipant counts unread staff messages across all of the
// participant's conversations
func (r *MessageRepositoryImpl) CountUnreadForParticipant(ctx context.Context, participantID uint) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.participant_id = ?", participantID).
		Where("messages.sender_id <> ?", participantID).
		Where("messages.is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountReceivedForParticipant counts all messages addressed to the participant
// (sent by the other side of their conversations)
func (r *MessageRepositoryImpl) CountReceivedForParticipant(ctx context.Context, participantID uint) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.participant_id = ?", participantID).
		Where("messages.sender_id <> ?", participantID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flips the one-way read transition with a single guarded UPDATE so
// concurrent calls cannot lose updates or overwrite read_at. The sender guard
// keeps a message from being read into read-state by its own author. Returns
// whether a row actually changed.
func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, messageID, readerID uint) (bool, error) {
	db := r.getDB(ctx)
	res := db.Model(&models.Message{}).
		Where("id = ?", messageID).
		Where("is_read = ?", false).
		Where("sender_id <> ?", readerID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": utils.UTCNow(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
