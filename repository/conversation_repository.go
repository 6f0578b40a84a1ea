package repository

import (
	"context"

	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// ConversationRepositoryImpl implements ConversationRepository interface
type ConversationRepositoryImpl struct {
	*BaseRepository[models.Conversation, models.ConversationFilter]
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &ConversationRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Conversation, models.ConversationFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *ConversationRepositoryImpl) applyFilter(query *gorm.DB, filter models.ConversationFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.ParticipantID != nil {
		query = query.Where("participant_id = ?", *filter.ParticipantID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.UpdatedAfter != nil {
		query = query.Where("updated_at > ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		query = query.Where("updated_at < ?", *filter.UpdatedBefore)
	}
	return query
}

// ByFilter retrieves conversations based on filter criteria.
// Default order is latest activity first, which drives staff triage.
func (r *ConversationRepositoryImpl) ByFilter(ctx context.Context, filter models.ConversationFilter, orderBy string, limit, offset int) ([]*models.Conversation, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Conversation{}), filter)

	if orderBy == "" {
		orderBy = "updated_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Conversation
	if err := query.Preload("Participant").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of conversations matching filter
func (r *ConversationRepositoryImpl) Count(ctx context.Context, filter models.ConversationFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Conversation{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any conversation matches the filter
func (r *ConversationRepositoryImpl) Exists(ctx context.Context, filter models.ConversationFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Touch advances the conversation's updated_at to now. Called whenever a new
// message lands so that list ordering reflects latest activity.
func (r *ConversationRepositoryImpl) Touch(ctx context.Context, conversationID uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", utils.UTCNow()).Error
}
