package repository

import (
	"context"

	"github.com/arkasoft/arka-portal/models"
	"gorm.io/gorm"
)

// ContactMessageRepositoryImpl implements ContactMessageRepository interface
type ContactMessageRepositoryImpl struct {
	*BaseRepository[models.ContactMessage, models.ContactMessageFilter]
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &ContactMessageRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ContactMessage, models.ContactMessageFilter](db),
	}
}

func (r *ContactMessageRepositoryImpl) applyFilter(query *gorm.DB, filter models.ContactMessageFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
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

// ByFilter retrieves contact messages, newest first
func (r *ContactMessageRepositoryImpl) ByFilter(ctx context.Context, filter models.ContactMessageFilter, orderBy string, limit, offset int) ([]*models.ContactMessage, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ContactMessage{}), filter)

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

	var rows []*models.ContactMessage
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of contact messages matching filter
func (r *ContactMessageRepositoryImpl) Count(ctx context.Context, filter models.ContactMessageFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.ContactMessage{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any contact message matches the filter
func (r *ContactMessageRepositoryImpl) Exists(ctx context.Context, filter models.ContactMessageFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// MarkRead flags a submission as handled by staff
func (r *ContactMessageRepositoryImpl) MarkRead(ctx context.Context, messageID uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.ContactMessage{}).
		Where("id = ?", messageID).
		Update("is_read", true).Error
}
