package repository

import (
	"context"

	"github.com/arkasoft/arka-portal/models"
	"gorm.io/gorm"
)

// NotificationRepositoryImpl implements NotificationRepository interface
type NotificationRepositoryImpl struct {
	*BaseRepository[models.Notification, models.NotificationFilter]
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Notification, models.NotificationFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *NotificationRepositoryImpl) applyFilter(query *gorm.DB, filter models.NotificationFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
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

// ByFilter retrieves notifications based on filter criteria, newest first
func (r *NotificationRepositoryImpl) ByFilter(ctx context.Context, filter models.NotificationFilter, orderBy string, limit, offset int) ([]*models.Notification, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Notification{}), filter)

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

	var rows []*models.Notification
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of notifications matching filter
func (r *NotificationRepositoryImpl) Count(ctx context.Context, filter models.NotificationFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Notification{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any notification matches the filter
func (r *NotificationRepositoryImpl) Exists(ctx context.Context, filter models.NotificationFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// MarkRead flags a single notification owned by the account. The ownership
// guard is part of the UPDATE so a foreign id is indistinguishable from a
// missing one. Returns whether a row changed.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, notificationID, accountID uint) (bool, error) {
	db := r.getDB(ctx)
	res := db.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Where("account_id = ?", accountID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkAllRead flags every unread notification owned by the account
func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context, accountID uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.Notification{}).
		Where("account_id = ?", accountID).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

// CountUnread counts unread notifications owned by the account
func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, accountID uint) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	err := db.Model(&models.Notification{}).
		Where("account_id = ?", accountID).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
