package repository

import (
	"context"
	"fmt"

	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepositoryImpl implements AccountRepository interface
type AccountRepositoryImpl struct {
	*BaseRepository[models.Account, models.AccountFilter]
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Account, models.AccountFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query
func (r *AccountRepositoryImpl) applyFilter(query *gorm.DB, filter models.AccountFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves accounts based on filter criteria
func (r *AccountRepositoryImpl) ByFilter(ctx context.Context, filter models.AccountFilter, orderBy string, limit, offset int) ([]*models.Account, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Account{}), filter)

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Account
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of accounts matching filter
func (r *AccountRepositoryImpl) Count(ctx context.Context, filter models.AccountFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Account{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any account matches the filter
func (r *AccountRepositoryImpl) Exists(ctx context.Context, filter models.AccountFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// ByEmail retrieves an account by its login email
func (r *AccountRepositoryImpl) ByEmail(ctx context.Context, email string) (*models.Account, error) {
	rows, err := r.ByFilter(ctx, models.AccountFilter{Email: &email}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// ByUUID retrieves an account by its public UUID
func (r *AccountRepositoryImpl) ByUUID(ctx context.Context, uuidStr string) (*models.Account, error) {
	parsed, err := uuid.Parse(uuidStr)
	if err != nil {
		return nil, fmt.Errorf("invalid account uuid: %w", err)
	}
	rows, err := r.ByFilter(ctx, models.AccountFilter{UUID: &parsed}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// ListStaff returns all active accounts with cross-conversation rights
func (r *AccountRepositoryImpl) ListStaff(ctx context.Context) ([]*models.Account, error) {
	db := r.getDB(ctx)
	var rows []*models.Account
	err := db.Model(&models.Account{}).
		Where("role IN ?", []string{models.RoleAdmin, models.RoleStaff}).
		Where("is_active = ?", true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdatePassword replaces the stored password hash
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error {
	db := r.getDB(ctx)
	return db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    utils.UTCNow(),
		}).Error
}

// UpdateLanguage persists the durable account locale
func (r *AccountRepositoryImpl) UpdateLanguage(ctx context.Context, accountID uint, language string) error {
	db := r.getDB(ctx)
	return db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"preferred_language": language,
			"updated_at":         utils.UTCNow(),
		}).Error
}
