package repository

import (
	"context"
	"errors"

	"github.com/arkasoft/arka-portal/models"
	"gorm.io/gorm"
)

// ProjectCategoryRepositoryImpl implements ProjectCategoryRepository interface
type ProjectCategoryRepositoryImpl struct {
	*BaseRepository[models.ProjectCategory, models.ProjectCategoryFilter]
}

// NewProjectCategoryRepository creates a new project category repository
func NewProjectCategoryRepository(db *gorm.DB) ProjectCategoryRepository {
	return &ProjectCategoryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ProjectCategory, models.ProjectCategoryFilter](db),
	}
}

func (r *ProjectCategoryRepositoryImpl) applyFilter(query *gorm.DB, filter models.ProjectCategoryFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("slug = ?", *filter.Slug)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

// ByFilter retrieves categories in curated order
func (r *ProjectCategoryRepositoryImpl) ByFilter(ctx context.Context, filter models.ProjectCategoryFilter, orderBy string, limit, offset int) ([]*models.ProjectCategory, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ProjectCategory{}), filter)

	if orderBy == "" {
		orderBy = `"order" ASC, created_at DESC`
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.ProjectCategory
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of categories matching filter
func (r *ProjectCategoryRepositoryImpl) Count(ctx context.Context, filter models.ProjectCategoryFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ProjectCategory{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any category matches the filter
func (r *ProjectCategoryRepositoryImpl) Exists(ctx context.Context, filter models.ProjectCategoryFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// BySlug retrieves a category by its public slug
func (r *ProjectCategoryRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.ProjectCategory, error) {
	db := r.getDB(ctx)
	var row models.ProjectCategory
	err := db.Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
