package repository

import (
	"context"
	"errors"

	"github.com/arkasoft/arka-portal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ProjectRepositoryImpl implements ProjectRepository interface
type ProjectRepositoryImpl struct {
	*BaseRepository[models.Project, models.ProjectFilter]
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Project, models.ProjectFilter](db),
	}
}

// applyFilter applies filter criteria to a GORM query. Technology matches a
// single element; TechOverlap matches any shared element via Postgres &&.
func (r *ProjectRepositoryImpl) applyFilter(query *gorm.DB, filter models.ProjectFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("projects.id = ?", *filter.ID)
	}
	if filter.Slug != nil {
		query = query.Where("projects.slug = ?", *filter.Slug)
	}
	if filter.CategoryID != nil {
		query = query.Where("projects.category_id = ?", *filter.CategoryID)
	}
	if filter.CategorySlug != nil {
		query = query.
			Joins("JOIN project_categories ON project_categories.id = projects.category_id").
			Where("project_categories.slug = ?", *filter.CategorySlug)
	}
	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}
	if filter.Technology != nil {
		query = query.Where("? = ANY(projects.technologies)", *filter.Technology)
	}
	if filter.IsFeatured != nil {
		query = query.Where("projects.is_featured = ?", *filter.IsFeatured)
	}
	if filter.IsActive != nil {
		query = query.Where("projects.is_active = ?", *filter.IsActive)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("projects.id NOT IN ?", filter.ExcludeIDs)
	}
	if len(filter.TechOverlap) > 0 {
		query = query.Where("projects.technologies && ?", pq.Array(filter.TechOverlap))
	}
	return query
}

// ByFilter retrieves projects based on filter criteria.
// Default order puts featured work first, then curated order, then newest.
func (r *ProjectRepositoryImpl) ByFilter(ctx context.Context, filter models.ProjectFilter, orderBy string, limit, offset int) ([]*models.Project, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Project{}), filter)

	if orderBy == "" {
		orderBy = `projects.is_featured DESC, projects."order" ASC, projects.created_at DESC`
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Project
	if err := query.Preload("Category").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of projects matching filter
func (r *ProjectRepositoryImpl) Count(ctx context.Context, filter models.ProjectFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Project{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any project matches the filter
func (r *ProjectRepositoryImpl) Exists(ctx context.Context, filter models.ProjectFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// BySlug retrieves a project by its public slug, category preloaded
func (r *ProjectRepositoryImpl) BySlug(ctx context.Context, slug string) (*models.Project, error) {
	db := r.getDB(ctx)
	var row models.Project
	err := db.Where("slug = ?", slug).Preload("Category").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// IncrementViews bumps the view counter in the database so concurrent detail
// reads never lose an increment to a stale read-modify-write.
func (r *ProjectRepositoryImpl) IncrementViews(ctx context.Context, projectID uint) error {
	db := r.getDB(ctx)
	return db.Model(&models.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}
