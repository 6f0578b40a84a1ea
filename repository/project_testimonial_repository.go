package repository

import (
	"context"

	"github.com/arkasoft/arka-portal/models"
	"gorm.io/gorm"
)

// ProjectTestimonialRepositoryImpl implements ProjectTestimonialRepository interface
type ProjectTestimonialRepositoryImpl struct {
	*BaseRepository[models.ProjectTestimonial, models.ProjectTestimonialFilter]
}

// NewProjectTestimonialRepository creates a new testimonial repository
func NewProjectTestimonialRepository(db *gorm.DB) ProjectTestimonialRepository {
	return &ProjectTestimonialRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ProjectTestimonial, models.ProjectTestimonialFilter](db),
	}
}

func (r *ProjectTestimonialRepositoryImpl) applyFilter(query *gorm.DB, filter models.ProjectTestimonialFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

// ByFilter retrieves testimonials, newest first
func (r *ProjectTestimonialRepositoryImpl) ByFilter(ctx context.Context, filter models.ProjectTestimonialFilter, orderBy string, limit, offset int) ([]*models.ProjectTestimonial, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ProjectTestimonial{}), filter)

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

	var rows []*models.ProjectTestimonial
	if err := query.Preload("Project").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns number of testimonials matching filter
func (r *ProjectTestimonialRepositoryImpl) Count(ctx context.Context, filter models.ProjectTestimonialFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ProjectTestimonial{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any testimonial matches the filter
func (r *ProjectTestimonialRepositoryImpl) Exists(ctx context.Context, filter models.ProjectTestimonialFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
