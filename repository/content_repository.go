package repository

import (
	"context"
	"errors"

	"github.com/arkasoft/arka-portal/models"
	"gorm.io/gorm"
)

// Repositories for the editorial content entities. They share the same curated
// ordering rule: explicit order first, then newest. Entities without an order
// column fall back to insertion order.

// HeroSectionRepositoryImpl implements HeroSectionRepository interface
type HeroSectionRepositoryImpl struct {
	*BaseRepository[models.HeroSection, models.HeroSectionFilter]
}

// NewHeroSectionRepository creates a new hero section repository
func NewHeroSectionRepository(db *gorm.DB) HeroSectionRepository {
	return &HeroSectionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.HeroSection, models.HeroSectionFilter](db),
	}
}

func (r *HeroSectionRepositoryImpl) applyFilter(query *gorm.DB, filter models.HeroSectionFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

func (r *HeroSectionRepositoryImpl) ByFilter(ctx context.Context, filter models.HeroSectionFilter, orderBy string, limit, offset int) ([]*models.HeroSection, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.HeroSection{}), filter)

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

	var rows []*models.HeroSection
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *HeroSectionRepositoryImpl) Count(ctx context.Context, filter models.HeroSectionFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.HeroSection{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *HeroSectionRepositoryImpl) Exists(ctx context.Context, filter models.HeroSectionFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// ServiceRepositoryImpl implements ServiceRepository interface
type ServiceRepositoryImpl struct {
	*BaseRepository[models.Service, models.ServiceFilter]
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Service, models.ServiceFilter](db),
	}
}

func (r *ServiceRepositoryImpl) applyFilter(query *gorm.DB, filter models.ServiceFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

func (r *ServiceRepositoryImpl) ByFilter(ctx context.Context, filter models.ServiceFilter, orderBy string, limit, offset int) ([]*models.Service, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Service{}), filter)

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

	var rows []*models.Service
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ServiceRepositoryImpl) Count(ctx context.Context, filter models.ServiceFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.Service{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ServiceRepositoryImpl) Exists(ctx context.Context, filter models.ServiceFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// TeamMemberRepositoryImpl implements TeamMemberRepository interface
type TeamMemberRepositoryImpl struct {
	*BaseRepository[models.TeamMember, models.TeamMemberFilter]
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &TeamMemberRepositoryImpl{
		BaseRepository: NewBaseRepository[models.TeamMember, models.TeamMemberFilter](db),
	}
}

func (r *TeamMemberRepositoryImpl) applyFilter(query *gorm.DB, filter models.TeamMemberFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

func (r *TeamMemberRepositoryImpl) ByFilter(ctx context.Context, filter models.TeamMemberFilter, orderBy string, limit, offset int) ([]*models.TeamMember, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.TeamMember{}), filter)

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

	var rows []*models.TeamMember
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TeamMemberRepositoryImpl) Count(ctx context.Context, filter models.TeamMemberFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.TeamMember{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TeamMemberRepositoryImpl) Exists(ctx context.Context, filter models.TeamMemberFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// AboutSectionRepositoryImpl implements AboutSectionRepository interface
type AboutSectionRepositoryImpl struct {
	*BaseRepository[models.AboutSection, models.AboutSectionFilter]
}

// NewAboutSectionRepository creates a new about section repository
func NewAboutSectionRepository(db *gorm.DB) AboutSectionRepository {
	return &AboutSectionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AboutSection, models.AboutSectionFilter](db),
	}
}

func (r *AboutSectionRepositoryImpl) applyFilter(query *gorm.DB, filter models.AboutSectionFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

func (r *AboutSectionRepositoryImpl) ByFilter(ctx context.Context, filter models.AboutSectionFilter, orderBy string, limit, offset int) ([]*models.AboutSection, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.AboutSection{}), filter)

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

	var rows []*models.AboutSection
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AboutSectionRepositoryImpl) Count(ctx context.Context, filter models.AboutSectionFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.AboutSection{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AboutSectionRepositoryImpl) Exists(ctx context.Context, filter models.AboutSectionFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// ContactInfoRepositoryImpl implements ContactInfoRepository interface
type ContactInfoRepositoryImpl struct {
	*BaseRepository[models.ContactInfo, models.ContactInfoFilter]
}

// NewContactInfoRepository creates a new contact info repository
func NewContactInfoRepository(db *gorm.DB) ContactInfoRepository {
	return &ContactInfoRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ContactInfo, models.ContactInfoFilter](db),
	}
}

func (r *ContactInfoRepositoryImpl) applyFilter(query *gorm.DB, filter models.ContactInfoFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

func (r *ContactInfoRepositoryImpl) ByFilter(ctx context.Context, filter models.ContactInfoFilter, orderBy string, limit, offset int) ([]*models.ContactInfo, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ContactInfo{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.ContactInfo
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ContactInfoRepositoryImpl) Count(ctx context.Context, filter models.ContactInfoFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.ContactInfo{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ContactInfoRepositoryImpl) Exists(ctx context.Context, filter models.ContactInfoFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// SiteSettingRepositoryImpl implements SiteSettingRepository interface
type SiteSettingRepositoryImpl struct {
	*BaseRepository[models.SiteSetting, models.SiteSettingFilter]
}

// NewSiteSettingRepository creates a new site setting repository
func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepository {
	return &SiteSettingRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SiteSetting, models.SiteSettingFilter](db),
	}
}

func (r *SiteSettingRepositoryImpl) applyFilter(query *gorm.DB, filter models.SiteSettingFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Key != nil {
		query = query.Where("key = ?", *filter.Key)
	}
	return query
}

func (r *SiteSettingRepositoryImpl) ByFilter(ctx context.Context, filter models.SiteSettingFilter, orderBy string, limit, offset int) ([]*models.SiteSetting, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.SiteSetting{}), filter)

	if orderBy == "" {
		orderBy = "key ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.SiteSetting
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SiteSettingRepositoryImpl) Count(ctx context.Context, filter models.SiteSettingFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64
	if err := r.applyFilter(db.Model(&models.SiteSetting{}), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SiteSettingRepositoryImpl) Exists(ctx context.Context, filter models.SiteSettingFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// ByKey retrieves a setting by its unique key
func (r *SiteSettingRepositoryImpl) ByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	db := r.getDB(ctx)
	var row models.SiteSetting
	err := db.Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
