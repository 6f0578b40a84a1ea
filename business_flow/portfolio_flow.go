package businessflow

import (
	"context"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
)

const relatedProjectsLimit = 4

// PortfolioFlow defines public browsing and staff CRUD for the portfolio catalog
type PortfolioFlow interface {
	ListCategories(ctx context.Context, metadata *ClientMetadata) (*dto.ListCategoriesResponse, error)
	ListProjects(ctx context.Context, req *dto.ListProjectsRequest, metadata *ClientMetadata) (*dto.ListProjectsResponse, error)
	GetProject(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.GetProjectResponse, error)
	GetRelatedProjects(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.RelatedProjectsResponse, error)
	ListProjectTestimonials(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.ListTestimonialsResponse, error)
	GetStats(ctx context.Context, metadata *ClientMetadata) (*dto.PortfolioStatsResponse, error)

	AdminListCategories(ctx context.Context, metadata *ClientMetadata) (*dto.ListCategoriesResponse, error)
	AdminSaveCategory(ctx context.Context, req *dto.SaveCategoryRequest, metadata *ClientMetadata) (*dto.SaveCategoryResponse, error)
	AdminDeleteCategory(ctx context.Context, categoryID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListProjects(ctx context.Context, req *dto.ListProjectsRequest, metadata *ClientMetadata) (*dto.ListProjectsResponse, error)
	AdminSaveProject(ctx context.Context, req *dto.SaveProjectRequest, metadata *ClientMetadata) (*dto.SaveProjectResponse, error)
	AdminDeleteProject(ctx context.Context, projectID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListTestimonials(ctx context.Context, projectID uint, metadata *ClientMetadata) (*dto.ListTestimonialsResponse, error)
	AdminSaveTestimonial(ctx context.Context, req *dto.SaveTestimonialRequest, metadata *ClientMetadata) (*dto.SaveTestimonialResponse, error)
	AdminDeleteTestimonial(ctx context.Context, testimonialID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
}

// PortfolioFlowImpl implements PortfolioFlow
type PortfolioFlowImpl struct {
	categoryRepo    repository.ProjectCategoryRepository
	projectRepo     repository.ProjectRepository
	testimonialRepo repository.ProjectTestimonialRepository
}

func NewPortfolioFlow(
	categoryRepo repository.ProjectCategoryRepository,
	projectRepo repository.ProjectRepository,
	testimonialRepo repository.ProjectTestimonialRepository,
) PortfolioFlow {
	return &PortfolioFlowImpl{
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (f *PortfolioFlowImpl) ListCategories(ctx context.Context, metadata *ClientMetadata) (*dto.ListCategoriesResponse, error) {
	active := true
	rows, err := f.categoryRepo.ByFilter(ctx, models.ProjectCategoryFilter{IsActive: &active}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_CATEGORIES_FAILED", "Failed to list categories", err)
	}

	items := make([]dto.CategoryItem, 0, len(rows))
	for _, c := range rows {
		count, err := f.projectRepo.Count(ctx, models.ProjectFilter{CategoryID: &c.ID, IsActive: &active})
		if err != nil {
			return nil, NewBusinessError("LIST_CATEGORIES_FAILED", "Failed to count projects", err)
		}
		items = append(items, toCategoryItem(c, count))
	}

	return &dto.ListCategoriesResponse{
		Message:    "Categories retrieved successfully",
		Categories: items,
	}, nil
}

func (f *PortfolioFlowImpl) ListProjects(ctx context.Context, req *dto.ListProjectsRequest, metadata *ClientMetadata) (*dto.ListProjectsResponse, error) {
	active := true
	filter := models.ProjectFilter{
		IsActive:     &active,
		CategorySlug: req.CategorySlug,
		Status:       req.Status,
		IsFeatured:   req.Featured,
		Technology:   req.Technology,
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.projectRepo.ByFilter(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("LIST_PROJECTS_FAILED", "Failed to list projects", err)
	}
	total, err := f.projectRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("LIST_PROJECTS_FAILED", "Failed to count projects", err)
	}

	items := make([]dto.ProjectListItem, 0, len(rows))
	for _, p := range rows {
		items = append(items, toProjectListItem(p))
	}

	return &dto.ListProjectsResponse{
		Message:  "Projects retrieved successfully",
		Projects: items,
		Total:    total,
	}, nil
}

// GetProject returns an active project by slug and bumps its view counter by
// exactly one via a single SQL increment
func (f *PortfolioFlowImpl) GetProject(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.GetProjectResponse, error) {
	project, err := f.loadActiveProject(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := f.projectRepo.IncrementViews(ctx, project.ID); err != nil {
		return nil, NewBusinessError("GET_PROJECT_FAILED", "Failed to record project view", err)
	}
	project.ViewsCount++

	return &dto.GetProjectResponse{
		Message: "Project retrieved successfully",
		Project: toProjectDetail(project),
	}, nil
}

// GetRelatedProjects fills up to four slots: same-category actives first, then
// actives sharing at least one technology tag. Both tiers order by id so the
// result is deterministic for a fixed dataset.
func (f *PortfolioFlowImpl) GetRelatedProjects(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.RelatedProjectsResponse, error) {
	project, err := f.loadActiveProject(ctx, slug)
	if err != nil {
		return nil, err
	}

	active := true
	primary, err := f.projectRepo.ByFilter(ctx, models.ProjectFilter{
		CategoryID: &project.CategoryID,
		IsActive:   &active,
		ExcludeIDs: []uint{project.ID},
	}, "projects.id ASC", relatedProjectsLimit, 0)
	if err != nil {
		return nil, NewBusinessError("RELATED_PROJECTS_FAILED", "Failed to load related projects", err)
	}

	related := primary
	if len(related) < relatedProjectsLimit && len(project.Technologies) > 0 {
		exclude := make([]uint, 0, len(related)+1)
		exclude = append(exclude, project.ID)
		for _, p := range related {
			exclude = append(exclude, p.ID)
		}
		backfill, err := f.projectRepo.ByFilter(ctx, models.ProjectFilter{
			IsActive:    &active,
			ExcludeIDs:  exclude,
			TechOverlap: project.Technologies,
		}, "projects.id ASC", relatedProjectsLimit-len(related), 0)
		if err != nil {
			return nil, NewBusinessError("RELATED_PROJECTS_FAILED", "Failed to load related projects", err)
		}
		related = append(related, backfill...)
	}

	items := make([]dto.ProjectListItem, 0, len(related))
	for _, p := range related {
		items = append(items, toProjectListItem(p))
	}

	return &dto.RelatedProjectsResponse{
		Message:  "Related projects retrieved successfully",
		Projects: items,
	}, nil
}

func (f *PortfolioFlowImpl) ListProjectTestimonials(ctx context.Context, slug string, metadata *ClientMetadata) (*dto.ListTestimonialsResponse, error) {
	project, err := f.loadActiveProject(ctx, slug)
	if err != nil {
		return nil, err
	}

	active := true
	rows, err := f.testimonialRepo.ByFilter(ctx, models.ProjectTestimonialFilter{ProjectID: &project.ID, IsActive: &active}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_TESTIMONIALS_FAILED", "Failed to list testimonials", err)
	}

	items := make([]dto.TestimonialItem, 0, len(rows))
	for _, t := range rows {
		items = append(items, toTestimonialItem(t))
	}

	return &dto.ListTestimonialsResponse{
		Message:      "Testimonials retrieved successfully",
		Testimonials: items,
	}, nil
}

func (f *PortfolioFlowImpl) GetStats(ctx context.Context, metadata *ClientMetadata) (*dto.PortfolioStatsResponse, error) {
	active := true
	featured := true

	total, err := f.projectRepo.Count(ctx, models.ProjectFilter{IsActive: &active})
	if err != nil {
		return nil, NewBusinessError("PORTFOLIO_STATS_FAILED", "Failed to count projects", err)
	}

	counts := make(map[string]int64, 3)
	for _, status := range []string{models.ProjectStatusCompleted, models.ProjectStatusInProgress, models.ProjectStatusPlanned} {
		s := status
		c, err := f.projectRepo.Count(ctx, models.ProjectFilter{IsActive: &active, Status: &s})
		if err != nil {
			return nil, NewBusinessError("PORTFOLIO_STATS_FAILED", "Failed to count projects by status", err)
		}
		counts[status] = c
	}

	featuredCount, err := f.projectRepo.Count(ctx, models.ProjectFilter{IsActive: &active, IsFeatured: &featured})
	if err != nil {
		return nil, NewBusinessError("PORTFOLIO_STATS_FAILED", "Failed to count featured projects", err)
	}
	categories, err := f.categoryRepo.Count(ctx, models.ProjectCategoryFilter{IsActive: &active})
	if err != nil {
		return nil, NewBusinessError("PORTFOLIO_STATS_FAILED", "Failed to count categories", err)
	}

	return &dto.PortfolioStatsResponse{
		Message:            "Stats retrieved successfully",
		TotalProjects:      total,
		CompletedProjects:  counts[models.ProjectStatusCompleted],
		InProgressProjects: counts[models.ProjectStatusInProgress],
		PlannedProjects:    counts[models.ProjectStatusPlanned],
		FeaturedProjects:   featuredCount,
		TotalCategories:    categories,
	}, nil
}

func (f *PortfolioFlowImpl) AdminListCategories(ctx context.Context, metadata *ClientMetadata) (*dto.ListCategoriesResponse, error) {
	rows, err := f.categoryRepo.ByFilter(ctx, models.ProjectCategoryFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_CATEGORIES_FAILED", "Failed to list categories", err)
	}

	items := make([]dto.CategoryItem, 0, len(rows))
	for _, c := range rows {
		count, err := f.projectRepo.Count(ctx, models.ProjectFilter{CategoryID: &c.ID})
		if err != nil {
			return nil, NewBusinessError("ADMIN_LIST_CATEGORIES_FAILED", "Failed to count projects", err)
		}
		items = append(items, toCategoryItem(c, count))
	}

	return &dto.ListCategoriesResponse{
		Message:    "Categories retrieved successfully",
		Categories: items,
	}, nil
}

func (f *PortfolioFlowImpl) AdminSaveCategory(ctx context.Context, req *dto.SaveCategoryRequest, metadata *ClientMetadata) (*dto.SaveCategoryResponse, error) {
	existing, err := f.categoryRepo.BySlug(ctx, req.Slug)
	if err != nil {
		return nil, NewBusinessError("SAVE_CATEGORY_FAILED", "Failed to check slug uniqueness", err)
	}
	if existing != nil && existing.ID != req.ID {
		return nil, ErrSlugAlreadyExists
	}

	var category *models.ProjectCategory
	if req.ID == 0 {
		category = &models.ProjectCategory{}
	} else {
		category, err = f.categoryRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_CATEGORY_FAILED", "Failed to load category", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	category.NameFa = req.NameFa
	category.NameEn = req.NameEn
	category.Slug = req.Slug
	category.Icon = req.Icon
	category.Order = req.Order
	if req.IsActive != nil {
		category.IsActive = req.IsActive
	}

	if req.ID == 0 {
		err = f.categoryRepo.Save(ctx, category)
	} else {
		err = f.categoryRepo.Update(ctx, category)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_CATEGORY_FAILED", "Failed to store category", err)
	}

	count, err := f.projectRepo.Count(ctx, models.ProjectFilter{CategoryID: &category.ID})
	if err != nil {
		return nil, NewBusinessError("SAVE_CATEGORY_FAILED", "Failed to count projects", err)
	}

	return &dto.SaveCategoryResponse{
		Message:  "Category saved successfully",
		Category: toCategoryItem(category, count),
	}, nil
}

func (f *PortfolioFlowImpl) AdminDeleteCategory(ctx context.Context, categoryID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	category, err := f.categoryRepo.ByID(ctx, categoryID)
	if err != nil {
		return nil, NewBusinessError("DELETE_CATEGORY_FAILED", "Failed to load category", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if err := f.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		return nil, NewBusinessError("DELETE_CATEGORY_FAILED", "Failed to delete category", err)
	}

	return &dto.DeleteResponse{Message: "Category deleted successfully"}, nil
}

func (f *PortfolioFlowImpl) AdminListProjects(ctx context.Context, req *dto.ListProjectsRequest, metadata *ClientMetadata) (*dto.ListProjectsResponse, error) {
	filter := models.ProjectFilter{
		CategorySlug: req.CategorySlug,
		Status:       req.Status,
		IsFeatured:   req.Featured,
		Technology:   req.Technology,
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.projectRepo.ByFilter(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_PROJECTS_FAILED", "Failed to list projects", err)
	}
	total, err := f.projectRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_PROJECTS_FAILED", "Failed to count projects", err)
	}

	items := make([]dto.ProjectListItem, 0, len(rows))
	for _, p := range rows {
		items = append(items, toProjectListItem(p))
	}

	return &dto.ListProjectsResponse{
		Message:  "Projects retrieved successfully",
		Projects: items,
		Total:    total,
	}, nil
}

func (f *PortfolioFlowImpl) AdminSaveProject(ctx context.Context, req *dto.SaveProjectRequest, metadata *ClientMetadata) (*dto.SaveProjectResponse, error) {
	category, err := f.categoryRepo.ByID(ctx, req.CategoryID)
	if err != nil {
		return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Failed to load category", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	existing, err := f.projectRepo.BySlug(ctx, req.Slug)
	if err != nil {
		return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Failed to check slug uniqueness", err)
	}
	if existing != nil && existing.ID != req.ID {
		return nil, ErrSlugAlreadyExists
	}

	var project *models.Project
	if req.ID == 0 {
		project = &models.Project{}
	} else {
		project, err = f.projectRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Failed to load project", err)
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
	}

	project.TitleFa = req.TitleFa
	project.TitleEn = req.TitleEn
	project.Slug = req.Slug
	project.DescriptionFa = req.DescriptionFa
	project.DescriptionEn = req.DescriptionEn
	project.ShortDescriptionFa = req.ShortDescriptionFa
	project.ShortDescriptionEn = req.ShortDescriptionEn
	project.CategoryID = req.CategoryID
	project.FeaturedImage = req.FeaturedImage
	project.Gallery = req.Gallery
	project.ClientName = req.ClientName
	project.ProjectURL = req.ProjectURL
	project.GithubURL = req.GithubURL
	project.Technologies = req.Technologies
	project.FeaturesFa = req.FeaturesFa
	project.FeaturesEn = req.FeaturesEn
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Invalid start date", err)
		}
		project.StartDate = &t
	}
	if req.CompletionDate != nil {
		t, err := parseDate(*req.CompletionDate)
		if err != nil {
			return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Invalid completion date", err)
		}
		project.CompletionDate = &t
	}
	if req.IsFeatured != nil {
		project.IsFeatured = req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = req.IsActive
	}
	project.Order = req.Order
	project.UpdatedAt = utils.UTCNow()

	if req.ID == 0 {
		err = f.projectRepo.Save(ctx, project)
	} else {
		err = f.projectRepo.Update(ctx, project)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_PROJECT_FAILED", "Failed to store project", err)
	}
	project.Category = category

	return &dto.SaveProjectResponse{
		Message: "Project saved successfully",
		Project: toProjectDetail(project),
	}, nil
}

func (f *PortfolioFlowImpl) AdminDeleteProject(ctx context.Context, projectID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	project, err := f.projectRepo.ByID(ctx, projectID)
	if err != nil {
		return nil, NewBusinessError("DELETE_PROJECT_FAILED", "Failed to load project", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if err := f.projectRepo.DeleteByID(ctx, projectID); err != nil {
		return nil, NewBusinessError("DELETE_PROJECT_FAILED", "Failed to delete project", err)
	}

	return &dto.DeleteResponse{Message: "Project deleted successfully"}, nil
}

func (f *PortfolioFlowImpl) AdminListTestimonials(ctx context.Context, projectID uint, metadata *ClientMetadata) (*dto.ListTestimonialsResponse, error) {
	filter := models.ProjectTestimonialFilter{}
	if projectID != 0 {
		filter.ProjectID = &projectID
	}

	rows, err := f.testimonialRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_TESTIMONIALS_FAILED", "Failed to list testimonials", err)
	}

	items := make([]dto.TestimonialItem, 0, len(rows))
	for _, t := range rows {
		items = append(items, toTestimonialItem(t))
	}

	return &dto.ListTestimonialsResponse{
		Message:      "Testimonials retrieved successfully",
		Testimonials: items,
	}, nil
}

func (f *PortfolioFlowImpl) AdminSaveTestimonial(ctx context.Context, req *dto.SaveTestimonialRequest, metadata *ClientMetadata) (*dto.SaveTestimonialResponse, error) {
	project, err := f.projectRepo.ByID(ctx, req.ProjectID)
	if err != nil {
		return nil, NewBusinessError("SAVE_TESTIMONIAL_FAILED", "Failed to load project", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	var testimonial *models.ProjectTestimonial
	if req.ID == 0 {
		testimonial = &models.ProjectTestimonial{}
	} else {
		testimonial, err = f.testimonialRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_TESTIMONIAL_FAILED", "Failed to load testimonial", err)
		}
		if testimonial == nil {
			return nil, ErrTestimonialNotFound
		}
	}

	testimonial.ProjectID = req.ProjectID
	testimonial.ClientName = req.ClientName
	testimonial.ClientPosition = req.ClientPosition
	testimonial.ClientCompany = req.ClientCompany
	testimonial.ClientPhoto = req.ClientPhoto
	testimonial.ContentFa = req.ContentFa
	testimonial.ContentEn = req.ContentEn
	if req.Rating != 0 {
		testimonial.Rating = req.Rating
	}
	if req.IsActive != nil {
		testimonial.IsActive = req.IsActive
	}

	if req.ID == 0 {
		err = f.testimonialRepo.Save(ctx, testimonial)
	} else {
		err = f.testimonialRepo.Update(ctx, testimonial)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_TESTIMONIAL_FAILED", "Failed to store testimonial", err)
	}

	return &dto.SaveTestimonialResponse{
		Message:     "Testimonial saved successfully",
		Testimonial: toTestimonialItem(testimonial),
	}, nil
}

func (f *PortfolioFlowImpl) AdminDeleteTestimonial(ctx context.Context, testimonialID uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	testimonial, err := f.testimonialRepo.ByID(ctx, testimonialID)
	if err != nil {
		return nil, NewBusinessError("DELETE_TESTIMONIAL_FAILED", "Failed to load testimonial", err)
	}
	if testimonial == nil {
		return nil, ErrTestimonialNotFound
	}

	if err := f.testimonialRepo.DeleteByID(ctx, testimonialID); err != nil {
		return nil, NewBusinessError("DELETE_TESTIMONIAL_FAILED", "Failed to delete testimonial", err)
	}

	return &dto.DeleteResponse{Message: "Testimonial deleted successfully"}, nil
}

func (f *PortfolioFlowImpl) loadActiveProject(ctx context.Context, slug string) (*models.Project, error) {
	project, err := f.projectRepo.BySlug(ctx, slug)
	if err != nil {
		return nil, NewBusinessError("GET_PROJECT_FAILED", "Failed to load project", err)
	}
	if project == nil || !utils.IsTrue(project.IsActive) {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toCategoryItem(c *models.ProjectCategory, projectsCount int64) dto.CategoryItem {
	return dto.CategoryItem{
		ID:            c.ID,
		NameFa:        c.NameFa,
		NameEn:        c.NameEn,
		Slug:          c.Slug,
		Icon:          c.Icon,
		Order:         c.Order,
		IsActive:      utils.IsTrue(c.IsActive),
		ProjectsCount: projectsCount,
	}
}

func toProjectListItem(p *models.Project) dto.ProjectListItem {
	item := dto.ProjectListItem{
		ID:                 p.ID,
		TitleFa:            p.TitleFa,
		TitleEn:            p.TitleEn,
		Slug:               p.Slug,
		ShortDescriptionFa: p.ShortDescriptionFa,
		ShortDescriptionEn: p.ShortDescriptionEn,
		FeaturedImage:      p.FeaturedImage,
		Technologies:       p.Technologies,
		Status:             p.Status,
		IsFeatured:         utils.IsTrue(p.IsFeatured),
		ViewsCount:         p.ViewsCount,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
	if p.Category != nil {
		item.CategorySlug = p.Category.Slug
		item.CategoryNameFa = p.Category.NameFa
		item.CategoryNameEn = p.Category.NameEn
	}
	return item
}

func toProjectDetail(p *models.Project) dto.ProjectDetail {
	detail := dto.ProjectDetail{
		ProjectListItem: toProjectListItem(p),
		DescriptionFa:   p.DescriptionFa,
		DescriptionEn:   p.DescriptionEn,
		Gallery:         p.Gallery,
		ClientName:      p.ClientName,
		ProjectURL:      p.ProjectURL,
		GithubURL:       p.GithubURL,
		FeaturesFa:      p.FeaturesFa,
		FeaturesEn:      p.FeaturesEn,
		IsActive:        utils.IsTrue(p.IsActive),
		Order:           p.Order,
	}
	if p.StartDate != nil {
		detail.StartDate = utils.ToPtr(p.StartDate.Format("2006-01-02"))
	}
	if p.CompletionDate != nil {
		detail.CompletionDate = utils.ToPtr(p.CompletionDate.Format("2006-01-02"))
	}
	return detail
}

func toTestimonialItem(t *models.ProjectTestimonial) dto.TestimonialItem {
	return dto.TestimonialItem{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		ClientName:     t.ClientName,
		ClientPosition: t.ClientPosition,
		ClientCompany:  t.ClientCompany,
		ClientPhoto:    t.ClientPhoto,
		ContentFa:      t.ContentFa,
		ContentEn:      t.ContentEn,
		Rating:         t.Rating,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}
