package dto

// CategoryItem is a project category with its live project count
type CategoryItem struct {
	ID            uint   `json:"id"`
	NameFa        string `json:"name_fa"`
	NameEn        string `json:"name_en"`
	Slug          string `json:"slug"`
	Icon          string `json:"icon"`
	Order         int    `json:"order"`
	IsActive      bool   `json:"is_active"`
	ProjectsCount int64  `json:"projects_count"`
}

// ListCategoriesResponse lists categories in curated order
type ListCategoriesResponse struct {
	Message    string         `json:"message"`
	Categories []CategoryItem `json:"categories"`
}

// ProjectListItem is the card shape used in listings
type ProjectListItem struct {
	ID                 uint     `json:"id"`
	TitleFa            string   `json:"title_fa"`
	TitleEn            string   `json:"title_en"`
	Slug               string   `json:"slug"`
	ShortDescriptionFa string   `json:"short_description_fa"`
	ShortDescriptionEn string   `json:"short_description_en"`
	CategorySlug       string   `json:"category_slug"`
	CategoryNameFa     string   `json:"category_name_fa"`
	CategoryNameEn     string   `json:"category_name_en"`
	FeaturedImage      string   `json:"featured_image"`
	Technologies       []string `json:"technologies"`
	Status             string   `json:"status"`
	IsFeatured         bool     `json:"is_featured"`
	ViewsCount         uint     `json:"views_count"`
	CreatedAt          string   `json:"created_at"`
}

// ProjectDetail is the full project shape
type ProjectDetail struct {
	ProjectListItem
	DescriptionFa  string   `json:"description_fa"`
	DescriptionEn  string   `json:"description_en"`
	Gallery        []string `json:"gallery"`
	ClientName     *string  `json:"client_name,omitempty"`
	ProjectURL     *string  `json:"project_url,omitempty"`
	GithubURL      *string  `json:"github_url,omitempty"`
	FeaturesFa     []string `json:"features_fa"`
	FeaturesEn     []string `json:"features_en"`
	StartDate      *string  `json:"start_date,omitempty"`
	CompletionDate *string  `json:"completion_date,omitempty"`
	IsActive       bool     `json:"is_active"`
	Order          int      `json:"order"`
}

// ListProjectsRequest filters the public project listing
type ListProjectsRequest struct {
	CategorySlug *string `json:"category,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=completed in_progress planned"`
	Featured     *bool   `json:"featured,omitempty"`
	Technology   *string `json:"tech,omitempty"`
	Page         uint    `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize     uint    `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// ListProjectsResponse lists projects featured-first
type ListProjectsResponse struct {
	Message  string            `json:"message"`
	Projects []ProjectListItem `json:"projects"`
	Total    int64             `json:"total"`
}

// GetProjectResponse wraps a single project
type GetProjectResponse struct {
	Message string        `json:"message"`
	Project ProjectDetail `json:"project"`
}

// RelatedProjectsResponse lists up to four related projects
type RelatedProjectsResponse struct {
	Message  string            `json:"message"`
	Projects []ProjectListItem `json:"projects"`
}

// TestimonialItem is a client quote
type TestimonialItem struct {
	ID             uint    `json:"id"`
	ProjectID      uint    `json:"project_id"`
	ClientName     string  `json:"client_name"`
	ClientPosition *string `json:"client_position,omitempty"`
	ClientCompany  *string `json:"client_company,omitempty"`
	ClientPhoto    *string `json:"client_photo,omitempty"`
	ContentFa      string  `json:"content_fa"`
	ContentEn      string  `json:"content_en"`
	Rating         int     `json:"rating"`
	CreatedAt      string  `json:"created_at"`
}

// ListTestimonialsResponse lists quotes newest first
type ListTestimonialsResponse struct {
	Message      string            `json:"message"`
	Testimonials []TestimonialItem `json:"testimonials"`
}

// PortfolioStatsResponse aggregates catalog totals
type PortfolioStatsResponse struct {
	Message            string `json:"message"`
	TotalProjects      int64  `json:"total_projects"`
	CompletedProjects  int64  `json:"completed_projects"`
	InProgressProjects int64  `json:"in_progress_projects"`
	PlannedProjects    int64  `json:"planned_projects"`
	FeaturedProjects   int64  `json:"featured_projects"`
	TotalCategories    int64  `json:"total_categories"`
}

// SaveCategoryRequest creates or updates a category. ID zero means create.
type SaveCategoryRequest struct {
	ID       uint   `json:"-"`
	NameFa   string `json:"name_fa" validate:"required,max=100"`
	NameEn   string `json:"name_en" validate:"required,max=100"`
	Slug     string `json:"slug" validate:"required,max=100"`
	Icon     string `json:"icon,omitempty" validate:"omitempty,max=100"`
	Order    int    `json:"order,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// SaveCategoryResponse returns the stored category
type SaveCategoryResponse struct {
	Message  string       `json:"message"`
	Category CategoryItem `json:"category"`
}

// SaveProjectRequest creates or updates a project. ID zero means create.
type SaveProjectRequest struct {
	ID                 uint     `json:"-"`
	TitleFa            string   `json:"title_fa" validate:"required,max=200"`
	TitleEn            string   `json:"title_en" validate:"required,max=200"`
	Slug               string   `json:"slug" validate:"required,max=200"`
	DescriptionFa      string   `json:"description_fa" validate:"required"`
	DescriptionEn      string   `json:"description_en" validate:"required"`
	ShortDescriptionFa string   `json:"short_description_fa,omitempty" validate:"omitempty,max=300"`
	ShortDescriptionEn string   `json:"short_description_en,omitempty" validate:"omitempty,max=300"`
	CategoryID         uint     `json:"category_id" validate:"required"`
	FeaturedImage      string   `json:"featured_image,omitempty" validate:"omitempty,max=500"`
	Gallery            []string `json:"gallery,omitempty"`
	ClientName         *string  `json:"client_name,omitempty" validate:"omitempty,max=200"`
	ProjectURL         *string  `json:"project_url,omitempty" validate:"omitempty,max=500"`
	GithubURL          *string  `json:"github_url,omitempty" validate:"omitempty,max=500"`
	Technologies       []string `json:"technologies,omitempty"`
	FeaturesFa         []string `json:"features_fa,omitempty"`
	FeaturesEn         []string `json:"features_en,omitempty"`
	Status             string   `json:"status,omitempty" validate:"omitempty,oneof=completed in_progress planned"`
	StartDate          *string  `json:"start_date,omitempty"`
	CompletionDate     *string  `json:"completion_date,omitempty"`
	IsFeatured         *bool    `json:"is_featured,omitempty"`
	IsActive           *bool    `json:"is_active,omitempty"`
	Order              int      `json:"order,omitempty"`
}

// SaveProjectResponse returns the stored project
type SaveProjectResponse struct {
	Message string        `json:"message"`
	Project ProjectDetail `json:"project"`
}

// SaveTestimonialRequest creates or updates a testimonial. ID zero means create.
type SaveTestimonialRequest struct {
	ID             uint    `json:"-"`
	ProjectID      uint    `json:"project_id" validate:"required"`
	ClientName     string  `json:"client_name" validate:"required,max=200"`
	ClientPosition *string `json:"client_position,omitempty" validate:"omitempty,max=200"`
	ClientCompany  *string `json:"client_company,omitempty" validate:"omitempty,max=200"`
	ClientPhoto    *string `json:"client_photo,omitempty" validate:"omitempty,max=500"`
	ContentFa      string  `json:"content_fa" validate:"required"`
	ContentEn      string  `json:"content_en" validate:"required"`
	Rating         int     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// SaveTestimonialResponse returns the stored testimonial
type SaveTestimonialResponse struct {
	Message     string          `json:"message"`
	Testimonial TestimonialItem `json:"testimonial"`
}

// DeleteResponse acknowledges a removal
type DeleteResponse struct {
	Message string `json:"message"`
}
