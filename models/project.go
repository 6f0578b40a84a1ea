package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Project statuses
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusPlanned    = "planned"
)

// Project is a portfolio entry with bilingual text pairs.
// Default listing order: featured first, then explicit order, then newest.
// ViewsCount is monotonic and only ever bumped with an atomic SQL increment.
// Technologies is stored as TEXT[] so the related-projects backfill can use
// a native array-overlap query.
type Project struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleFa            string `gorm:"size:200;not null" json:"title_fa"`
	TitleEn            string `gorm:"size:200;not null" json:"title_en"`
	Slug               string `gorm:"size:200;not null;uniqueIndex:idx_projects_slug" json:"slug"`
	DescriptionFa      string `gorm:"type:text;not null" json:"description_fa"`
	DescriptionEn      string `gorm:"type:text;not null" json:"description_en"`
	ShortDescriptionFa string `gorm:"size:300" json:"short_description_fa"`
	ShortDescriptionEn string `gorm:"size:300" json:"short_description_en"`

	CategoryID uint `gorm:"not null;index:idx_projects_category_id" json:"category_id"`

	FeaturedImage string         `gorm:"size:500" json:"featured_image"`
	Gallery       pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"gallery"`

	ClientName *string `gorm:"size:200" json:"client_name,omitempty"`
	ProjectURL *string `gorm:"size:500" json:"project_url,omitempty"`
	GithubURL  *string `gorm:"size:500" json:"github_url,omitempty"`

	Technologies pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"technologies"`
	FeaturesFa   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"features_fa"`
	FeaturesEn   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"features_en"`

	Status         string     `gorm:"size:20;not null;default:completed;index:idx_projects_status" json:"status"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	IsFeatured *bool `gorm:"default:false;index:idx_projects_is_featured" json:"is_featured"`
	IsActive   *bool `gorm:"default:true;index:idx_projects_is_active" json:"is_active"`
	Order      int   `gorm:"not null;default:0" json:"order"`
	ViewsCount uint  `gorm:"not null;default:0" json:"views_count"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_projects_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Category     *ProjectCategory     `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Testimonials []ProjectTestimonial `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Project) TableName() string { return "projects" }

// BeforeCreate normalizes defaults
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ProjectStatusCompleted
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = utils.UTCNow()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = utils.UTCNow()
	}
	return nil
}

// ProjectFilter represents filter criteria for project queries
type ProjectFilter struct {
	ID           *uint    `json:"id,omitempty"`
	Slug         *string  `json:"slug,omitempty"`
	CategoryID   *uint    `json:"category_id,omitempty"`
	CategorySlug *string  `json:"category_slug,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Technology   *string  `json:"technology,omitempty"`
	IsFeatured   *bool    `json:"is_featured,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	ExcludeIDs   []uint   `json:"exclude_ids,omitempty"`
	TechOverlap  []string `json:"tech_overlap,omitempty"`
}
