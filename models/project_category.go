package models

import (
	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
	"time"
)

// ProjectCategory groups portfolio projects. Slug is the public lookup key.
type ProjectCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameFa   string `gorm:"size:100;not null" json:"name_fa"`
	NameEn   string `gorm:"size:100;not null" json:"name_en"`
	Slug     string `gorm:"size:100;not null;uniqueIndex:idx_project_categories_slug" json:"slug"`
	Icon     string `gorm:"size:100" json:"icon"`
	Order    int    `gorm:"not null;default:0;index:idx_project_categories_order" json:"order"`
	IsActive *bool  `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Projects []Project `gorm:"foreignKey:CategoryID" json:"-"`
}

func (ProjectCategory) TableName() string { return "project_categories" }

// BeforeCreate normalizes the creation timestamp
func (c *ProjectCategory) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = utils.UTCNow()
	}
	return nil
}

// ProjectCategoryFilter represents filter criteria for category queries
type ProjectCategoryFilter struct {
	ID       *uint   `json:"id,omitempty"`
	Slug     *string `json:"slug,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
