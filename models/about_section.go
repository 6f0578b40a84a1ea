package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// AboutSection holds the about block and its headline statistics
type AboutSection struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleFa       string  `gorm:"size:200;not null" json:"title_fa"`
	TitleEn       string  `gorm:"size:200;not null" json:"title_en"`
	DescriptionFa string  `gorm:"type:text;not null" json:"description_fa"`
	DescriptionEn string  `gorm:"type:text;not null" json:"description_en"`
	Image         *string `gorm:"size:500" json:"image,omitempty"`
	VideoURL      *string `gorm:"size:500" json:"video_url,omitempty"`

	ProjectsCompleted uint `gorm:"not null;default:0" json:"projects_completed"`
	HappyClients      uint `gorm:"not null;default:0" json:"happy_clients"`
	AwardsWon         uint `gorm:"not null;default:0" json:"awards_won"`
	YearsExperience   uint `gorm:"not null;default:0" json:"years_experience"`

	IsActive *bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AboutSection) TableName() string { return "about_sections" }

// BeforeCreate normalizes the creation timestamp
func (a *AboutSection) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = utils.UTCNow()
	}
	return nil
}

// AboutSectionFilter represents filter criteria for about section queries
type AboutSectionFilter struct {
	ID       *uint `json:"id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
