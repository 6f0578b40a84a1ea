package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// HeroSection is the landing banner content with bilingual text pairs
type HeroSection struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleFa         string  `gorm:"size:200;not null" json:"title_fa"`
	TitleEn         string  `gorm:"size:200;not null" json:"title_en"`
	SubtitleFa      string  `gorm:"type:text;not null" json:"subtitle_fa"`
	SubtitleEn      string  `gorm:"type:text;not null" json:"subtitle_en"`
	BackgroundImage *string `gorm:"size:500" json:"background_image,omitempty"`

	CTAButtonTextFa string `gorm:"size:100" json:"cta_button_text_fa"`
	CTAButtonTextEn string `gorm:"size:100" json:"cta_button_text_en"`
	CTAButtonLink   string `gorm:"size:200" json:"cta_button_link"`

	SecondaryButtonTextFa string `gorm:"size:100" json:"secondary_button_text_fa"`
	SecondaryButtonTextEn string `gorm:"size:100" json:"secondary_button_text_en"`
	SecondaryButtonLink   string `gorm:"size:200" json:"secondary_button_link"`

	IsActive *bool `gorm:"default:true" json:"is_active"`
	Order    int   `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (HeroSection) TableName() string { return "hero_sections" }

// BeforeCreate normalizes the creation timestamp
func (h *HeroSection) BeforeCreate(tx *gorm.DB) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = utils.UTCNow()
	}
	return nil
}

// HeroSectionFilter represents filter criteria for hero section queries
type HeroSectionFilter struct {
	ID       *uint `json:"id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
