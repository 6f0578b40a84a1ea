package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service is an offered service card with bilingual text pairs
type Service struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleFa       string  `gorm:"size:200;not null" json:"title_fa"`
	TitleEn       string  `gorm:"size:200;not null" json:"title_en"`
	DescriptionFa string  `gorm:"type:text;not null" json:"description_fa"`
	DescriptionEn string  `gorm:"type:text;not null" json:"description_en"`
	Icon          string  `gorm:"size:100;not null;default:code" json:"icon"`
	Image         *string `gorm:"size:500" json:"image,omitempty"`

	Technologies pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"technologies"`
	FeaturesFa   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"features_fa"`
	FeaturesEn   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"features_en"`
	CodeSnippet  *string        `gorm:"type:text" json:"code_snippet,omitempty"`

	IsActive *bool `gorm:"default:true" json:"is_active"`
	Order    int   `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Service) TableName() string { return "services" }

// BeforeCreate normalizes defaults
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.Icon == "" {
		s.Icon = "code"
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = utils.UTCNow()
	}
	return nil
}

// ServiceFilter represents filter criteria for service queries
type ServiceFilter struct {
	ID       *uint `json:"id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
