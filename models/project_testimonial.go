package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// ProjectTestimonial is a client quote attached to a project
type ProjectTestimonial struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID      uint    `gorm:"not null;index:idx_project_testimonials_project_id" json:"project_id"`
	ClientName     string  `gorm:"size:200;not null" json:"client_name"`
	ClientPosition *string `gorm:"size:200" json:"client_position,omitempty"`
	ClientCompany  *string `gorm:"size:200" json:"client_company,omitempty"`
	ClientPhoto    *string `gorm:"size:500" json:"client_photo,omitempty"`
	ContentFa      string  `gorm:"type:text;not null" json:"content_fa"`
	ContentEn      string  `gorm:"type:text;not null" json:"content_en"`
	Rating         int     `gorm:"not null;default:5" json:"rating"`
	IsActive       *bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

func (ProjectTestimonial) TableName() string { return "project_testimonials" }

// BeforeCreate normalizes defaults
func (t *ProjectTestimonial) BeforeCreate(tx *gorm.DB) error {
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = utils.UTCNow()
	}
	return nil
}

// ProjectTestimonialFilter represents filter criteria for testimonial queries
type ProjectTestimonialFilter struct {
	ID        *uint `json:"id,omitempty"`
	ProjectID *uint `json:"project_id,omitempty"`
	IsActive  *bool `json:"is_active,omitempty"`
}
