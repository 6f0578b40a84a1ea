package models

import (
	"time"

	"github.com/arkasoft/arka-portal/utils"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeamMember is a staff profile card with bilingual text pairs
type TeamMember struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	NameFa     string  `gorm:"size:200;not null" json:"name_fa"`
	NameEn     string  `gorm:"size:200;not null" json:"name_en"`
	PositionFa string  `gorm:"size:200;not null" json:"position_fa"`
	PositionEn string  `gorm:"size:200;not null" json:"position_en"`
	BioFa      *string `gorm:"type:text" json:"bio_fa,omitempty"`
	BioEn      *string `gorm:"type:text" json:"bio_en,omitempty"`
	Photo      *string `gorm:"size:500" json:"photo,omitempty"`

	Skills          pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"skills"`
	ExperienceYears uint           `gorm:"not null;default:0" json:"experience_years"`
	ProjectsCount   uint           `gorm:"not null;default:0" json:"projects_count"`

	Email    *string `gorm:"size:255" json:"email,omitempty"`
	Linkedin *string `gorm:"size:500" json:"linkedin,omitempty"`
	Twitter  *string `gorm:"size:500" json:"twitter,omitempty"`

	IsActive *bool `gorm:"default:true" json:"is_active"`
	Order    int   `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TeamMember) TableName() string { return "team_members" }

// BeforeCreate normalizes the creation timestamp
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = utils.UTCNow()
	}
	return nil
}

// TeamMemberFilter represents filter criteria for team member queries
type TeamMemberFilter struct {
	ID       *uint `json:"id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
