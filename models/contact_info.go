package models

// ContactInfo is the published contact block (email, phones, address, socials)
type ContactInfo struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string  `gorm:"size:255;not null" json:"email"`
	Phone1    string  `gorm:"size:20;not null" json:"phone1"`
	Phone2    *string `gorm:"size:20" json:"phone2,omitempty"`
	AddressFa string  `gorm:"type:text;not null" json:"address_fa"`
	AddressEn string  `gorm:"type:text;not null" json:"address_en"`
	GoogleMapsURL *string `gorm:"size:500" json:"google_maps_url,omitempty"`

	Instagram *string `gorm:"size:500" json:"instagram,omitempty"`
	Telegram  *string `gorm:"size:500" json:"telegram,omitempty"`
	Linkedin  *string `gorm:"size:500" json:"linkedin,omitempty"`
	Twitter   *string `gorm:"size:500" json:"twitter,omitempty"`

	IsActive *bool `gorm:"default:true" json:"is_active"`
}

func (ContactInfo) TableName() string { return "contact_info" }

// ContactInfoFilter represents filter criteria for contact info queries
type ContactInfoFilter struct {
	ID       *uint `json:"id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}
