package models

// SiteSetting is a free-form key/value pair for site-wide configuration
type SiteSetting struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Key         string  `gorm:"size:100;not null;uniqueIndex:idx_site_settings_key" json:"key"`
	Value       string  `gorm:"type:text;not null" json:"value"`
	Description *string `gorm:"size:255" json:"description,omitempty"`
}

func (SiteSetting) TableName() string { return "site_settings" }

// SiteSettingFilter represents filter criteria for site setting queries
type SiteSettingFilter struct {
	ID  *uint   `json:"id,omitempty"`
	Key *string `json:"key,omitempty"`
}
