package dto

// HeroItem is a landing banner block
type HeroItem struct {
	ID                    uint    `json:"id"`
	TitleFa               string  `json:"title_fa"`
	TitleEn               string  `json:"title_en"`
	SubtitleFa            string  `json:"subtitle_fa"`
	SubtitleEn            string  `json:"subtitle_en"`
	BackgroundImage       *string `json:"background_image,omitempty"`
	CTAButtonTextFa       string  `json:"cta_button_text_fa"`
	CTAButtonTextEn       string  `json:"cta_button_text_en"`
	CTAButtonLink         string  `json:"cta_button_link"`
	SecondaryButtonTextFa string  `json:"secondary_button_text_fa"`
	SecondaryButtonTextEn string  `json:"secondary_button_text_en"`
	SecondaryButtonLink   string  `json:"secondary_button_link"`
	IsActive              bool    `json:"is_active"`
	Order                 int     `json:"order"`
}

// ServiceItem is an offered service card
type ServiceItem struct {
	ID            uint     `json:"id"`
	TitleFa       string   `json:"title_fa"`
	TitleEn       string   `json:"title_en"`
	DescriptionFa string   `json:"description_fa"`
	DescriptionEn string   `json:"description_en"`
	Icon          string   `json:"icon"`
	Image         *string  `json:"image,omitempty"`
	Technologies  []string `json:"technologies"`
	FeaturesFa    []string `json:"features_fa"`
	FeaturesEn    []string `json:"features_en"`
	CodeSnippet   *string  `json:"code_snippet,omitempty"`
	IsActive      bool     `json:"is_active"`
	Order         int      `json:"order"`
}

// TeamMemberItem is a staff profile card
type TeamMemberItem struct {
	ID              uint     `json:"id"`
	NameFa          string   `json:"name_fa"`
	NameEn          string   `json:"name_en"`
	PositionFa      string   `json:"position_fa"`
	PositionEn      string   `json:"position_en"`
	BioFa           *string  `json:"bio_fa,omitempty"`
	BioEn           *string  `json:"bio_en,omitempty"`
	Photo           *string  `json:"photo,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears uint     `json:"experience_years"`
	ProjectsCount   uint     `json:"projects_count"`
	Email           *string  `json:"email,omitempty"`
	Linkedin        *string  `json:"linkedin,omitempty"`
	Twitter         *string  `json:"twitter,omitempty"`
	IsActive        bool     `json:"is_active"`
	Order           int      `json:"order"`
}

// AboutItem is the about block with headline statistics
type AboutItem struct {
	ID                uint    `json:"id"`
	TitleFa           string  `json:"title_fa"`
	TitleEn           string  `json:"title_en"`
	DescriptionFa     string  `json:"description_fa"`
	DescriptionEn     string  `json:"description_en"`
	Image             *string `json:"image,omitempty"`
	VideoURL          *string `json:"video_url,omitempty"`
	ProjectsCompleted uint    `json:"projects_completed"`
	HappyClients      uint    `json:"happy_clients"`
	AwardsWon         uint    `json:"awards_won"`
	YearsExperience   uint    `json:"years_experience"`
	IsActive          bool    `json:"is_active"`
}

// ContactInfoItem is the published contact block
type ContactInfoItem struct {
	ID            uint    `json:"id"`
	Email         string  `json:"email"`
	Phone1        string  `json:"phone1"`
	Phone2        *string `json:"phone2,omitempty"`
	AddressFa     string  `json:"address_fa"`
	AddressEn     string  `json:"address_en"`
	GoogleMapsURL *string `json:"google_maps_url,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Telegram      *string `json:"telegram,omitempty"`
	Linkedin      *string `json:"linkedin,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// SiteSettingItem is a key/value configuration pair
type SiteSettingItem struct {
	ID          uint    `json:"id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// ContentBundleResponse is the aggregate landing payload. Language is the
// request-scoped echo; it never touches any account preference.
type ContentBundleResponse struct {
	Message     string           `json:"message"`
	Language    string           `json:"language"`
	Hero        *HeroItem        `json:"hero,omitempty"`
	About       *AboutItem       `json:"about,omitempty"`
	ContactInfo *ContactInfoItem `json:"contact_info,omitempty"`
	Services    []ServiceItem    `json:"services"`
	Team        []TeamMemberItem `json:"team"`
}

// ListHeroResponse lists active hero blocks in curated order
type ListHeroResponse struct {
	Message string     `json:"message"`
	Items   []HeroItem `json:"items"`
}

// ListServicesResponse lists active service cards in curated order
type ListServicesResponse struct {
	Message string        `json:"message"`
	Items   []ServiceItem `json:"items"`
}

// ListTeamResponse lists active team profiles in curated order
type ListTeamResponse struct {
	Message string           `json:"message"`
	Items   []TeamMemberItem `json:"items"`
}

// ListAboutResponse lists active about blocks
type ListAboutResponse struct {
	Message string      `json:"message"`
	Items   []AboutItem `json:"items"`
}

// ListContactInfoResponse lists active contact blocks
type ListContactInfoResponse struct {
	Message string            `json:"message"`
	Items   []ContactInfoItem `json:"items"`
}

// ListSettingsResponse lists all key/value settings
type ListSettingsResponse struct {
	Message string            `json:"message"`
	Items   []SiteSettingItem `json:"items"`
}

// ContactRequest is an unauthenticated contact-form submission
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,min=1,max=200"`
	Message string  `json:"message" validate:"required,min=1"`
}

// ContactResponse acknowledges the submission
type ContactResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// ContactMessageItem is a stored submission awaiting staff review
type ContactMessageItem struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	CreatedAt string  `json:"created_at"`
}

// ListContactMessagesRequest filters stored submissions for staff review
type ListContactMessagesRequest struct {
	IsRead   *bool `json:"is_read,omitempty"`
	Page     uint  `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize uint  `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// ListContactMessagesResponse lists submissions newest first
type ListContactMessagesResponse struct {
	Message string               `json:"message"`
	Items   []ContactMessageItem `json:"items"`
	Total   int64                `json:"total"`
}

// SaveHeroRequest creates or updates a hero block. ID zero means create.
type SaveHeroRequest struct {
	ID                    uint    `json:"-"`
	TitleFa               string  `json:"title_fa" validate:"required,max=200"`
	TitleEn               string  `json:"title_en" validate:"required,max=200"`
	SubtitleFa            string  `json:"subtitle_fa" validate:"required"`
	SubtitleEn            string  `json:"subtitle_en" validate:"required"`
	BackgroundImage       *string `json:"background_image,omitempty" validate:"omitempty,max=500"`
	CTAButtonTextFa       string  `json:"cta_button_text_fa,omitempty" validate:"omitempty,max=100"`
	CTAButtonTextEn       string  `json:"cta_button_text_en,omitempty" validate:"omitempty,max=100"`
	CTAButtonLink         string  `json:"cta_button_link,omitempty" validate:"omitempty,max=200"`
	SecondaryButtonTextFa string  `json:"secondary_button_text_fa,omitempty" validate:"omitempty,max=100"`
	SecondaryButtonTextEn string  `json:"secondary_button_text_en,omitempty" validate:"omitempty,max=100"`
	SecondaryButtonLink   string  `json:"secondary_button_link,omitempty" validate:"omitempty,max=200"`
	IsActive              *bool   `json:"is_active,omitempty"`
	Order                 int     `json:"order,omitempty"`
}

// SaveServiceRequest creates or updates a service card. ID zero means create.
type SaveServiceRequest struct {
	ID            uint     `json:"-"`
	TitleFa       string   `json:"title_fa" validate:"required,max=200"`
	TitleEn       string   `json:"title_en" validate:"required,max=200"`
	DescriptionFa string   `json:"description_fa" validate:"required"`
	DescriptionEn string   `json:"description_en" validate:"required"`
	Icon          string   `json:"icon,omitempty" validate:"omitempty,max=100"`
	Image         *string  `json:"image,omitempty" validate:"omitempty,max=500"`
	Technologies  []string `json:"technologies,omitempty"`
	FeaturesFa    []string `json:"features_fa,omitempty"`
	FeaturesEn    []string `json:"features_en,omitempty"`
	CodeSnippet   *string  `json:"code_snippet,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	Order         int      `json:"order,omitempty"`
}

// SaveTeamMemberRequest creates or updates a team profile. ID zero means create.
type SaveTeamMemberRequest struct {
	ID              uint     `json:"-"`
	NameFa          string   `json:"name_fa" validate:"required,max=200"`
	NameEn          string   `json:"name_en" validate:"required,max=200"`
	PositionFa      string   `json:"position_fa" validate:"required,max=200"`
	PositionEn      string   `json:"position_en" validate:"required,max=200"`
	BioFa           *string  `json:"bio_fa,omitempty"`
	BioEn           *string  `json:"bio_en,omitempty"`
	Photo           *string  `json:"photo,omitempty" validate:"omitempty,max=500"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears uint     `json:"experience_years,omitempty"`
	ProjectsCount   uint     `json:"projects_count,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Linkedin        *string  `json:"linkedin,omitempty" validate:"omitempty,max=500"`
	Twitter         *string  `json:"twitter,omitempty" validate:"omitempty,max=500"`
	IsActive        *bool    `json:"is_active,omitempty"`
	Order           int      `json:"order,omitempty"`
}

// SaveAboutRequest creates or updates the about block. ID zero means create.
type SaveAboutRequest struct {
	ID                uint    `json:"-"`
	TitleFa           string  `json:"title_fa" validate:"required,max=200"`
	TitleEn           string  `json:"title_en" validate:"required,max=200"`
	DescriptionFa     string  `json:"description_fa" validate:"required"`
	DescriptionEn     string  `json:"description_en" validate:"required"`
	Image             *string `json:"image,omitempty" validate:"omitempty,max=500"`
	VideoURL          *string `json:"video_url,omitempty" validate:"omitempty,max=500"`
	ProjectsCompleted uint    `json:"projects_completed,omitempty"`
	HappyClients      uint    `json:"happy_clients,omitempty"`
	AwardsWon         uint    `json:"awards_won,omitempty"`
	YearsExperience   uint    `json:"years_experience,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

// SaveContactInfoRequest creates or updates the contact block. ID zero means create.
type SaveContactInfoRequest struct {
	ID            uint    `json:"-"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Phone1        string  `json:"phone1" validate:"required,max=20"`
	Phone2        *string `json:"phone2,omitempty" validate:"omitempty,max=20"`
	AddressFa     string  `json:"address_fa" validate:"required"`
	AddressEn     string  `json:"address_en" validate:"required"`
	GoogleMapsURL *string `json:"google_maps_url,omitempty" validate:"omitempty,max=500"`
	Instagram     *string `json:"instagram,omitempty" validate:"omitempty,max=500"`
	Telegram      *string `json:"telegram,omitempty" validate:"omitempty,max=500"`
	Linkedin      *string `json:"linkedin,omitempty" validate:"omitempty,max=500"`
	Twitter       *string `json:"twitter,omitempty" validate:"omitempty,max=500"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// SaveSettingRequest creates or updates a key/value pair. ID zero means create.
type SaveSettingRequest struct {
	ID          uint    `json:"-"`
	Key         string  `json:"key" validate:"required,max=100"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// SaveContentResponse wraps the stored content record of any kind
type SaveContentResponse struct {
	Message string `json:"message"`
	Item    any    `json:"item"`
}
