package dto

// RegisterRequest represents the payload for creating a customer account
type RegisterRequest struct {
	Email             string  `json:"email" validate:"required,email,max=255"`
	Password          string  `json:"password" validate:"required,min=8,max=128"`
	FirstName         string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName          string  `json:"last_name" validate:"required,min=1,max=100"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CompanyName       *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	PreferredLanguage string  `json:"preferred_language,omitempty" validate:"omitempty,oneof=fa en"`
}

// LoginRequest represents the payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthAccountDTO is the account shape returned by auth and profile endpoints
type AuthAccountDTO struct {
	ID                uint    `json:"id"`
	UUID              string  `json:"uuid"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Phone             *string `json:"phone,omitempty"`
	CompanyName       *string `json:"company_name,omitempty"`
	Role              string  `json:"role"`
	PreferredLanguage string  `json:"preferred_language"`
	IsVerified        *bool   `json:"is_verified"`
	IsActive          *bool   `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
}

// SessionDTO carries the issued token pair
type SessionDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Message string         `json:"message"`
	Account AuthAccountDTO `json:"account"`
	Session SessionDTO     `json:"session"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string         `json:"message"`
	Account AuthAccountDTO `json:"account"`
	Session SessionDTO     `json:"session"`
}

// ProfileResponse wraps the caller's account
type ProfileResponse struct {
	Message string         `json:"message"`
	Account AuthAccountDTO `json:"account"`
}

// UpdateProfileRequest carries partial profile changes; nil fields are untouched
type UpdateProfileRequest struct {
	AccountID   uint    `json:"-"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
}

// ChangePasswordRequest verifies the current password before replacing it
type ChangePasswordRequest struct {
	AccountID       uint   `json:"-"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// ChangePasswordResponse acknowledges a password change
type ChangePasswordResponse struct {
	Message string `json:"message"`
}

// ToggleLanguageResponse returns the persisted locale after a toggle
type ToggleLanguageResponse struct {
	Message           string `json:"message"`
	PreferredLanguage string `json:"preferred_language"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes the presented refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutResponse acknowledges the revocation
type LogoutResponse struct {
	Message string `json:"message"`
}

// AccountStatsResponse summarizes the caller's messaging footprint
type AccountStatsResponse struct {
	Message          string `json:"message"`
	Role             string `json:"role"`
	IsVerified       bool   `json:"is_verified"`
	TotalReceived    int64  `json:"total_received_messages"`
	UnreadMessages   int64  `json:"unread_messages"`
	ConversationsNum int64  `json:"conversations_count"`
}
