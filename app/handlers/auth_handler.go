// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AuthHandlerInterface defines the contract for authentication handlers
type AuthHandlerInterface interface {
	Register(c fiber.Ctx) error
	Login(c fiber.Ctx) error
	Refresh(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
	GetProfile(c fiber.Ctx) error
	UpdateProfile(c fiber.Ctx) error
	ChangePassword(c fiber.Ctx) error
	ToggleLanguage(c fiber.Ctx) error
	GetStats(c fiber.Ctx) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	flow         businessflow.AuthFlow
	tokenService services.TokenService
	validator    *validator.Validate
}

func (h *AuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(flow businessflow.AuthFlow, tokenService services.TokenService) *AuthHandler {
	return &AuthHandler{
		flow:         flow,
		tokenService: tokenService,
		validator:    validator.New(),
	}
}

// Register handles account creation
// @Summary Account Registration
// @Description Register a new customer account and issue a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account registration data"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.Register(h.createRequestContext(c, "/api/v1/auth/register"), &req, metadata)
	if err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Email already exists", "EMAIL_EXISTS", nil)
		}

		log.Println("Registration failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", "REGISTRATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// Login handles password login
// @Summary Account Login
// @Description Authenticate with email and password and issue a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Invalid credentials or inactive account"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.Login(h.createRequestContext(c, "/api/v1/auth/login"), &req, metadata)
	if err != nil {
		// Credential failures all collapse to one response so the endpoint
		// never confirms whether an email is registered
		if businessflow.IsAccountNotFound(err) || businessflow.IsIncorrectPassword(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}

		log.Println("Login failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh Session
// @Description Exchange a valid refresh token for a new token pair; the old refresh token is revoked
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.SessionDTO} "Session refreshed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Invalid or expired refresh token"
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	access, refresh, err := h.tokenService.RefreshToken(h.createRequestContext(c, "/api/v1/auth/refresh"), req.RefreshToken)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", "INVALID_REFRESH_TOKEN", nil)
	}

	session := dto.SessionDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
		TokenType:    "Bearer",
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Session refreshed successfully", session)
}

// Logout revokes the current session
// @Summary Logout
// @Description Revoke the presented refresh token and the current access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse{data=dto.LogoutResponse} "Logged out successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	ctx := h.createRequestContext(c, "/api/v1/auth/logout")

	// Best-effort revocation on both tokens; an already-invalid token is not
	// an error from the client's point of view
	if req.RefreshToken != "" {
		_ = h.tokenService.RevokeToken(ctx, req.RefreshToken)
	}
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		_ = h.tokenService.RevokeToken(ctx, strings.TrimPrefix(auth, "Bearer "))
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", dto.LogoutResponse{Message: "Logged out successfully"})
}

// GetProfile returns the authenticated account
// @Summary Get Profile
// @Description Return the authenticated account's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/profile [get]
func (h *AuthHandler) GetProfile(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetProfile(h.createRequestContext(c, "/api/v1/profile"), accountID, metadata)
	if err != nil {
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load profile", "PROFILE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// UpdateProfile applies partial profile changes
// @Summary Update Profile
// @Description Update the authenticated account's profile fields; omitted fields are untouched
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/profile [put]
func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}
	req.AccountID = accountID

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.UpdateProfile(h.createRequestContext(c, "/api/v1/profile"), &req, metadata)
	if err != nil {
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", "PROFILE_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ChangePassword replaces the account password
// @Summary Change Password
// @Description Verify the current password and replace it with a new one
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Password change data"
// @Success 200 {object} dto.APIResponse{data=dto.ChangePasswordResponse} "Password changed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or wrong current password"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/profile/password [put]
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}
	req.AccountID = accountID

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ChangePassword(h.createRequestContext(c, "/api/v1/profile/password"), &req, metadata)
	if err != nil {
		if businessflow.IsIncorrectPassword(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Current password is incorrect", "INCORRECT_PASSWORD", nil)
		}
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to change password", "PASSWORD_CHANGE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ToggleLanguage flips the stored account locale
// @Summary Toggle Language
// @Description Flip the account's preferred language between fa and en
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ToggleLanguageResponse} "Language updated successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/profile/language [put]
func (h *AuthHandler) ToggleLanguage(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ToggleLanguage(h.createRequestContext(c, "/api/v1/profile/language"), accountID, metadata)
	if err != nil {
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle language", "LANGUAGE_TOGGLE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetStats summarizes the caller's messaging footprint
// @Summary Account Stats
// @Description Return received/unread message counters and conversation count for the authenticated account
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AccountStatsResponse} "Stats retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/profile/stats [get]
func (h *AuthHandler) GetStats(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetStats(h.createRequestContext(c, "/api/v1/profile/stats"), accountID, metadata)
	if err != nil {
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
		}
		if businessflow.IsAccountInactive(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load stats", "STATS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

func (h *AuthHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *AuthHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
