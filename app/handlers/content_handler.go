package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ContentHandlerInterface defines the contract for content handlers
type ContentHandlerInterface interface {
	GetContentBundle(c fiber.Ctx) error
	ListHero(c fiber.Ctx) error
	ListServices(c fiber.Ctx) error
	ListTeam(c fiber.Ctx) error
	ListAbout(c fiber.Ctx) error
	ListContactInfo(c fiber.Ctx) error
	SubmitContact(c fiber.Ctx) error

	AdminListHero(c fiber.Ctx) error
	AdminSaveHero(c fiber.Ctx) error
	AdminDeleteHero(c fiber.Ctx) error
	AdminListServices(c fiber.Ctx) error
	AdminSaveService(c fiber.Ctx) error
	AdminDeleteService(c fiber.Ctx) error
	AdminListTeam(c fiber.Ctx) error
	AdminSaveTeamMember(c fiber.Ctx) error
	AdminDeleteTeamMember(c fiber.Ctx) error
	AdminListAbout(c fiber.Ctx) error
	AdminSaveAbout(c fiber.Ctx) error
	AdminDeleteAbout(c fiber.Ctx) error
	AdminListContactInfo(c fiber.Ctx) error
	AdminSaveContactInfo(c fiber.Ctx) error
	AdminDeleteContactInfo(c fiber.Ctx) error
	AdminListSettings(c fiber.Ctx) error
	AdminSaveSetting(c fiber.Ctx) error
	AdminDeleteSetting(c fiber.Ctx) error
	AdminListContactMessages(c fiber.Ctx) error
	AdminMarkContactMessageRead(c fiber.Ctx) error
	AdminDeleteContactMessage(c fiber.Ctx) error
	AdminExportContactMessages(c fiber.Ctx) error
}

// ContentHandler handles editorial content and contact intake HTTP requests
type ContentHandler struct {
	flow      businessflow.ContentFlow
	validator *validator.Validate
}

func (h *ContentHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ContentHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewContentHandler creates a new content handler
func NewContentHandler(flow businessflow.ContentFlow) *ContentHandler {
	return &ContentHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// GetContentBundle aggregates the landing payload
// @Summary Content Bundle
// @Description Return hero, about, contact info, services and team in one payload. The lang query is echoed back; unsupported values fall back to fa.
// @Tags Content
// @Produce json
// @Param lang query string false "Display language (fa or en, default fa)"
// @Success 200 {object} dto.APIResponse{data=dto.ContentBundleResponse} "Content retrieved successfully"
// @Router /api/v1/content [get]
func (h *ContentHandler) GetContentBundle(c fiber.Ctx) error {
	lang := strings.ToLower(c.Query("lang"))

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetContentBundle(h.createRequestContext(c, "/api/v1/content"), lang, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load content", "CONTENT_BUNDLE_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListHero lists active hero blocks
// @Summary List Hero Sections
// @Tags Content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListHeroResponse} "Hero sections retrieved successfully"
// @Router /api/v1/content/hero [get]
func (h *ContentHandler) ListHero(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListHero(h.createRequestContext(c, "/api/v1/content/hero"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list hero sections", "LIST_HERO_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListServices lists active service cards
// @Summary List Services
// @Tags Content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListServicesResponse} "Services retrieved successfully"
// @Router /api/v1/content/services [get]
func (h *ContentHandler) ListServices(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListServices(h.createRequestContext(c, "/api/v1/content/services"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list services", "LIST_SERVICES_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListTeam lists active team profiles
// @Summary List Team Members
// @Tags Content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListTeamResponse} "Team members retrieved successfully"
// @Router /api/v1/content/team [get]
func (h *ContentHandler) ListTeam(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListTeam(h.createRequestContext(c, "/api/v1/content/team"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list team members", "LIST_TEAM_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListAbout lists active about blocks
// @Summary List About Sections
// @Tags Content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListAboutResponse} "About sections retrieved successfully"
// @Router /api/v1/content/about [get]
func (h *ContentHandler) ListAbout(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListAbout(h.createRequestContext(c, "/api/v1/content/about"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list about sections", "LIST_ABOUT_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListContactInfo lists active contact blocks
// @Summary List Contact Info
// @Tags Content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListContactInfoResponse} "Contact info retrieved successfully"
// @Router /api/v1/content/contact-info [get]
func (h *ContentHandler) ListContactInfo(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListContactInfo(h.createRequestContext(c, "/api/v1/content/contact-info"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list contact info", "LIST_CONTACT_INFO_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// SubmitContact stores an unauthenticated contact-form submission
// @Summary Submit Contact Message
// @Description Store a contact-form submission and alert staff by email
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form data"
// @Success 201 {object} dto.APIResponse{data=dto.ContactResponse} "Contact message received"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/contact [post]
func (h *ContentHandler) SubmitContact(c fiber.Ctx) error {
	var req dto.ContactRequest
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
	result, err := h.flow.SubmitContact(h.createRequestContext(c, "/api/v1/contact"), &req, metadata)
	if err != nil {
		log.Println("Contact submission failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit contact message", "CONTACT_SUBMIT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// AdminListHero lists every hero block including inactive ones
func (h *ContentHandler) AdminListHero(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListHero(h.createRequestContext(c, "/api/v1/admin/content/hero"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list hero sections", "ADMIN_LIST_HERO_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveHero creates or updates a hero block
func (h *ContentHandler) AdminSaveHero(c fiber.Ctx) error {
	var req dto.SaveHeroRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero ID", "INVALID_HERO_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveHero(h.createRequestContext(c, "/api/v1/admin/content/hero"), &req, metadata)
	if err != nil {
		return h.mapContentError(c, err, "SAVE_HERO_FAILED", "Failed to save hero section")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteHero removes a hero block
func (h *ContentHandler) AdminDeleteHero(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid hero ID", "INVALID_HERO_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteHero(h.createRequestContext(c, "/api/v1/admin/content/hero/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_HERO_FAILED", "Failed to delete hero section")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListServices lists every service card including inactive ones
func (h *ContentHandler) AdminListServices(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListServices(h.createRequestContext(c, "/api/v1/admin/content/services"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list services", "ADMIN_LIST_SERVICES_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveService creates or updates a service card
func (h *ContentHandler) AdminSaveService(c fiber.Ctx) error {
	var req dto.SaveServiceRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid service ID", "INVALID_SERVICE_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveService(h.createRequestContext(c, "/api/v1/admin/content/services"), &req, metadata)
	if err != nil {
		return h.mapContentError(c, err, "SAVE_SERVICE_FAILED", "Failed to save service")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteService removes a service card
func (h *ContentHandler) AdminDeleteService(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid service ID", "INVALID_SERVICE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteService(h.createRequestContext(c, "/api/v1/admin/content/services/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_SERVICE_FAILED", "Failed to delete service")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListTeam lists every team profile including inactive ones
func (h *ContentHandler) AdminListTeam(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListTeam(h.createRequestContext(c, "/api/v1/admin/content/team"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list team members", "ADMIN_LIST_TEAM_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveTeamMember creates or updates a team profile
func (h *ContentHandler) AdminSaveTeamMember(c fiber.Ctx) error {
	var req dto.SaveTeamMemberRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team member ID", "INVALID_TEAM_MEMBER_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveTeamMember(h.createRequestContext(c, "/api/v1/admin/content/team"), &req, metadata)
	if err != nil {
		return h.mapContentError(c, err, "SAVE_TEAM_MEMBER_FAILED", "Failed to save team member")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteTeamMember removes a team profile
func (h *ContentHandler) AdminDeleteTeamMember(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team member ID", "INVALID_TEAM_MEMBER_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteTeamMember(h.createRequestContext(c, "/api/v1/admin/content/team/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_TEAM_MEMBER_FAILED", "Failed to delete team member")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListAbout lists every about block including inactive ones
func (h *ContentHandler) AdminListAbout(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListAbout(h.createRequestContext(c, "/api/v1/admin/content/about"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list about sections", "ADMIN_LIST_ABOUT_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveAbout creates or updates the about block
func (h *ContentHandler) AdminSaveAbout(c fiber.Ctx) error {
	var req dto.SaveAboutRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid about ID", "INVALID_ABOUT_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveAbout(h.createRequestContext(c, "/api/v1/admin/content/about"), &req, metadata)
	if err != nil {
		return h.mapContentError(c, err, "SAVE_ABOUT_FAILED", "Failed to save about section")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteAbout removes the about block
func (h *ContentHandler) AdminDeleteAbout(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid about ID", "INVALID_ABOUT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteAbout(h.createRequestContext(c, "/api/v1/admin/content/about/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_ABOUT_FAILED", "Failed to delete about section")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListContactInfo lists every contact block including inactive ones
func (h *ContentHandler) AdminListContactInfo(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListContactInfo(h.createRequestContext(c, "/api/v1/admin/content/contact-info"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list contact info", "ADMIN_LIST_CONTACT_INFO_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveContactInfo creates or updates the contact block
func (h *ContentHandler) AdminSaveContactInfo(c fiber.Ctx) error {
	var req dto.SaveContactInfoRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact info ID", "INVALID_CONTACT_INFO_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveContactInfo(h.createRequestContext(c, "/api/v1/admin/content/contact-info"), &req, metadata)
	if err != nil {
		return h.mapContentError(c, err, "SAVE_CONTACT_INFO_FAILED", "Failed to save contact info")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteContactInfo removes the contact block
func (h *ContentHandler) AdminDeleteContactInfo(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact info ID", "INVALID_CONTACT_INFO_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteContactInfo(h.createRequestContext(c, "/api/v1/admin/content/contact-info/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_CONTACT_INFO_FAILED", "Failed to delete contact info")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListSettings lists all key/value settings
func (h *ContentHandler) AdminListSettings(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListSettings(h.createRequestContext(c, "/api/v1/admin/content/settings"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list settings", "ADMIN_LIST_SETTINGS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveSetting creates or updates a key/value pair
func (h *ContentHandler) AdminSaveSetting(c fiber.Ctx) error {
	var req dto.SaveSettingRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}
	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid setting ID", "INVALID_SETTING_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveSetting(h.createRequestContext(c, "/api/v1/admin/content/settings"), &req, metadata)
	if err != nil {
		if businessflow.IsSettingKeyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Setting key already exists", "SETTING_KEY_EXISTS", nil)
		}
		return h.mapContentError(c, err, "SAVE_SETTING_FAILED", "Failed to save setting")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteSetting removes a key/value pair
func (h *ContentHandler) AdminDeleteSetting(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid setting ID", "INVALID_SETTING_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteSetting(h.createRequestContext(c, "/api/v1/admin/content/settings/:id"), id, metadata)
	if err != nil {
		return h.mapContentError(c, err, "DELETE_SETTING_FAILED", "Failed to delete setting")
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListContactMessages lists stored submissions for staff review
// @Summary Admin List Contact Messages
// @Description Staff listing of contact-form submissions, newest first, with optional read-state filter
// @Tags Admin
// @Produce json
// @Param is_read query boolean false "Filter by read state"
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListContactMessagesResponse} "Contact messages retrieved successfully"
// @Failure 403 {object} dto.APIResponse "Forbidden - staff only"
// @Router /api/v1/admin/contact-messages [get]
func (h *ContentHandler) AdminListContactMessages(c fiber.Ctx) error {
	req := &dto.ListContactMessagesRequest{
		Page:     parsePageQuery(c, "page"),
		PageSize: parsePageQuery(c, "page_size"),
	}
	if v := strings.ToLower(c.Query("is_read")); v == "true" || v == "1" {
		b := true
		req.IsRead = &b
	} else if v == "false" || v == "0" {
		b := false
		req.IsRead = &b
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListContactMessages(h.createRequestContext(c, "/api/v1/admin/contact-messages"), req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list contact messages", "ADMIN_LIST_CONTACT_MESSAGES_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminMarkContactMessageRead flags one submission as handled
func (h *ContentHandler) AdminMarkContactMessageRead(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact message ID", "INVALID_CONTACT_MESSAGE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminMarkContactMessageRead(h.createRequestContext(c, "/api/v1/admin/contact-messages/:id/read"), id, metadata)
	if err != nil {
		if businessflow.IsContactMessageNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Contact message not found", "CONTACT_MESSAGE_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark contact message", "MARK_CONTACT_MESSAGE_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteContactMessage removes one submission
func (h *ContentHandler) AdminDeleteContactMessage(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact message ID", "INVALID_CONTACT_MESSAGE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteContactMessage(h.createRequestContext(c, "/api/v1/admin/contact-messages/:id"), id, metadata)
	if err != nil {
		if businessflow.IsContactMessageNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Contact message not found", "CONTACT_MESSAGE_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact message", "DELETE_CONTACT_MESSAGE_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminExportContactMessages streams every submission as an xlsx workbook
// @Summary Admin Export Contact Messages
// @Description Download all contact-form submissions as an xlsx workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "xlsx workbook"
// @Failure 403 {object} dto.APIResponse "Forbidden - staff only"
// @Router /api/v1/admin/contact-messages/export [get]
func (h *ContentHandler) AdminExportContactMessages(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	data, filename, err := h.flow.AdminExportContactMessages(h.createRequestContext(c, "/api/v1/admin/contact-messages/export"), metadata)
	if err != nil {
		log.Println("Contact export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export contact messages", "EXPORT_CONTACT_MESSAGES_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// bindAndValidate binds the JSON body and runs struct validation
func (h *ContentHandler) bindAndValidate(c fiber.Ctx, req any) error {
	if err := c.Bind().JSON(req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}
	return nil
}

// mapContentError converts the shared content sentinels, falling back to 500
func (h *ContentHandler) mapContentError(c fiber.Ctx, err error, code, message string) error {
	if businessflow.IsContentNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Content record not found", "CONTENT_NOT_FOUND", nil)
	}
	return h.ErrorResponse(c, fiber.StatusInternalServerError, message, code, nil)
}

func (h *ContentHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *ContentHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
