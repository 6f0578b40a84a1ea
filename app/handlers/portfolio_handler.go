// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// PortfolioHandlerInterface defines the contract for portfolio handlers
type PortfolioHandlerInterface interface {
	ListCategories(c fiber.Ctx) error
	ListProjects(c fiber.Ctx) error
	GetProject(c fiber.Ctx) error
	GetRelatedProjects(c fiber.Ctx) error
	ListProjectTestimonials(c fiber.Ctx) error
	GetStats(c fiber.Ctx) error
	AdminListCategories(c fiber.Ctx) error
	AdminSaveCategory(c fiber.Ctx) error
	AdminDeleteCategory(c fiber.Ctx) error
	AdminListProjects(c fiber.Ctx) error
	AdminSaveProject(c fiber.Ctx) error
	AdminDeleteProject(c fiber.Ctx) error
	AdminListTestimonials(c fiber.Ctx) error
	AdminSaveTestimonial(c fiber.Ctx) error
	AdminDeleteTestimonial(c fiber.Ctx) error
}

// PortfolioHandler handles portfolio catalog HTTP requests
type PortfolioHandler struct {
	flow      businessflow.PortfolioFlow
	validator *validator.Validate
}

func (h *PortfolioHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *PortfolioHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(flow businessflow.PortfolioFlow) *PortfolioHandler {
	return &PortfolioHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ListCategories lists active categories with project counts
// @Summary List Categories
// @Description List active project categories in curated order, each with its active project count
// @Tags Portfolio
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListCategoriesResponse} "Categories retrieved successfully"
// @Router /api/v1/portfolio/categories [get]
func (h *PortfolioHandler) ListCategories(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListCategories(h.createRequestContext(c, "/api/v1/portfolio/categories"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list categories", "LIST_CATEGORIES_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListProjects lists active projects with optional filters
// @Summary List Projects
// @Description List active projects, featured first. Supports category, status, featured and technology filters.
// @Tags Portfolio
// @Produce json
// @Param category query string false "Category slug"
// @Param status query string false "Project status (completed, in_progress, planned)"
// @Param featured query boolean false "Featured only"
// @Param tech query string false "Technology tag"
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListProjectsResponse} "Projects retrieved successfully"
// @Router /api/v1/portfolio/projects [get]
func (h *PortfolioHandler) ListProjects(c fiber.Ctx) error {
	req := h.parseListProjectsRequest(c)

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListProjects(h.createRequestContext(c, "/api/v1/portfolio/projects"), req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list projects", "LIST_PROJECTS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetProject returns one active project and bumps its view counter
// @Summary Get Project
// @Description Return a single active project by slug; each call increments the stored view counter
// @Tags Portfolio
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.APIResponse{data=dto.GetProjectResponse} "Project retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /api/v1/portfolio/projects/{slug} [get]
func (h *PortfolioHandler) GetProject(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Project slug is required", "INVALID_SLUG", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetProject(h.createRequestContext(c, "/api/v1/portfolio/projects/:slug"), slug, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load project", "GET_PROJECT_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetRelatedProjects returns up to four related projects
// @Summary Related Projects
// @Description Return up to four related projects: same category first, then projects sharing technologies
// @Tags Portfolio
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.APIResponse{data=dto.RelatedProjectsResponse} "Related projects retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /api/v1/portfolio/projects/{slug}/related [get]
func (h *PortfolioHandler) GetRelatedProjects(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Project slug is required", "INVALID_SLUG", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetRelatedProjects(h.createRequestContext(c, "/api/v1/portfolio/projects/:slug/related"), slug, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load related projects", "RELATED_PROJECTS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListProjectTestimonials lists active quotes for one project
// @Summary Project Testimonials
// @Description List active testimonials for a project, newest first
// @Tags Portfolio
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.APIResponse{data=dto.ListTestimonialsResponse} "Testimonials retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /api/v1/portfolio/projects/{slug}/testimonials [get]
func (h *PortfolioHandler) ListProjectTestimonials(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Project slug is required", "INVALID_SLUG", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListProjectTestimonials(h.createRequestContext(c, "/api/v1/portfolio/projects/:slug/testimonials"), slug, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list testimonials", "LIST_TESTIMONIALS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetStats aggregates catalog totals
// @Summary Portfolio Stats
// @Description Return project totals per status, featured count and category count
// @Tags Portfolio
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PortfolioStatsResponse} "Stats retrieved successfully"
// @Router /api/v1/portfolio/stats [get]
func (h *PortfolioHandler) GetStats(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetStats(h.createRequestContext(c, "/api/v1/portfolio/stats"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load stats", "PORTFOLIO_STATS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListCategories lists every category including inactive ones
// @Summary Admin List Categories
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListCategoriesResponse} "Categories retrieved successfully"
// @Failure 403 {object} dto.APIResponse "Forbidden - staff only"
// @Router /api/v1/admin/portfolio/categories [get]
func (h *PortfolioHandler) AdminListCategories(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListCategories(h.createRequestContext(c, "/api/v1/admin/portfolio/categories"), metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list categories", "ADMIN_LIST_CATEGORIES_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveCategory creates or updates a category
// @Summary Admin Save Category
// @Description Create a category (POST) or update one (PUT with id). Slug must be unique.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer false "Category ID (update only)"
// @Param request body dto.SaveCategoryRequest true "Category data"
// @Success 200 {object} dto.APIResponse{data=dto.SaveCategoryResponse} "Category saved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Category not found"
// @Failure 409 {object} dto.APIResponse "Slug already exists"
// @Router /api/v1/admin/portfolio/categories [post]
func (h *PortfolioHandler) AdminSaveCategory(c fiber.Ctx) error {
	var req dto.SaveCategoryRequest
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

	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", "INVALID_CATEGORY_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveCategory(h.createRequestContext(c, "/api/v1/admin/portfolio/categories"), &req, metadata)
	if err != nil {
		if businessflow.IsCategoryNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Category not found", "CATEGORY_NOT_FOUND", nil)
		}
		if businessflow.IsSlugAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Slug already exists", "SLUG_EXISTS", nil)
		}

		log.Println("Category save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save category", "SAVE_CATEGORY_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteCategory removes a category
// @Summary Admin Delete Category
// @Tags Admin
// @Produce json
// @Param id path integer true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Category deleted successfully"
// @Failure 404 {object} dto.APIResponse "Category not found"
// @Router /api/v1/admin/portfolio/categories/{id} [delete]
func (h *PortfolioHandler) AdminDeleteCategory(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", "INVALID_CATEGORY_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteCategory(h.createRequestContext(c, "/api/v1/admin/portfolio/categories/:id"), id, metadata)
	if err != nil {
		if businessflow.IsCategoryNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Category not found", "CATEGORY_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete category", "DELETE_CATEGORY_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListProjects lists every project including inactive ones
// @Summary Admin List Projects
// @Tags Admin
// @Produce json
// @Param category query string false "Category slug"
// @Param status query string false "Project status"
// @Param featured query boolean false "Featured only"
// @Param tech query string false "Technology tag"
// @Param page query integer false "Page number"
// @Param page_size query integer false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListProjectsResponse} "Projects retrieved successfully"
// @Router /api/v1/admin/portfolio/projects [get]
func (h *PortfolioHandler) AdminListProjects(c fiber.Ctx) error {
	req := h.parseListProjectsRequest(c)

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListProjects(h.createRequestContext(c, "/api/v1/admin/portfolio/projects"), req, metadata)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list projects", "ADMIN_LIST_PROJECTS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveProject creates or updates a project
// @Summary Admin Save Project
// @Description Create a project (POST) or update one (PUT with id). Slug must be unique, category must exist.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer false "Project ID (update only)"
// @Param request body dto.SaveProjectRequest true "Project data"
// @Success 200 {object} dto.APIResponse{data=dto.SaveProjectResponse} "Project saved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Project or category not found"
// @Failure 409 {object} dto.APIResponse "Slug already exists"
// @Router /api/v1/admin/portfolio/projects [post]
func (h *PortfolioHandler) AdminSaveProject(c fiber.Ctx) error {
	var req dto.SaveProjectRequest
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

	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID", "INVALID_PROJECT_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveProject(h.createRequestContext(c, "/api/v1/admin/portfolio/projects"), &req, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		if businessflow.IsCategoryNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Category not found", "CATEGORY_NOT_FOUND", nil)
		}
		if businessflow.IsSlugAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Slug already exists", "SLUG_EXISTS", nil)
		}

		log.Println("Project save failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save project", "SAVE_PROJECT_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteProject removes a project
// @Summary Admin Delete Project
// @Tags Admin
// @Produce json
// @Param id path integer true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Project deleted successfully"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /api/v1/admin/portfolio/projects/{id} [delete]
func (h *PortfolioHandler) AdminDeleteProject(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID", "INVALID_PROJECT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteProject(h.createRequestContext(c, "/api/v1/admin/portfolio/projects/:id"), id, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete project", "DELETE_PROJECT_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListTestimonials lists every quote for one project
// @Summary Admin List Testimonials
// @Tags Admin
// @Produce json
// @Param id path integer true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListTestimonialsResponse} "Testimonials retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Project not found"
// @Router /api/v1/admin/portfolio/projects/{id}/testimonials [get]
func (h *PortfolioHandler) AdminListTestimonials(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID", "INVALID_PROJECT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListTestimonials(h.createRequestContext(c, "/api/v1/admin/portfolio/projects/:id/testimonials"), id, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list testimonials", "ADMIN_LIST_TESTIMONIALS_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminSaveTestimonial creates or updates a testimonial
// @Summary Admin Save Testimonial
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path integer false "Testimonial ID (update only)"
// @Param request body dto.SaveTestimonialRequest true "Testimonial data"
// @Success 200 {object} dto.APIResponse{data=dto.SaveTestimonialResponse} "Testimonial saved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Project or testimonial not found"
// @Router /api/v1/admin/portfolio/testimonials [post]
func (h *PortfolioHandler) AdminSaveTestimonial(c fiber.Ctx) error {
	var req dto.SaveTestimonialRequest
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

	if c.Params("id") != "" {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid testimonial ID", "INVALID_TESTIMONIAL_ID", nil)
		}
		req.ID = id
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminSaveTestimonial(h.createRequestContext(c, "/api/v1/admin/portfolio/testimonials"), &req, metadata)
	if err != nil {
		if businessflow.IsProjectNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND", nil)
		}
		if businessflow.IsTestimonialNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Testimonial not found", "TESTIMONIAL_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save testimonial", "SAVE_TESTIMONIAL_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminDeleteTestimonial removes a testimonial
// @Summary Admin Delete Testimonial
// @Tags Admin
// @Produce json
// @Param id path integer true "Testimonial ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse} "Testimonial deleted successfully"
// @Failure 404 {object} dto.APIResponse "Testimonial not found"
// @Router /api/v1/admin/portfolio/testimonials/{id} [delete]
func (h *PortfolioHandler) AdminDeleteTestimonial(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid testimonial ID", "INVALID_TESTIMONIAL_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminDeleteTestimonial(h.createRequestContext(c, "/api/v1/admin/portfolio/testimonials/:id"), id, metadata)
	if err != nil {
		if businessflow.IsTestimonialNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Testimonial not found", "TESTIMONIAL_NOT_FOUND", nil)
		}
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete testimonial", "DELETE_TESTIMONIAL_FAILED", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// parseListProjectsRequest reads the shared listing filters from the query string
func (h *PortfolioHandler) parseListProjectsRequest(c fiber.Ctx) *dto.ListProjectsRequest {
	req := &dto.ListProjectsRequest{
		Page:     parsePageQuery(c, "page"),
		PageSize: parsePageQuery(c, "page_size"),
	}
	if v := c.Query("category"); v != "" {
		req.CategorySlug = &v
	}
	if v := c.Query("status"); v != "" {
		req.Status = &v
	}
	if v := c.Query("tech"); v != "" {
		req.Technology = &v
	}
	if v := c.Query("featured"); v == "true" || v == "1" {
		b := true
		req.Featured = &b
	} else if v == "false" || v == "0" {
		b := false
		req.Featured = &b
	}
	return req
}

func (h *PortfolioHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *PortfolioHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
