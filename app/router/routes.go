// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/handlers"
	"github.com/arkasoft/arka-portal/app/middleware"
	"github.com/arkasoft/arka-portal/config"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app              *fiber.App
	cfg              *config.ProductionConfig
	authMiddleware   *middleware.AuthMiddleware
	authHandler      handlers.AuthHandlerInterface
	contentHandler   handlers.ContentHandlerInterface
	portfolioHandler handlers.PortfolioHandlerInterface
	messagingHandler handlers.MessagingHandlerInterface
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	cfg *config.ProductionConfig,
	authMiddleware *middleware.AuthMiddleware,
	authHandler handlers.AuthHandlerInterface,
	contentHandler handlers.ContentHandlerInterface,
	portfolioHandler handlers.PortfolioHandlerInterface,
	messagingHandler handlers.MessagingHandlerInterface,
) Router {
	// Configure Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Arka Portal API",
		ServerHeader: "Arka-Portal",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:              app,
		cfg:              cfg,
		authMiddleware:   authMiddleware,
		authHandler:      authHandler,
		contentHandler:   contentHandler,
		portfolioHandler: portfolioHandler,
		messagingHandler: messagingHandler,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	// Global middleware
	r.setupMiddleware()

	// Prometheus scrape endpoint, outside the API group so it skips rate limiting
	if r.cfg.Metrics.Enabled {
		path := r.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	// API routes
	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	// Apply general rate limiting to all API routes (aligned with nginx)
	api.Use(r.rateLimiter(r.cfg.Security.GlobalRateLimit, func(c fiber.Ctx) bool {
		return c.Path() == "/api/v1/health"
	}))

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")
	auth.Use(r.rateLimiter(r.cfg.Security.AuthRateLimit, nil))

	auth.Post("/register", r.authHandler.Register)
	auth.Post("/login", r.authHandler.Login)
	auth.Post("/refresh", r.authHandler.Refresh)
	auth.Post("/logout", r.authHandler.Logout)

	// Profile routes require a valid access token
	profile := api.Group("/profile", r.authMiddleware.Authenticate())
	profile.Get("/", r.authHandler.GetProfile)
	profile.Put("/", r.authHandler.UpdateProfile)
	profile.Post("/change-password", r.authHandler.ChangePassword)
	profile.Post("/toggle-language", r.authHandler.ToggleLanguage)
	profile.Get("/stats", r.authHandler.GetStats)

	// Public editorial content
	api.Get("/content", r.contentHandler.GetContentBundle)
	api.Get("/content/hero", r.contentHandler.ListHero)
	api.Get("/content/services", r.contentHandler.ListServices)
	api.Get("/content/team", r.contentHandler.ListTeam)
	api.Get("/content/about", r.contentHandler.ListAbout)
	api.Get("/content/contact-info", r.contentHandler.ListContactInfo)

	// Contact intake gets its own tight limiter to blunt form spam
	api.Post("/contact", r.contentHandler.SubmitContact,
		r.rateLimiter(r.cfg.Security.ContactRateLimit, nil))

	// Public portfolio catalog
	portfolio := api.Group("/portfolio")
	portfolio.Get("/categories", r.portfolioHandler.ListCategories)
	portfolio.Get("/projects", r.portfolioHandler.ListProjects)
	portfolio.Get("/projects/:slug", r.portfolioHandler.GetProject)
	portfolio.Get("/projects/:slug/related", r.portfolioHandler.GetRelatedProjects)
	portfolio.Get("/projects/:slug/testimonials", r.portfolioHandler.ListProjectTestimonials)
	portfolio.Get("/stats", r.portfolioHandler.GetStats)

	// Messaging requires a valid access token
	conversations := api.Group("/conversations", r.authMiddleware.Authenticate())
	conversations.Post("/", r.messagingHandler.CreateConversation)
	conversations.Get("/", r.messagingHandler.ListConversations)
	conversations.Get("/:id", r.messagingHandler.GetConversation)
	conversations.Get("/:id/messages", r.messagingHandler.ListMessages)

	messages := api.Group("/messages", r.authMiddleware.Authenticate())
	messages.Post("/", r.messagingHandler.SendMessage)
	messages.Post("/:id/read", r.messagingHandler.MarkMessageRead)

	notifications := api.Group("/notifications", r.authMiddleware.Authenticate())
	notifications.Get("/", r.messagingHandler.ListNotifications)
	notifications.Post("/read-all", r.messagingHandler.MarkAllNotificationsRead)
	notifications.Post("/:id/read", r.messagingHandler.MarkNotificationRead)

	api.Get("/unread-counts", r.messagingHandler.GetUnreadCounts, r.authMiddleware.Authenticate())

	// Staff surface
	admin := api.Group("/admin", r.authMiddleware.Authenticate(), r.authMiddleware.StaffOnly())

	admin.Get("/conversations", r.messagingHandler.AdminListConversations)
	admin.Get("/conversations/:id", r.messagingHandler.GetConversation)
	admin.Post("/messages", r.messagingHandler.SendMessage)

	admin.Get("/portfolio/categories", r.portfolioHandler.AdminListCategories)
	admin.Post("/portfolio/categories", r.portfolioHandler.AdminSaveCategory)
	admin.Put("/portfolio/categories/:id", r.portfolioHandler.AdminSaveCategory)
	admin.Delete("/portfolio/categories/:id", r.portfolioHandler.AdminDeleteCategory)
	admin.Get("/portfolio/projects", r.portfolioHandler.AdminListProjects)
	admin.Post("/portfolio/projects", r.portfolioHandler.AdminSaveProject)
	admin.Put("/portfolio/projects/:id", r.portfolioHandler.AdminSaveProject)
	admin.Delete("/portfolio/projects/:id", r.portfolioHandler.AdminDeleteProject)
	admin.Get("/portfolio/projects/:id/testimonials", r.portfolioHandler.AdminListTestimonials)
	admin.Post("/portfolio/testimonials", r.portfolioHandler.AdminSaveTestimonial)
	admin.Put("/portfolio/testimonials/:id", r.portfolioHandler.AdminSaveTestimonial)
	admin.Delete("/portfolio/testimonials/:id", r.portfolioHandler.AdminDeleteTestimonial)

	admin.Get("/content/hero", r.contentHandler.AdminListHero)
	admin.Post("/content/hero", r.contentHandler.AdminSaveHero)
	admin.Put("/content/hero/:id", r.contentHandler.AdminSaveHero)
	admin.Delete("/content/hero/:id", r.contentHandler.AdminDeleteHero)
	admin.Get("/content/services", r.contentHandler.AdminListServices)
	admin.Post("/content/services", r.contentHandler.AdminSaveService)
	admin.Put("/content/services/:id", r.contentHandler.AdminSaveService)
	admin.Delete("/content/services/:id", r.contentHandler.AdminDeleteService)
	admin.Get("/content/team", r.contentHandler.AdminListTeam)
	admin.Post("/content/team", r.contentHandler.AdminSaveTeamMember)
	admin.Put("/content/team/:id", r.contentHandler.AdminSaveTeamMember)
	admin.Delete("/content/team/:id", r.contentHandler.AdminDeleteTeamMember)
	admin.Get("/content/about", r.contentHandler.AdminListAbout)
	admin.Post("/content/about", r.contentHandler.AdminSaveAbout)
	admin.Put("/content/about/:id", r.contentHandler.AdminSaveAbout)
	admin.Delete("/content/about/:id", r.contentHandler.AdminDeleteAbout)
	admin.Get("/content/contact-info", r.contentHandler.AdminListContactInfo)
	admin.Post("/content/contact-info", r.contentHandler.AdminSaveContactInfo)
	admin.Put("/content/contact-info/:id", r.contentHandler.AdminSaveContactInfo)
	admin.Delete("/content/contact-info/:id", r.contentHandler.AdminDeleteContactInfo)
	admin.Get("/content/settings", r.contentHandler.AdminListSettings)
	admin.Post("/content/settings", r.contentHandler.AdminSaveSetting)
	admin.Put("/content/settings/:id", r.contentHandler.AdminSaveSetting)
	admin.Delete("/content/settings/:id", r.contentHandler.AdminDeleteSetting)

	admin.Get("/contact-messages", r.contentHandler.AdminListContactMessages)
	admin.Get("/contact-messages/export", r.contentHandler.AdminExportContactMessages)
	admin.Post("/contact-messages/:id/read", r.contentHandler.AdminMarkContactMessageRead)
	admin.Delete("/contact-messages/:id", r.contentHandler.AdminDeleteContactMessage)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// rateLimiter builds a per-IP limiter over the configured window
func (r *FiberRouter) rateLimiter(max int, next func(fiber.Ctx) bool) fiber.Handler {
	window := r.cfg.Security.RateLimitWindow
	if window <= 0 {
		window = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP() // Rate limit by IP
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: next,
	})
}

// SetupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             r.cfg.Security.XFrameOptions,
		HSTSMaxAge:                r.cfg.Security.HSTSMaxAge,
		HSTSExcludeSubdomains:     !r.cfg.Security.HSTSIncludeSubDoms,
		ContentSecurityPolicy:     r.cfg.Security.CSPPolicy,
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	}))

	// CORS middleware with production settings
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.cfg.Security.AllowedOrigins,
		AllowMethods: r.cfg.Security.AllowedMethods,
		AllowHeaders: r.cfg.Security.AllowedHeaders,
		ExposeHeaders: []string{
			"X-Request-ID",
			"X-Response-Time",
		},
		AllowCredentials: r.cfg.Security.AllowCredentials,
		MaxAge:           r.cfg.Security.CORSMaxAge,
	}))

	// Compression middleware for performance
	if r.cfg.Server.EnableCompression {
		r.app.Use(compress.New(compress.Config{
			Level: compress.LevelBestSpeed,
			Next: func(c fiber.Ctx) bool {
				// Skip compression for binary content types
				contentType := c.Get("Content-Type")
				return strings.Contains(contentType, "image/") ||
					strings.Contains(contentType, "video/") ||
					strings.Contains(contentType, "audio/")
			},
		}))
	}

	// Advanced logging middleware
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			// Skip logging for health checks in production
			return c.Path() == "/api/v1/health"
		},
	}))

	// Prometheus metrics middleware
	if r.cfg.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	// Custom security middleware
	r.app.Use(r.securityMiddleware)

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			// Log panic with request context
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Custom security middleware
func (r *FiberRouter) securityMiddleware(c fiber.Ctx) error {
	// Add security headers
	c.Set("X-Response-Time", utils.UTCNow().Format(time.RFC3339))
	c.Set("Server", "Arka-Portal")

	return c.Next()
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   r.cfg.Deployment.Version,
			"service":   "arka-portal-api",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	// Default error code
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a fiber.*Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Log the error
	log.Printf("Error %d: %v", code, err)

	// Get RequestID for tracing
	requestID := c.Locals("requestid")

	// Return JSON error response
	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}
