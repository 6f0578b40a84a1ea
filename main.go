// Package main provides the main entry point for the Arka Portal backend
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arkasoft/arka-portal/app/handlers"
	"github.com/arkasoft/arka-portal/app/middleware"
	"github.com/arkasoft/arka-portal/app/router"
	"github.com/arkasoft/arka-portal/app/services"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/config"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Arka Portal application...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging routes the standard logger to a rotating file when configured
func setupLogging(cfg config.LoggingConfig) {
	if cfg.Output == "stdout" || cfg.FilePath == "" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	if cfg.Output == "both" {
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	} else {
		log.SetOutput(rotator)
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// migrateDatabase keeps the schema in sync with the domain models
func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Conversation{},
		&models.Message{},
		&models.Notification{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.ProjectTestimonial{},
		&models.HeroSection{},
		&models.Service{},
		&models.TeamMember{},
		&models.AboutSection{},
		&models.ContactInfo{},
		&models.SiteSetting{},
		&models.ContactMessage{},
	)
}

// initializeCache initializes the Redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB if provided in config
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeNotificationService initializes the notification service
func initializeNotificationService(cfg *config.ProductionConfig) services.NotificationService {
	var emailProvider services.EmailProvider
	if cfg.Email.UseMock {
		emailProvider = services.NewMockEmailProvider()
	} else {
		emailProvider = services.NewSMTPEmailProvider(
			cfg.Email.Host,
			cfg.Email.Port,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.FromEmail,
		)
	}
	return services.NewNotificationService(emailProvider)
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migrateDatabase(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	if rc != nil {
		cancel := startCacheHealthMonitor(context.Background(), rc, cfg.Cache.DefaultTTL)
		stopFuncs = append(stopFuncs, cancel)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	categoryRepo := repository.NewProjectCategoryRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	testimonialRepo := repository.NewProjectTestimonialRepository(db)
	heroRepo := repository.NewHeroSectionRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	aboutRepo := repository.NewAboutSectionRepository(db)
	contactInfoRepo := repository.NewContactInfoRepository(db)
	settingRepo := repository.NewSiteSettingRepository(db)
	contactMessageRepo := repository.NewContactMessageRepository(db)

	// Initialize services
	notificationService := initializeNotificationService(cfg)

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
		rc,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Log that services are initialized
	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Seed the bootstrap staff account
	if err := ensureAdminAccount(accountRepo, cfg.Admin); err != nil {
		return nil, err
	}

	// Initialize flows
	authFlow := businessflow.NewAuthFlow(
		accountRepo,
		conversationRepo,
		messageRepo,
		tokenService,
	)

	messagingFlow := businessflow.NewMessagingFlow(
		db,
		accountRepo,
		conversationRepo,
		messageRepo,
		notificationRepo,
		notificationService,
	)

	portfolioFlow := businessflow.NewPortfolioFlow(
		categoryRepo,
		projectRepo,
		testimonialRepo,
	)

	contentFlow := businessflow.NewContentFlow(
		heroRepo,
		serviceRepo,
		teamRepo,
		aboutRepo,
		contactInfoRepo,
		contactMessageRepo,
		settingRepo,
		notificationService,
		cfg.Admin,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authFlow, tokenService)
	messagingHandler := handlers.NewMessagingHandler(messagingFlow)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioFlow)
	contentHandler := handlers.NewContentHandler(contentFlow)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize router
	appRouter := router.NewFiberRouter(
		cfg,
		authMiddleware,
		authHandler,
		contentHandler,
		portfolioHandler,
		messagingHandler,
	)

	// Create application struct from FiberRouter
	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}

// ensureAdminAccount creates the first staff login when none exists yet
func ensureAdminAccount(accountRepo repository.AccountRepository, cfg config.AdminConfig) error {
	if cfg.SeedEmail == "" || cfg.SeedPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := accountRepo.ByEmail(ctx, cfg.SeedEmail)
	if err != nil {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	account := models.Account{
		Email:             cfg.SeedEmail,
		PasswordHash:      string(hash),
		FirstName:         "Site",
		LastName:          "Admin",
		Role:              models.RoleAdmin,
		PreferredLanguage: utils.LocalePersian,
		IsVerified:        utils.ToPtr(true),
		IsActive:          utils.ToPtr(true),
	}
	if err := accountRepo.Save(ctx, &account); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	log.Printf("Seeded admin account %s", cfg.SeedEmail)
	return nil
}
