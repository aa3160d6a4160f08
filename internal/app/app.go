package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hirelane_backend/database"
	"hirelane_backend/internal/config"
	"hirelane_backend/internal/email"
	"hirelane_backend/internal/handlers"
	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/middleware"
	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
	"hirelane_backend/internal/routes"
	"hirelane_backend/internal/services"
	"hirelane_backend/internal/storage"
	"hirelane_backend/internal/validator"
	"hirelane_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, and handlers onto a gin engine.
// Split out of Run so the integration tests can build the same router
// against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	fileStore, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	emailProvider := buildEmailProvider(cfg)

	employerRepo := repositories.NewEmployerRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, emailProvider)
	authService := services.NewAuthService(
		employerRepo,
		refreshTokenRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTL)*time.Minute,
	)
	jobService := services.NewJobService(jobRepo, applicationRepo, notificationService)
	applicationService := services.NewApplicationService(
		applicationRepo,
		jobRepo,
		notificationService,
		fileStore,
		services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
	)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, authService),
		JobHandler:          handlers.NewJobHandler(baseHandler, jobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, applicationService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, jobService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, notificationService),
		FileHandler:         handlers.NewFileHandler(baseHandler, applicationService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, appHandlers, cfg.JWT.Secret)

	return router
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) {
	jobWorker := workers.NewJobWorker(repositories.NewJobRepository(gormDB), cfg.Jobs.AutoCloseDays)
	go jobWorker.Run(ctx)

	tokenWorker := workers.NewTokenWorker(repositories.NewRefreshTokenRepository(gormDB))
	go tokenWorker.Run(ctx)
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email disabled, notifications are stored but not sent")
		return &email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUser,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	return provider
}

// seedFirstAdmin creates the moderation account on first boot. Without it
// no one could approve postings on a fresh install.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin email or password not configured, skipping admin seeding")
		return nil
	}

	var existing models.Employer
	result := db.Where("email = ?", cfg.Admin.Email).First(&existing)
	if result.Error == nil {
		logger.Info("Admin account already exists", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin account: %w", result.Error)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Employer{
		CompanyName:  "Platform Administration",
		ContactName:  "Administrator",
		Email:        cfg.Admin.Email,
		PasswordHash: string(hashed),
		Role:         models.EmployerRoleAdmin,
		Status:       models.EmployerStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("First admin account created", "email", cfg.Admin.Email)
	return nil
}
