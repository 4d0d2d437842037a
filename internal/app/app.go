package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"internhub_backend/database"
	"internhub_backend/internal/auth"
	"internhub_backend/internal/cache"
	"internhub_backend/internal/config"
	"internhub_backend/internal/email"
	"internhub_backend/internal/handlers"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/routes"
	"internhub_backend/internal/services"
	"internhub_backend/internal/validator"
	"internhub_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin", "error", err)
	}

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	serviceContainer := initializeServices(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, gormDB, serviceContainer)

	router := SetupRouter(gormDB, issuer, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(gormDB *gorm.DB, issuer *auth.TokenIssuer, serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(router, appHandlers, issuer)
	return router
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	emailService := buildEmailProvider(cfg)

	redisClient := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	statsCache := cache.New(redisClient, "internhub:")

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	oppRepo := repositories.NewOpportunityRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	msgRepo := repositories.NewMessageRepository(gormDB)
	subRepo := repositories.NewSubscriptionRepository(gormDB)
	notifRepo := repositories.NewNotificationRepository(gormDB)
	settingsRepo := repositories.NewSettingsRepository(gormDB)
	auditRepo := repositories.NewAuditRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(gormDB)

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	notificationService := services.NewNotificationService(notifRepo)
	authService := services.NewAuthService(userRepo, profileRepo, subRepo, issuer, emailService)
	profileService := services.NewProfileService(profileRepo, auditRepo)
	opportunityService := services.NewOpportunityService(oppRepo, profileRepo, auditRepo)
	applicationService := services.NewApplicationService(appRepo, oppRepo, profileRepo, notificationService)
	chatService := services.NewChatService(msgRepo, userRepo, profileRepo, notificationService)
	subscriptionService := services.NewSubscriptionService(subRepo, userRepo)
	moderationService := services.NewModerationService(oppRepo, profileRepo, userRepo, auditRepo, notificationService)
	analyticsService := services.NewAnalyticsService(analyticsRepo, oppRepo, appRepo, subRepo, msgRepo, statsCache)
	settingsService := services.NewSettingsService(settingsRepo, auditRepo, statsCache)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProfileService:      profileService,
		OpportunityService:  opportunityService,
		ApplicationService:  applicationService,
		ChatService:         chatService,
		SubscriptionService: subscriptionService,
		NotificationService: notificationService,
		ModerationService:   moderationService,
		AnalyticsService:    analyticsService,
		SettingsService:     settingsService,
		EmailService:        emailService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, serviceContainer.ProfileService),
		OpportunityHandler:  handlers.NewOpportunityHandler(baseHandler, serviceContainer.OpportunityService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		ChatHandler:         handlers.NewChatHandler(baseHandler, serviceContainer.ChatService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, serviceContainer.SubscriptionService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, serviceContainer.ModerationService, serviceContainer.SettingsService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, serviceContainer.AnalyticsService),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func startWorkers(ctx context.Context, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) {
	userRepo := repositories.NewUserRepository(gormDB)
	notifRepo := repositories.NewNotificationRepository(gormDB)

	workers.NewSubscriptionWorker(gormDB, serviceContainer.SubscriptionService, userRepo).Start(ctx)
	workers.NewCleanupWorker(notifRepo).Start(ctx)
}

// buildEmailProvider wires SMTP when configured, a logging mock otherwise.
func buildEmailProvider(cfg *config.Config) email.Provider {
	emailCfg := email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	provider, err := email.NewSMTPProvider(emailCfg)
	if err != nil {
		logger.Warn("smtp not configured, outgoing mail is logged only", "reason", err)
		return &email.MockProvider{}
	}
	return provider
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
	if err == nil {
		logger.Info("admin user already exists", "email", cfg.FirstAdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("first admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
