package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/imageprocessor"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Connect открывает БД по конфигу и проверяет соединение
func Connect(cfg *config.Config) (*gorm.DB, error) {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Debug:  cfg.Database.Debug,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	logger.Info("Database connected")
	return gormDB, nil
}

// Run поднимает HTTP-сервер и корректно останавливает его по SIGINT/SIGTERM
func Run(cfg *config.Config, migrate bool) error {
	gormDB, err := Connect(cfg)
	if err != nil {
		return err
	}

	if migrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		// Если не удалось создать админа (проблемы с БД и т.д.) - не запускаем сервер
		return fmt.Errorf("failed to seed first admin user: %w", err)
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		return err
	}
	defer mailer.Close()

	ginRouter, err := NewRouter(cfg, gormDB, mailer)
	if err != nil {
		return err
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers.NewTokenCleanupWorker(gormDB, repositories.NewTokenRepository(), cfg.Auth.ConfirmationTTL, cfg.Auth.TokenCleanupInterval).Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server startup error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// NewRouter собирает хранилище, сервисы, хэндлеры и маршруты
func NewRouter(cfg *config.Config, gormDB *gorm.DB, mailer email.Provider) (*gin.Engine, error) {
	apperrors.Debug = cfg.IsDevelopment()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Storage.BasePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	if cfg.Auth.ConfirmationTTL == 0 {
		logger.Warn("auth.confirmation_ttl is not set: confirmation tokens never expire")
	}

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, storageInstance, mailer)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB, serviceContainer.Tokens)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, nil
}

func newMailer(cfg *config.Config) (email.Provider, error) {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending is disabled, confirmation emails are captured by the mock provider")
		return &MockEmailProvider{}, nil
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.ConfirmURL = cfg.Email.ConfirmURL

	provider := email.NewSMTPProvider(smtpConfig, templates)
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid smtp configuration: %w", err)
	}
	logger.Info("SMTP email provider initialized", "host", smtpConfig.Host)
	return provider, nil
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, mailer email.Provider) *services.ServiceContainer {
	// --- Инфраструктура ---
	policy := auth.NewPolicy()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	catalogRepo := repositories.NewCatalogRepository()
	companyRepo := repositories.NewCompanyRepository()
	ratingRepo := repositories.NewRatingRepository()
	postRepo := repositories.NewPostRepository()
	applyRepo := repositories.NewApplyRepository()
	savedPostRepo := repositories.NewSavedPostRepository()

	projector := services.NewProjector(ratingRepo, cfg.Storage.MediaPrefix)

	// --- Инициализация сервисов ---
	images := imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.AvatarMaxSide)
	uploadService := services.NewUploadService(storageInstance, images, cfg.Upload.MaxSize)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, tokenRepo, mailer, tokens, projector, cfg.Auth.ConfirmationTTL),
		UserService:      services.NewUserService(userRepo, uploadService, policy, projector),
		ProfileService:   services.NewProfileService(profileRepo, catalogRepo, policy, projector),
		CatalogService:   services.NewCatalogService(catalogRepo, projector),
		CompanyService:   services.NewCompanyService(companyRepo, ratingRepo, postRepo, uploadService, policy, projector),
		PostService:      services.NewPostService(postRepo, companyRepo, applyRepo, catalogRepo, policy, projector),
		ApplyService:     services.NewApplyService(applyRepo, postRepo, uploadService, policy, projector),
		SavedPostService: services.NewSavedPostService(savedPostRepo, postRepo, policy, projector),
		UploadService:    uploadService,
		EmailService:     mailer,
		Tokens:           tokens,
	}
}

func initializeHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	baseHandler := handlers.NewBaseHandler(customValidator, cfg.Pagination.PageSize, cfg.Server.PublicURL, limiter)
	return handlers.NewAppHandlers(baseHandler, sc)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.AuthenticateMiddleware(tokens))

	// Загруженные файлы отдаются локально, если префикс - путь на этом же хосте
	if strings.HasPrefix(cfg.Storage.MediaPrefix, "/") {
		router.Static(cfg.Storage.MediaPrefix, cfg.Storage.BasePath)
	}
	return router
}

// SeedFirstAdmin создает администратора из конфига, если пользователя с таким email еще нет
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminUsername := strings.TrimSpace(cfg.FirstAdmin.Username)
	adminEmail := strings.ToLower(strings.TrimSpace(cfg.FirstAdmin.Email))
	adminPassword := cfg.FirstAdmin.Password

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_USERNAME, FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()
	if _, err := userRepo.FindByLogin(db, adminEmail); err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	roleID := models.RoleAdminID
	admin := &models.User{
		Username:   adminUsername,
		Email:      adminEmail,
		Password:   hashedPassword,
		UserRoleID: &roleID,
		IsActive:   true,
		IsStaff:    true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
