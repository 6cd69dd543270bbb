package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dietary-advisor/config"
	deliveryHttp "dietary-advisor/internal/delivery/http"
	"dietary-advisor/internal/delivery/http/handler"
	"dietary-advisor/internal/delivery/http/middleware"
	domainRepo "dietary-advisor/internal/domain/repository"
	"dietary-advisor/internal/infrastructure/ai"
	"dietary-advisor/internal/infrastructure/cache"
	"dietary-advisor/internal/infrastructure/database"
	"dietary-advisor/internal/repository"
	"dietary-advisor/internal/service"
	"dietary-advisor/internal/usecase"
	"dietary-advisor/pkg/response"
	"dietary-advisor/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	if cfg.App.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	response.ExposeInternalErrors(cfg.App.IsDevelopment())
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, profile cache disabled")
		} else {
			app.RedisClient = redisClient
			logrus.Info("Redis connected successfully")
		}
	} else {
		logrus.Info("REDIS_HOST not set, profile cache disabled")
	}

	// Initialize all layers
	server := initializeServer(cfg, db, app.RedisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	profileRepo := repository.NewHealthProfileRepository()
	commentRepo := repository.NewCommentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	var profileCache domainRepo.HealthProfileCache
	if redisClient != nil {
		profileCache = cache.NewProfileCache(redisClient, cfg.Redis.TTL)
	}

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	adviceService := service.NewAdviceService(ai.NewHuggingFaceClient(cfg.AI), log)

	// Initialize usecases
	adviceUsecase := usecase.NewDietaryAdviceUsecase(log, adviceService)
	profileUsecase := usecase.NewHealthProfileUsecase(db, log, profileRepo, profileCache, auditService)
	commentUsecase := usecase.NewCommentUsecase(db, log, profileRepo, commentRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	adviceHandler := handler.NewAdviceHandler(adviceUsecase, customValidator)
	profileHandler := handler.NewHealthProfileHandler(profileUsecase, customValidator)
	commentHandler := handler.NewCommentHandler(commentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLogger(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(adviceHandler, profileHandler, commentHandler, auditLogHandler, corsMiddleware, requestLogger, recoveryMiddleware)
	httpHandler := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database and Redis connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
