package app

import (
	"fmt"

	"contrata_backend/internal/config"
	"contrata_backend/internal/database"
	"contrata_backend/internal/email"
	"contrata_backend/internal/handlers"
	"contrata_backend/internal/logger"
	"contrata_backend/internal/middleware"
	"contrata_backend/internal/repositories"
	"contrata_backend/internal/routes"
	"contrata_backend/internal/services"
	"contrata_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads configuration, connects to the database and serves the API.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.SeedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Integration tests call it directly against a test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	jobLimitRepo := repositories.NewJobLimitRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	emailSender := email.NewSender(cfg)
	if emailSender == nil {
		logger.Warn("SMTP is not configured, welcome emails are disabled")
	}

	quota := services.QuotaPolicy{WeeklyLimit: cfg.Quota.WeeklyJobLimit}

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, emailSender),
		UserService:        services.NewUserService(userRepo, jobRepo, applicationRepo),
		JobService:         services.NewJobService(jobRepo, jobLimitRepo, userRepo, categoryRepo, quota),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo),
		CategoryService:    services.NewCategoryService(categoryRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		CategoryHandler:    handlers.NewCategoryHandler(baseHandler, container.CategoryService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
