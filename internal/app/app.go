package app

import (
	"fmt"

	"apptrack/internal/cache"
	"apptrack/internal/config"
	"apptrack/internal/handlers"
	"apptrack/internal/logger"
	"apptrack/internal/middleware"
	"apptrack/internal/models"
	"apptrack/internal/repositories"
	"apptrack/internal/routes"
	"apptrack/internal/services"
	"apptrack/internal/storage"
	"apptrack/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
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

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func migrate(db *gorm.DB) error {
	// Models use uuid_generate_v4 defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Company{},
		&models.Job{},
		&models.Attachment{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	recordCache, err := cache.New()
	if err != nil {
		logger.Fatal("Failed to initialize record cache", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, recordCache)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, recordCache *cache.Store) *services.ServiceContainer {
	companyRepo := repositories.NewCompanyRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	attachmentRepo := repositories.NewAttachmentRepository(gormDB)

	companyService := services.NewCompanyService(companyRepo, recordCache)
	jobService := services.NewJobService(jobRepo, companyRepo, recordCache)
	attachmentService := services.NewAttachmentService(
		attachmentRepo,
		jobRepo,
		storageInstance,
		recordCache,
		cfg.Upload.MaxSize,
		cfg.Upload.AllowedExtensions,
	)
	viewerService := services.NewViewerService(attachmentService, storageInstance)

	return &services.ServiceContainer{
		Companies:   companyService,
		Jobs:        jobService,
		Attachments: attachmentService,
		Viewer:      viewerService,
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(container, storageInstance, customValidator)
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.Default())
	return router
}
