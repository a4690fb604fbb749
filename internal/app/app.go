package app

import (
	"context"
	"fmt"
	"time"

	"swiftconnect_backend/database"
	"swiftconnect_backend/internal/config"
	"swiftconnect_backend/internal/email"
	"swiftconnect_backend/internal/handlers"
	"swiftconnect_backend/internal/logger"
	"swiftconnect_backend/internal/middleware"
	"swiftconnect_backend/internal/repositories"
	"swiftconnect_backend/internal/routes"
	"swiftconnect_backend/internal/services"
	"swiftconnect_backend/internal/validator"
	"swiftconnect_backend/internal/workers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// Неизвестные поля в JSON телах отклоняются на уровне биндинга
	binding.EnableDecoderDisallowUnknownFields = true

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
		logger.Fatal("Failed to run migrations", "error", err)
	}

	emailProvider := initializeEmail(cfg)
	serviceContainer := services.NewServiceContainer(gormDB, emailProvider)

	if err := seedInitialData(serviceContainer, gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed initial data", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, serviceContainer)

	// Фоновый биллинг: просрочка, штрафы, платежи следующего периода
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	startWorkers(workerCtx, cfg, gormDB, emailProvider)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func initializeEmail(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending disabled in config, using noop provider")
		return email.NewNoopProvider()
	}

	provider, err := email.NewGomailProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		Enabled:   true,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	return provider
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	appHandlers := handlers.NewAppHandlers(baseHandler, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.Origin != "" {
		corsConfig.AllowOrigins = []string{cfg.CORS.Origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(corsConfig)
}

func startWorkers(ctx context.Context, cfg *config.Config, db *gorm.DB, emailProvider email.Provider) {
	billingWorker := workers.NewBillingWorker(
		repositories.NewSubscriptionRepository(db),
		repositories.NewPaymentRepository(db),
		repositories.NewCustomerRepository(db),
		emailProvider,
		cfg.Billing.PenaltyAmount,
		cfg.Billing.GraceDays,
		time.Duration(cfg.Billing.CheckIntervalMins)*time.Minute,
	)
	billingWorker.Start(ctx)
	logger.Info("Billing worker started",
		"interval_mins", cfg.Billing.CheckIntervalMins,
		"grace_days", cfg.Billing.GraceDays,
	)
}
