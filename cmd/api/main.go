package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/config"
	"github.com/fekuna/gasops-dashboard-service/pkg/broker"
	"github.com/fekuna/gasops-dashboard-service/pkg/cache"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
	"github.com/fekuna/gasops-dashboard-service/pkg/middleware"
	"github.com/fekuna/gasops-dashboard-service/pkg/postgres"

	invH "github.com/fekuna/gasops-dashboard-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/gasops-dashboard-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/gasops-dashboard-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/gasops-dashboard-service/internal/inventory/usecase"

	salesH "github.com/fekuna/gasops-dashboard-service/internal/sales/handler"
	salesRepoPkg "github.com/fekuna/gasops-dashboard-service/internal/sales/repository"
	salesUCPkg "github.com/fekuna/gasops-dashboard-service/internal/sales/usecase"

	trackH "github.com/fekuna/gasops-dashboard-service/internal/tracking/handler"
	trackRepoPkg "github.com/fekuna/gasops-dashboard-service/internal/tracking/repository"
	trackUCPkg "github.com/fekuna/gasops-dashboard-service/internal/tracking/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Repositories
	invRepo := invRepoPkg.NewPGRepository(db)
	salesRepo := salesRepoPkg.NewPGRepository(db)
	trackRepo := trackRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	invUC := invUCPkg.NewInventoryUseCase(invRepo, cfg.Inventory.TankSizes, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, cfg.Inventory.TankSizes, appLogger)
	trackUC := trackUCPkg.NewTrackingUseCase(trackRepo, redisClient, cfg.Tracking.PathCapacity, cfg.Tracking.MinSampleInterval, appLogger)
	defer trackUC.Close()

	// 8. Start Movement Listener
	invListener := invListenerPkg.NewMovementListener(kafkaConsumer, invUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go invListener.Start(ctx)

	// 9. Initialize Handlers
	invHandler := invH.NewInventoryHandler(invUC, salesUC, appLogger)
	salesHandler := salesH.NewSalesHandler(salesUC, appLogger)
	trackHandler := trackH.NewTrackingHandler(trackUC, appLogger)

	// 10. HTTP Server
	app := fiber.New(fiber.Config{
		AppName: "gasops-dashboard-service",
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(appLogger))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/api/dashboard", invHandler.Dashboard)
	app.Post("/api/movements", invHandler.RecordMovement)
	app.Post("/api/sales", salesHandler.RecordSale)
	app.Post("/api/locations", trackHandler.RecordLocation)
	app.Get("/api/tracking", trackHandler.Track)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := app.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
