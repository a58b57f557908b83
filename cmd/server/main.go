package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "docpress/docs"

	"docpress/internal/delivery/http/routers"
	domain_repo "docpress/internal/domain/repositories"
	"docpress/internal/infrastructure/converter"
	"docpress/internal/infrastructure/db"
	infra_repo "docpress/internal/infrastructure/repositories"
	"docpress/internal/infrastructure/storage"
	"docpress/internal/usecases"
	"docpress/pkg/config"
	consts "docpress/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// @title        docpress API
// @version      1.0
// @description  Upload, group, download and convert documents
// @BasePath     /api
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Metadata store
	mongoClient, err := db.NewMongoDB(cfg.Mongo.URI)
	if err != nil {
		log.Fatal("mongo connection failed", zap.Error(err))
	}
	database := mongoClient.Database(cfg.Mongo.Database)

	// Media storage: the provider when credentials are present. Without them,
	// the local backend serves only when explicitly opted in; otherwise every
	// storage call fails with the list of missing variables.
	var mediaStorage domain_repo.MediaStorage
	cloudStorage, err := storage.NewCloudinaryStorage(cfg.Cloudinary)
	switch {
	case err == nil:
		mediaStorage = cloudStorage
	case cfg.Upload.UseLocalStorage:
		log.Warn("cloudinary not configured, using local storage", zap.Error(err))
		mediaStorage = storage.NewLocalStorage(cfg.Upload.UploadsDir)
	default:
		log.Warn("cloudinary not configured, uploads will fail", zap.Error(err))
		mediaStorage = storage.NewUnconfiguredStorage(err)
	}

	osFs := afero.NewOsFs()

	// Services
	groupRepo := infra_repo.NewPrintGroupRepository(database)
	aadlRepo := infra_repo.NewAadlDemandeRepository(database)
	uploadService := usecases.NewUploadService(cfg.Cloudinary, mediaStorage, log)
	groupService := usecases.NewPrintGroupService(groupRepo, mediaStorage, log)
	aadlService := usecases.NewAadlService(aadlRepo, log)
	proxyService := usecases.NewProxyService(cfg.Cloudinary, usecases.NewProxyClient(), log)
	soffice := converter.NewSoffice(cfg.Convert, log)
	convertService := usecases.NewConvertService(cfg.Convert, soffice, osFs, log)
	janitor := usecases.NewJanitorService(cfg.Convert, osFs, log)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: originAllowed(cfg.CORS),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Locally stored assets
	app.Static("/api/uploads", cfg.Upload.UploadsDir)

	// Routes
	routers.SetupProxyRoutes(app, proxyService, log)
	routers.SetupConvertRoutes(app, convertService, log)
	routers.SetupUploadRoutes(app, uploadService, cfg, log)
	routers.SetupGroupRoutes(app, groupService, log)
	routers.SetupAadlRoutes(app, aadlService, log)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK, "ts": time.Now().UnixMilli()})
	})

	// Janitor for conversion workspaces orphaned by crashes
	sweeper := cron.New()
	sweeper.Schedule(cron.Every(cfg.Janitor.Interval), cron.FuncJob(func() {
		if err := janitor.SweepOnce(cfg.Janitor.MaxAge); err != nil {
			log.Warn("janitor sweep failed", zap.Error(err))
		}
	}))
	sweeper.Start()
	defer sweeper.Stop()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := mongoClient.Disconnect(ctxShut); err != nil {
		log.Error("mongo disconnect failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// originAllowed accepts the configured origins plus any preview deployment
// under the configured suffix.
func originAllowed(cfg config.CORSConfig) func(string) bool {
	return func(origin string) bool {
		for _, allowed := range cfg.Origins {
			if origin == allowed {
				return true
			}
		}
		if cfg.PreviewSuffix == "" {
			return false
		}
		trimmed := strings.TrimPrefix(origin, "https://")
		return trimmed != origin && strings.HasSuffix(trimmed, cfg.PreviewSuffix)
	}
}
