package main

import (
	"context"
	"fmt"
	"gameReco/app/echo-server/router"
	"gameReco/business/recommend"
	"gameReco/business/similarity"
	"gameReco/internal/middleware"
	psqlRepo "gameReco/internal/repository/postgres"
	redisRepo "gameReco/internal/repository/redis"
	"gameReco/internal/rest"
	"gameReco/pkg/config"
	"gameReco/pkg/database"
	redisdb "gameReco/pkg/database/redis"
	"gameReco/pkg/logger"
	"gameReco/pkg/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Similarity model cache, optionally backed by Redis snapshots
	var (
		snapshots   similarity.SnapshotStore
		redisClient *goredis.Client
	)
	cacheMode := similarity.CacheMode(cfg.Recommend.ModelCache)
	if cacheMode == similarity.CacheRedis {
		redisClient, err = redisdb.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory model cache", "error", err)
			cacheMode = similarity.CacheMemory
		} else {
			snapshots = redisRepo.NewSnapshotRepository(redisClient, cfg.Recommend.SnapshotTTL)
		}
	}
	modelCache := similarity.NewModelCache(cacheMode, snapshots)

	// Init repo
	gameRepo := psqlRepo.NewGameRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	trendingRepo := psqlRepo.NewTrendingRepository(db)
	editorialRepo := psqlRepo.NewEditorialPickRepository(db)

	// Init service
	recommendService := recommend.NewRecommendService(
		gameRepo,
		interactionRepo,
		trendingRepo,
		editorialRepo,
		modelCache,
		cfg.Recommend.DefaultTopN,
	)

	if cacheMode != similarity.CacheOff {
		warmCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := recommendService.WarmModel(warmCtx); err != nil {
			logger.Warn("Failed to warm similarity model", "error", err)
		}
		cancel()
	}

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupGameRoutes(api, recommendHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr, "model_cache", modelCache.Mode())
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
