package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"shopsight/app/echo-server/router"
	"shopsight/business/agent"
	"shopsight/business/analytics"
	"shopsight/business/datagen"
	storeService "shopsight/business/store"
	"shopsight/internal/middleware"
	"shopsight/internal/repository/openai"
	psqlRepo "shopsight/internal/repository/postgres"
	redisRepo "shopsight/internal/repository/redis"
	"shopsight/internal/rest"
	"shopsight/pkg/config"
	"shopsight/pkg/database"
	redisdb "shopsight/pkg/database/redis"
	"shopsight/pkg/logger"
	"shopsight/pkg/metrics"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ShopSight", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis only backs the analytics summary cache; run without it if down.
	redisClient, err := redisdb.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, analytics cache disabled", err)
	}

	var analyticsCache analytics.SummaryCache
	var storeCache storeService.SummaryCache
	if redisClient != nil {
		cache := redisRepo.NewAnalyticsCache(redisClient)
		analyticsCache = cache
		storeCache = cache
	}

	// Init LLM client
	llmClient := openai.NewOpenAIRepository(openai.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	})

	// Init repo
	storeRepo := psqlRepo.NewStoreRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	customerRepo := psqlRepo.NewCustomerRepository(db)
	questionRepo := psqlRepo.NewQuestionRepository(db)

	// Init service
	generator := datagen.NewGenerator(nil)
	storeSvc := storeService.NewService(storeRepo, productRepo, ordersRepo, customerRepo, questionRepo, storeCache, generator, cfg.App.AppTokenKey)
	analyticsSvc := analytics.NewService(storeRepo, productRepo, ordersRepo, customerRepo, analyticsCache)
	agentSvc := agent.NewService(llmClient, storeRepo, productRepo, ordersRepo, customerRepo, questionRepo)

	// Init handler
	storeHandler := rest.NewStoreHandler(storeSvc)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsSvc)
	questionHandler := rest.NewQuestionHandler(agentSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetupSystemRoutes(e, cfg.App.Name, cfg.App.Version)
	api := e.Group("/api/v1")
	router.SetupStoreRoutes(api, storeHandler)
	router.SetupAnalyticsRoutes(api, analyticsHandler)
	router.SetupQuestionRoutes(api, questionHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
