package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/inmoval/api/internal/config"
	"github.com/inmoval/api/internal/database"
	"github.com/inmoval/api/internal/handlers"
	"github.com/inmoval/api/internal/logger"
	"github.com/inmoval/api/internal/middleware"
	"github.com/inmoval/api/internal/repository"
	"github.com/inmoval/api/internal/services"
	"github.com/inmoval/api/internal/sources"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Inmoval API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Comparable candidate sources: the sales-history database plus any
	// configured listing portals.
	saleRepo := repository.NewSaleRepository(db)
	dbSource := sources.NewDatabaseSource(saleRepo)
	portalSources := make([]sources.Source, 0, len(cfg.Comparables.PortalURLs))
	for _, portalURL := range cfg.Comparables.PortalURLs {
		portalSources = append(portalSources, sources.NewPortalSource("portal:"+portalURL, portalURL))
	}

	// Initialize service and handler layers
	valuationService := services.NewValuationService(log)
	comparableService := services.NewComparableService(dbSource, portalSources, cfg.Comparables.FetchTimeout, log)

	valuationHandler := handlers.NewValuationHandler(valuationService)
	comparableHandler := handlers.NewComparableHandler(comparableService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/valuations", valuationHandler.Appraise)

		comparables := v1.Group("/comparables")
		{
			comparables.POST("/search", comparableHandler.Search)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
