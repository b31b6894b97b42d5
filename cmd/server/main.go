package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimgiray/personapi/internal/handlers"
	"github.com/alimgiray/personapi/internal/metrics"
	"github.com/alimgiray/personapi/internal/middleware"
	"github.com/alimgiray/personapi/internal/repositories"
	"github.com/alimgiray/personapi/internal/services"
	"github.com/alimgiray/personapi/pkg/config"
	"github.com/alimgiray/personapi/pkg/database"
	"github.com/alimgiray/personapi/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	if err := database.Init(cfg.Database); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	router := setupRouter(database.DB, m, prometheus.DefaultGatherer)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// setupRouter wires repositories, services and handlers onto a new gin engine
func setupRouter(db *sql.DB, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	personRepo := repositories.NewPersonRepository(db)
	personService := services.NewPersonService(personRepo, m)
	exportService := services.NewExportService(personRepo)

	personHandler := handlers.NewPersonHandler(personService, exportService)
	healthHandler := handlers.NewHealthHandler(db)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(m),
	)

	personHandler.RegisterRoutes(router.Group("/api/person"))

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return router
}
