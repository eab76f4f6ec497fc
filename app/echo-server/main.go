package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"offerOptimizer/app/echo-server/router"
	"offerOptimizer/business/optimizer"
	"offerOptimizer/internal/middleware"
	"offerOptimizer/internal/rest"
	"offerOptimizer/pkg/config"
	"offerOptimizer/pkg/logger"
	"offerOptimizer/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Offer Optimizer", "version", cfg.App.Version)

	metrics.Init()

	// Engine config: package defaults overridden by environment tunables
	optCfg := optimizer.DefaultConfig()
	optCfg.ProfitWeight = cfg.Optimizer.ProfitWeight
	optCfg.RetentionWeight = cfg.Optimizer.RetentionWeight
	optCfg.EfficiencyWeight = cfg.Optimizer.EfficiencyWeight
	optCfg.ProbabilityWeight = cfg.Optimizer.ProbabilityWeight
	optCfg.SigmoidK = cfg.Optimizer.SigmoidK
	optCfg.Tolerance = cfg.Optimizer.Tolerance

	// Init service
	optimizerService := optimizer.NewService(optCfg)

	// Init handler
	optimizerHandler := rest.NewOptimizerHandler(optimizerService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	e.GET("/health", rest.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	router.SetOptimizerRoutes(api, optimizerHandler)

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

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
