package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cinebook/config"
	"cinebook/database"
	movieRepo "cinebook/database/repository/movie"
	"cinebook/handlers"
	"cinebook/middleware"
	"cinebook/routes"
	"cinebook/services/booking"
	"cinebook/services/catalog"
	"cinebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	moviesRepo := movieRepo.NewMongoMovieRepo()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := moviesRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to ensure movie indexes: %v", err)
	}
	cancel()

	// services.
	cacheClient := utils.GetCacheClient()
	catalogService := &catalog.DefaultService{
		Repo:  moviesRepo,
		Cache: cacheClient,
		TTL:   time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
	}
	bookingEngine := &booking.DefaultEngine{
		Repo:        moviesRepo,
		Cache:       cacheClient,
		MaxAttempts: config.AppConfig.BookingMaxAttempts,
	}

	movieHandler := handlers.NewMovieHandler(catalogService, bookingEngine)
	routes.RegisterRoutes(router, movieHandler)

	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
