// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	ai "voyago/services/intelligence"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitHistoryCache()
	historyClient := utils.GetHistoryCacheClient()
	utils.StartHealthMonitor(historyClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	modelClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	travelRouter := ai.NewRouter(config.RouteKeywords)
	weatherClient := ai.NewWeatherClient(config.AppConfig.WeatherAPIKey)
	historyStore := ai.NewRedisHistoryStore(
		historyClient,
		time.Duration(config.AppConfig.HistoryTTLMinutes)*time.Minute,
		config.AppConfig.HistoryMaxTurns,
	)

	travelService := ai.NewDefaultTravelService(modelClient, travelRouter, weatherClient, historyStore)
	travelHandler := handlers.NewTravelHandler(travelService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		QueryHandler:        travelHandler.QueryHandler,
		HistoryHandler:      travelHandler.HistoryHandler,
		ClearHistoryHandler: travelHandler.ClearHistoryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
