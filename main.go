// File: rentkiosk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentkiosk/config"
	"rentkiosk/handlers"
	"rentkiosk/middleware"
	"rentkiosk/routes"
	"rentkiosk/services/checkout"
	"rentkiosk/services/reservation"
	"rentkiosk/services/speech"
	"rentkiosk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.StartHealthMonitor(config.AppConfig.ReservationBaseURL)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream client.
	reservationClient := reservation.NewClient(reservation.Config{
		BaseURL:               config.AppConfig.ReservationBaseURL,
		RecommendationBaseURL: config.AppConfig.RecommendationBaseURL,
		Timeout:               config.UpstreamTimeout(),
	}, logger)

	// services.
	checkoutService := &checkout.DefaultCheckoutService{
		Upstream: reservationClient,
		Logger:   logger,
	}
	speechService := speech.NewElevenLabsService(
		config.AppConfig.ElevenLabsAPIKey,
		config.AppConfig.ElevenLabsVoiceID,
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Kiosk:     handlers.NewKioskHandler(checkoutService, logger),
		Speech:    handlers.NewSpeechHandler(speechService, logger),
		Broadcast: handlers.NewBroadcastHandler(config.AppConfig.BroadcastURL, logger),
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
