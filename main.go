// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachify/config"
	"coachify/database"
	bookingRepoPkg "coachify/database/repository/booking"
	coachRepoPkg "coachify/database/repository/coach"
	deviceRepoPkg "coachify/database/repository/device"
	"coachify/handlers"
	"coachify/middleware"
	"coachify/routes"
	"coachify/services/availability"
	"coachify/services/booking"
	"coachify/services/notification"
	"coachify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	config.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	coachRepo := coachRepoPkg.NewMongoCoachRepo(time.Now)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	deviceRepo := deviceRepoPkg.NewMongoDeviceRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo: coachRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:   deviceRepo,
		Client: config.FCMClient,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Coach:        handlers.NewCoachHandler(availabilityService, notificationService),
		Booking:      handlers.NewBookingHandler(bookingService, notificationService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Dashboard:    handlers.NewDashboardHandler(bookingService),
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
