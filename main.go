// File: washq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washq/config"
	"washq/database"
	adminRepoPkg "washq/database/repository/admin"
	bookingRepoPkg "washq/database/repository/booking"
	"washq/handlers"
	"washq/metrics"
	"washq/middleware"
	"washq/routes"
	adminSvc "washq/services/admin"
	"washq/services/booking"
	"washq/services/lineauth"
	"washq/services/notification"
	"washq/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	metrics.Register()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	notifier := notification.NewLineNotificationService(
		"",
		config.AppConfig.LineChannelAccessToken,
		config.AppConfig.LineAdminUserID,
	)

	bookingService := booking.NewDefaultBookingService(bookingRepo, notifier, config.SlotLabels())

	adminService := &adminSvc.DefaultAdminService{Repo: adminRepo}
	if err := adminService.EnsureDefaultAdmin(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure default admin: %v", err)
	}

	lineAuthService := lineauth.NewDefaultLineAuthService()

	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(adminService)
	lineAuthHandler := handlers.NewLineAuthHandler(lineAuthService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,

		CreateBooking:  bookingHandler.CreateBooking,
		GetBookings:    bookingHandler.GetBookings,
		GetSummary:     bookingHandler.GetSummary,
		UpdateBooking:  bookingHandler.UpdateBooking,
		DeleteBooking:  bookingHandler.DeleteBooking,
		GetBookedTimes: bookingHandler.GetBookedTimes,
		CheckStatus:    bookingHandler.CheckStatus,

		AdminLogin: adminHandler.LoginHandler,

		LineCallback: lineAuthHandler.CallbackHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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
