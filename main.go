package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/routes"
	"resort-backend/services"
	"resort-backend/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	// .env is optional; environment variables win.
	if err := godotenv.Load(); err != nil {
		logger.Info(".env not found, continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	logger.Info("database connection established, migrations applied")

	redisClient := config.ConnectRedis(logger)
	roomCache := services.NewRoomCache(redisClient, 5*time.Minute)

	tokens := utils.NewTokenIssuer(jwtSecret, 24*time.Hour)

	clientService := services.NewClientService(db, services.DefaultRolePolicy())
	roomService := services.NewRoomService(db, roomCache)
	catalogService := services.NewServiceCatalogService(db)
	bookingService := services.NewBookingService(db)
	orderService := services.NewServiceOrderService(db)
	reviewService := services.NewReviewService(db, roomCache)
	reportService := services.NewReportService(db)

	router := routes.SetupRouter(db, logger, tokens, routes.Controllers{
		Auth:          controllers.NewAuthController(clientService, tokens),
		Rooms:         controllers.NewRoomController(roomService),
		Services:      controllers.NewServiceController(catalogService),
		Bookings:      controllers.NewBookingController(bookingService),
		ServiceOrders: controllers.NewServiceOrderController(orderService),
		Reviews:       controllers.NewReviewController(reviewService),
		Clients:       controllers.NewClientController(clientService),
		Admin:         controllers.NewAdminController(reportService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("server stopped gracefully")
}
