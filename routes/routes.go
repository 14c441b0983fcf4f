package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"resort-backend/controllers"
	"resort-backend/middleware"
	"resort-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers groups everything SetupRouter wires up.
type Controllers struct {
	Auth          *controllers.AuthController
	Rooms         *controllers.RoomController
	Services      *controllers.ServiceController
	Bookings      *controllers.BookingController
	ServiceOrders *controllers.ServiceOrderController
	Reviews       *controllers.ReviewController
	Clients       *controllers.ClientController
	Admin         *controllers.AdminController
}

func SetupRouter(db *gorm.DB, logger *logrus.Logger, tokens *utils.TokenIssuer, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	middleware.RegisterMetrics()
	r.Use(middleware.Metrics())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.RequireAuth(db, tokens)
	adminOnly := []gin.HandlerFunc{authRequired, middleware.RequireAdmin()}
	adminOrStaff := []gin.HandlerFunc{authRequired, middleware.RequireAdminOrStaff()}

	// 5 tokens/min per IP on credential endpoints.
	loginLimiter := middleware.NewLoginRateLimiter(rate.Every(12*time.Second), 5)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginLimiter.Middleware(), ctrl.Auth.Register)
			auth.POST("/login", loginLimiter.Middleware(), ctrl.Auth.Login)
			auth.GET("/me", authRequired, ctrl.Auth.Me)
			auth.PUT("/updatedetails", authRequired, ctrl.Auth.UpdateDetails)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.GetRooms)
			rooms.GET("/:id", ctrl.Rooms.GetRoom)
			rooms.GET("/:id/availability", ctrl.Bookings.CheckAvailability)
			rooms.GET("/:id/reviews", ctrl.Reviews.GetRoomReviews)
			rooms.POST("", append(adminOnly, ctrl.Rooms.CreateRoom)...)
			rooms.PUT("/:id", append(adminOrStaff, ctrl.Rooms.UpdateRoom)...)
			rooms.DELETE("/:id", append(adminOnly, ctrl.Rooms.DeleteRoom)...)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", ctrl.Services.GetServices)
			servicesGroup.GET("/:id", ctrl.Services.GetService)
			servicesGroup.POST("", append(adminOnly, ctrl.Services.CreateService)...)
			servicesGroup.PUT("/:id", append(adminOrStaff, ctrl.Services.UpdateService)...)
			servicesGroup.DELETE("/:id", append(adminOnly, ctrl.Services.DeleteService)...)
		}

		bookings := api.Group("/bookings", authRequired)
		{
			bookings.GET("", ctrl.Bookings.GetBookings)
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.GET("/:id", ctrl.Bookings.GetBooking)
			bookings.PUT("/:id", ctrl.Bookings.UpdateBookingStatus)
			bookings.DELETE("/:id", ctrl.Bookings.DeleteBooking)
		}

		orders := api.Group("/service-orders", authRequired)
		{
			orders.GET("", ctrl.ServiceOrders.GetServiceOrders)
			orders.POST("", ctrl.ServiceOrders.CreateServiceOrder)
			orders.GET("/:id", ctrl.ServiceOrders.GetServiceOrder)
			orders.PUT("/:id", ctrl.ServiceOrders.UpdateServiceOrderStatus)
			orders.DELETE("/:id", ctrl.ServiceOrders.DeleteServiceOrder)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", ctrl.Reviews.GetReviews)
			reviews.GET("/:id", ctrl.Reviews.GetReview)
			reviews.POST("", authRequired, ctrl.Reviews.CreateReview)
			reviews.PUT("/:id", authRequired, ctrl.Reviews.UpdateReview)
			reviews.DELETE("/:id", authRequired, ctrl.Reviews.DeleteReview)
		}

		clients := api.Group("/clients", adminOnly...)
		{
			clients.GET("", ctrl.Clients.GetClients)
			clients.GET("/:id", ctrl.Clients.GetClient)
			clients.PUT("/:id", ctrl.Clients.UpdateClient)
			clients.DELETE("/:id", ctrl.Clients.DeleteClient)
		}

		admin := api.Group("/admin", adminOnly...)
		{
			admin.GET("/stats", ctrl.Admin.GetStats)
			admin.GET("/export/bookings", ctrl.Admin.ExportBookings)
		}
	}

	return r
}
