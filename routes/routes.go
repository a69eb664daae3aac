package routes

import (
	"net/http"
	"time"

	"washq/config"
	"washq/handlers"
	"washq/middleware"
	"washq/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes registers the booking endpoints. Creation, the
// booked-times lookup and the phone status check are public; everything else
// requires an admin session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("/booked-times", hb.GetBookedTimes)
		api.POST("/check-status", hb.CheckStatus)

		// Protected routes (require an admin session)
		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		protected.GET("", hb.GetBookings)
		protected.GET("/summary", hb.GetSummary)
		protected.PATCH("/:id", hb.UpdateBooking)
		protected.DELETE("/:id", hb.DeleteBooking)
	}
}

// RegisterAdminRoutes registers admin authentication endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLogin)
	}
}

// RegisterAuthRoutes registers the LINE Login callback.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/auth/line/callback", hb.LineCallback)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOriginList(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
