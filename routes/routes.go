package routes

import (
	"net/http"
	"time"

	"coachify/handlers"
	"coachify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCoachingRoutes registers coach availability and booking endpoints.
func RegisterCoachingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/coaching")
	{
		// Booking requests (end users create, admin decides).
		api.POST("/user", hb.Booking.CreateRequestHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.PUT("/status/:id", hb.Booking.UpdateSlotStatusHandler)
		admin.GET("/search", hb.Booking.SearchRequestsHandler)
		admin.GET("/users", hb.Booking.GetAllRequestsHandler)
		admin.GET("/total-users", hb.Booking.TotalRequestsHandler)
		admin.GET("/approved/total-users", hb.Booking.TotalApprovedHandler)
		admin.GET("/denied/total-users", hb.Booking.TotalDeniedHandler)
		admin.GET("/user/:id", hb.Booking.GetRequestByIDHandler)
		admin.PUT("/user/:id", hb.Booking.UpdateRequestHandler)
		admin.DELETE("/user/:id", hb.Booking.DeleteRequestHandler)

		// Coach CRUD.
		admin.POST("/coach", hb.Coach.CreateCoachHandler)
		admin.PUT("/coach/:id", hb.Coach.UpdateCoachHandler)
		admin.DELETE("/coach/:id", hb.Coach.DeleteCoachHandler)
		api.GET("/coach", hb.Coach.GetAllCoachesHandler)
		api.GET("/coach/:id", hb.Coach.GetCoachByIDHandler)

		// Date and slot management.
		api.POST("/coach/:id/date", hb.Coach.AddDateHandler)
		admin.PUT("/coach/:id/slot", hb.Coach.UpdateSlotHandler)
		admin.PUT("/coach/:id/toggle-slot-flag", hb.Coach.ToggleSlotFlagHandler)
		admin.DELETE("/coach/:id/slot", hb.Coach.DeleteSlotHandler)
		api.GET("/coach/:id/slots", hb.Coach.GetSlotsByDateHandler)
	}
}

// RegisterNotificationRoutes registers device token and history endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/notification")
	{
		api.POST("/token", hb.Notification.RegisterTokenHandler)
		api.GET("/user/:userId", hb.Notification.GetForUserHandler)
		api.GET("/unread/:userId", hb.Notification.GetUnreadHandler)
		api.PUT("/read/:id", hb.Notification.MarkReadHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("/send", hb.Notification.SendHandler)
		admin.GET("", hb.Notification.AdminListHandler)
	}
}

// RegisterDashboardRoutes sets up endpoints for admin aggregates.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/dashboard")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/coaching", hb.Dashboard.CoachingStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coachify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCoachingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
