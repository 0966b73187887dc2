package routes

import (
	"time"

	"cpicareers/handlers"
	"cpicareers/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSlotRoutes registers the public interview slot endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interview-slots")
	{
		api.GET("", hb.GetMonthSlotsHandler)
		api.POST("/book", hb.BookSlotHandler)
	}
}

// RegisterApplicationRoutes registers the application intake endpoint.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/applications", hb.SubmitApplicationHandler)
}

// RegisterJobPostingRoutes registers the public listings endpoint.
func RegisterJobPostingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/job-postings", hb.ListJobPostingsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.AdminSecret))
		adminGroup.POST("/interview-slots", hb.CreateSlotsHandler)
		adminGroup.PATCH("/interview-slots/:id", hb.UpdateSlotStatusHandler)
		adminGroup.DELETE("/interview-slots/:id", hb.DeleteSlotHandler)
		adminGroup.GET("/applications", hb.ListApplicationsHandler)
		adminGroup.POST("/applications/:id/reconcile", hb.ReconcileApplicationHandler)
		adminGroup.POST("/job-postings", hb.CreateJobPostingHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSlotRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterJobPostingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterAdminRoutes(r, hb)
}
