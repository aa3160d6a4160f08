package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/handlers"
	"hirelane_backend/internal/middleware"
	"hirelane_backend/internal/models"
)

// RegisterRoutes sets up the full /api/v1 surface. Three tiers: public
// (no token), employer (Bearer token), admin (Bearer token + admin role).
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, jwtSecret string) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/refresh", h.AuthHandler.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(jwtSecret), h.AuthHandler.Logout)
	}

	public := api.Group("/jobs")
	public.Use(middleware.OptionalAuthMiddleware(jwtSecret))
	{
		public.GET("", h.JobHandler.Search)
		public.GET("/:jobId", h.JobHandler.Get)
		// Candidate submission needs no account.
		public.POST("/:jobId/applications", h.ApplicationHandler.Submit)
	}

	// Employer
	employer := api.Group("")
	employer.Use(middleware.AuthMiddleware(jwtSecret))
	{
		jobs := employer.Group("/jobs")
		{
			jobs.GET("/my", h.JobHandler.My)
			jobs.POST("", h.JobHandler.Create)
			jobs.PUT("/:jobId", h.JobHandler.Update)
			jobs.POST("/:jobId/close", h.JobHandler.Close)
			jobs.DELETE("/:jobId", h.JobHandler.Delete)

			jobs.GET("/:jobId/board", h.ApplicationHandler.Board)
			jobs.GET("/:jobId/applications", h.ApplicationHandler.ListByJob)
			jobs.GET("/:jobId/applications/stats", h.ApplicationHandler.Stats)
			jobs.POST("/:jobId/applications/manual", h.ApplicationHandler.Add)
		}

		applications := employer.Group("/applications")
		{
			applications.GET("/:applicationId", h.ApplicationHandler.Get)
			applications.PUT("/:applicationId/stage", h.ApplicationHandler.UpdateStage)
			applications.PUT("/:applicationId/notes", h.ApplicationHandler.UpdateNotes)
			applications.DELETE("/:applicationId", h.ApplicationHandler.Delete)
			applications.GET("/:applicationId/history", h.ApplicationHandler.History)
			applications.GET("/:applicationId/resume", h.FileHandler.DownloadResume)
		}

		notifications := employer.Group("/notifications")
		{
			notifications.GET("", h.NotificationHandler.List)
			notifications.POST("/:notificationId/read", h.NotificationHandler.MarkRead)
		}
	}

	// Admin
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireRoles(models.EmployerRoleAdmin))
	{
		admin.GET("/jobs/pending", h.AdminHandler.PendingJobs)
		admin.POST("/jobs/:jobId/approve", h.AdminHandler.ApproveJob)
		admin.POST("/jobs/:jobId/reject", h.AdminHandler.RejectJob)
	}
}
