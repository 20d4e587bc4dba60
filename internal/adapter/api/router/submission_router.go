package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSubmissionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	submissionHandler := handler.GetSubmissionHandler()

	// Guests post without an account
	e.POST("/v1/submissions", submissionHandler.CreateSubmission)

	// Review queue is admin only
	admin := e.Group("/v1/admin/submissions")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", submissionHandler.ListSubmissions)
	admin.GET("/:id", submissionHandler.GetSubmission)
	admin.PATCH("/:id/approve", submissionHandler.ApproveSubmission)
	admin.PATCH("/:id/reject", submissionHandler.RejectSubmission)
	admin.DELETE("/:id", submissionHandler.DeleteSubmission)
}
