package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupApplicationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	applicationHandler := handler.GetApplicationHandler()

	// Any signed-in user may apply for a broker or advertiser role
	applications := e.Group("/v1/applications")
	applications.Use(authMiddleware.Authenticate)
	applications.POST("", applicationHandler.Apply)
	applications.GET("/me", applicationHandler.GetMyApplication)

	admin := e.Group("/v1/admin/applications")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", applicationHandler.ListApplications)
	admin.PATCH("/:id/approve", applicationHandler.ApproveApplication)
	admin.PATCH("/:id/reject", applicationHandler.RejectApplication)
	admin.DELETE("/:id", applicationHandler.DeleteApplication)
	admin.POST("/bulk-delete-rejected", applicationHandler.BulkDeleteRejected)
}
