package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetDashboardStats)
}
