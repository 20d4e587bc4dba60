package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupBannerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	bannerHandler := handler.GetBannerHandler()

	// Landing page pulls active banners anonymously
	e.GET("/v1/banners", bannerHandler.ListActiveBanners)

	admin := e.Group("/v1/admin/banners")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", bannerHandler.ListAllBanners)
	admin.POST("", bannerHandler.CreateBanner)
	admin.PUT("/:id", bannerHandler.UpdateBanner)
	admin.PATCH("/:id/active", bannerHandler.SetBannerActive)
	admin.DELETE("/:id", bannerHandler.DeleteBanner)
}
