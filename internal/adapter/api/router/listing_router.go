package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"
	"ethiohomes/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public browse routes
	e.GET("/v1/listings", listingHandler.ListListings)
	e.GET("/v1/listings/fee", listingHandler.QuoteListingFee)

	// Detail picks up the uid when a token is present so owners
	// browsing their own listing are recognizable.
	detail := e.Group("/v1/listings")
	detail.Use(authMiddleware.OptionalAuthenticate)
	detail.GET("/:id", listingHandler.GetListing)

	// Owner routes: brokers and advertisers manage their own listings
	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.Use(roleMiddleware.Require(entity.RoleBroker, entity.RoleAdvertiser, entity.RoleAdmin))
	myListings.GET("", listingHandler.ListMyListings)
	myListings.POST("", listingHandler.CreateListing)
	myListings.PUT("/:id", listingHandler.UpdateListing)
	myListings.POST("/:id/sold", listingHandler.MarkSold)

	// Moderation routes
	admin := e.Group("/v1/admin/listings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", listingHandler.ListAdminListings)
	admin.PATCH("/:id/approve", listingHandler.ApproveListing)
	admin.PATCH("/:id/reject", listingHandler.RejectListing)
	admin.PATCH("/:id/featured", listingHandler.SetFeatured)
	admin.PATCH("/:id/premium", listingHandler.SetPremium)
	admin.DELETE("/:id", listingHandler.DeleteListing)
	admin.POST("/bulk-delete", listingHandler.BulkDeleteListings)
}
