package router

import (
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupListingRouter(e, authMiddleware, roleMiddleware)
	SetupSubmissionRouter(e, authMiddleware, roleMiddleware)
	SetupApplicationRouter(e, authMiddleware, roleMiddleware)
	SetupPaymentRouter(e, authMiddleware, roleMiddleware)
	SetupBannerRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
