package router

import (
	"ethiohomes/internal/adapter/api/handler"
	"ethiohomes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.GET("", paymentHandler.ListMyPayments)
	payments.GET("/:id/instructions", paymentHandler.GetInstructions)

	admin := e.Group("/v1/admin/payments")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", paymentHandler.ListPayments)
	admin.PATCH("/:id/approve", paymentHandler.ApprovePayment)
	admin.PATCH("/:id/reject", paymentHandler.RejectPayment)
}
