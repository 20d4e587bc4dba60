package handler

import (
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/response"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.adminUseCase.GetDashboardStats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
