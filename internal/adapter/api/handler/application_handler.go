package handler

import (
	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/response"
	"ethiohomes/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	applicationUseCase *usecase.ApplicationUseCase
}

func NewApplicationHandler(applicationUseCase *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
	}
}

type applyRequest struct {
	Type          string `json:"type" validate:"required,oneof=broker advertiser"`
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	BusinessName  string `json:"business_name"`
	LicenseNumber string `json:"license_number"`
	City          string `json:"city" validate:"required"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	application, err := h.applicationUseCase.Apply(c.Request().Context(), uid, usecase.ApplyInput{
		Type:          req.Type,
		FullName:      req.FullName,
		Phone:         req.Phone,
		BusinessName:  req.BusinessName,
		LicenseNumber: req.LicenseNumber,
		City:          req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, application)
}

func (h *ApplicationHandler) GetMyApplication(c echo.Context) error {
	uid := c.Get("uid").(string)

	application, err := h.applicationUseCase.GetMyApplication(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	status := entity.ReviewStatus(c.QueryParam("status"))

	applications, total, err := h.applicationUseCase.ListApplications(
		c.Request().Context(), uid, c.QueryParam("type"), status, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, applications, total, params.Page, params.PageSize)
}

func (h *ApplicationHandler) ApproveApplication(c echo.Context) error {
	uid := c.Get("uid").(string)

	application, err := h.applicationUseCase.ApproveApplication(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) RejectApplication(c echo.Context) error {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	application, err := h.applicationUseCase.RejectApplication(c.Request().Context(), uid, c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) DeleteApplication(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.applicationUseCase.DeleteApplication(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Application deleted"})
}

func (h *ApplicationHandler) BulkDeleteRejected(c echo.Context) error {
	uid := c.Get("uid").(string)

	deleted, err := h.applicationUseCase.BulkDeleteRejected(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"deleted": deleted})
}
