package handler

import (
	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/response"
	"ethiohomes/pkg/utils"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) GetInstructions(c echo.Context) error {
	uid := c.Get("uid").(string)

	instructions, err := h.paymentUseCase.GetInstructions(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, instructions)
}

func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	payments, total, err := h.paymentUseCase.ListMyPayments(c.Request().Context(), uid, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	status := entity.PaymentStatus(c.QueryParam("status"))

	payments, total, err := h.paymentUseCase.ListPayments(c.Request().Context(), uid, status, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}

func (h *PaymentHandler) ApprovePayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	payment, err := h.paymentUseCase.ApprovePayment(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	payment, err := h.paymentUseCase.RejectPayment(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}
