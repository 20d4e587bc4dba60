package handler

import (
	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/response"
	"ethiohomes/pkg/utils"

	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct {
	submissionUseCase *usecase.SubmissionUseCase
}

func NewSubmissionHandler(submissionUseCase *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
	}
}

type createSubmissionRequest struct {
	Title         string                      `json:"title" validate:"required,min=3"`
	Description   string                      `json:"description" validate:"required"`
	Price         int64                       `json:"price" validate:"required,gt=0"`
	Currency      string                      `json:"currency" validate:"required,oneof=ETB USD"`
	Type          string                      `json:"type" validate:"required"`
	Bedrooms      int                         `json:"bedrooms"`
	Bathrooms     int                         `json:"bathrooms"`
	Size          float64                     `json:"size"`
	Features      []string                    `json:"features"`
	City          string                      `json:"city" validate:"required"`
	Area          string                      `json:"area"`
	GuestName     string                      `json:"guest_name" validate:"required"`
	GuestPhone    string                      `json:"guest_phone" validate:"required"`
	GuestWhatsapp string                      `json:"guest_whatsapp"`
	Images        []usecase.ListingImageInput `json:"images"`
}

func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	submission, err := h.submissionUseCase.CreateSubmission(c.Request().Context(), usecase.CreateSubmissionInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      req.Currency,
		Type:          req.Type,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Size:          req.Size,
		Features:      req.Features,
		City:          req.City,
		Area:          req.Area,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		GuestWhatsapp: req.GuestWhatsapp,
	}, req.Images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, submission)
}

func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	uid := c.Get("uid").(string)

	submission, err := h.submissionUseCase.GetSubmission(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submission)
}

func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	status := entity.ReviewStatus(c.QueryParam("status"))

	submissions, total, err := h.submissionUseCase.ListSubmissions(c.Request().Context(), uid, status, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, submissions, total, params.Page, params.PageSize)
}

func (h *SubmissionHandler) ApproveSubmission(c echo.Context) error {
	uid := c.Get("uid").(string)

	submission, err := h.submissionUseCase.ApproveSubmission(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submission)
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

func (h *SubmissionHandler) RejectSubmission(c echo.Context) error {
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	submission, err := h.submissionUseCase.RejectSubmission(c.Request().Context(), uid, c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, submission)
}

func (h *SubmissionHandler) DeleteSubmission(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.submissionUseCase.DeleteSubmission(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Submission deleted"})
}
