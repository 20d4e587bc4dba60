package handler

import (
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/response"

	"github.com/labstack/echo/v4"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{
		bannerUseCase: bannerUseCase,
	}
}

type bannerRequest struct {
	TitleEn      string `json:"title_en" validate:"required"`
	TitleAm      string `json:"title_am" validate:"required"`
	SubtitleEn   string `json:"subtitle_en"`
	SubtitleAm   string `json:"subtitle_am"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	LinkURL      string `json:"link_url" validate:"omitempty,url"`
	BgColor      string `json:"bg_color"`
	TextColor    string `json:"text_color"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func (r bannerRequest) toInput() usecase.BannerInput {
	return usecase.BannerInput{
		TitleEn:      r.TitleEn,
		TitleAm:      r.TitleAm,
		SubtitleEn:   r.SubtitleEn,
		SubtitleAm:   r.SubtitleAm,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		BgColor:      r.BgColor,
		TextColor:    r.TextColor,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

func (h *BannerHandler) ListActiveBanners(c echo.Context) error {
	banners, err := h.bannerUseCase.ListActiveBanners(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, banners)
}

func (h *BannerHandler) ListAllBanners(c echo.Context) error {
	uid := c.Get("uid").(string)

	banners, err := h.bannerUseCase.ListAllBanners(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, banners)
}

func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	banner, err := h.bannerUseCase.CreateBanner(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, banner)
}

func (h *BannerHandler) UpdateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	banner, err := h.bannerUseCase.UpdateBanner(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, banner)
}

func (h *BannerHandler) SetBannerActive(c echo.Context) error {
	var req flagRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	banner, err := h.bannerUseCase.SetBannerActive(c.Request().Context(), uid, c.Param("id"), req.Value)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, banner)
}

func (h *BannerHandler) DeleteBanner(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.bannerUseCase.DeleteBanner(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Banner deleted"})
}
