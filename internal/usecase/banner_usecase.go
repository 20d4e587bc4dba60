package usecase

import (
	"context"
	"time"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
)

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
	userRepo   repository.UserRepository
}

func NewBannerUseCase(bannerRepo repository.BannerRepository, userRepo repository.UserRepository) *BannerUseCase {
	return &BannerUseCase{
		bannerRepo: bannerRepo,
		userRepo:   userRepo,
	}
}

type BannerInput struct {
	TitleEn      string `json:"title_en"`
	TitleAm      string `json:"title_am"`
	SubtitleEn   string `json:"subtitle_en"`
	SubtitleAm   string `json:"subtitle_am"`
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url"`
	BgColor      string `json:"bg_color"`
	TextColor    string `json:"text_color"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// ListActiveBanners feeds the public landing page.
func (uc *BannerUseCase) ListActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	return uc.bannerRepo.List(ctx, true)
}

func (uc *BannerUseCase) ListAllBanners(ctx context.Context, adminID string) ([]*entity.Banner, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	return uc.bannerRepo.List(ctx, false)
}

func (uc *BannerUseCase) CreateBanner(ctx context.Context, adminID string, input BannerInput) (*entity.Banner, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	now := time.Now()
	banner := &entity.Banner{
		TitleEn:      input.TitleEn,
		TitleAm:      input.TitleAm,
		SubtitleEn:   input.SubtitleEn,
		SubtitleAm:   input.SubtitleAm,
		ImageURL:     input.ImageURL,
		LinkURL:      input.LinkURL,
		BgColor:      input.BgColor,
		TextColor:    input.TextColor,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (uc *BannerUseCase) UpdateBanner(ctx context.Context, adminID, id string, input BannerInput) (*entity.Banner, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	banner, err := uc.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	banner.TitleEn = input.TitleEn
	banner.TitleAm = input.TitleAm
	banner.SubtitleEn = input.SubtitleEn
	banner.SubtitleAm = input.SubtitleAm
	banner.ImageURL = input.ImageURL
	banner.LinkURL = input.LinkURL
	banner.BgColor = input.BgColor
	banner.TextColor = input.TextColor
	banner.IsActive = input.IsActive
	banner.DisplayOrder = input.DisplayOrder

	if err := uc.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (uc *BannerUseCase) SetBannerActive(ctx context.Context, adminID, id string, active bool) (*entity.Banner, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	banner, err := uc.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	banner.IsActive = active
	if err := uc.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (uc *BannerUseCase) DeleteBanner(ctx context.Context, adminID, id string) error {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return err
	}

	if _, err := uc.bannerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.bannerRepo.Delete(ctx, id)
}
