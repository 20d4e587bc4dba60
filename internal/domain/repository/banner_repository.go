package repository

import (
	"context"

	"ethiohomes/internal/domain/entity"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id string) error
}
