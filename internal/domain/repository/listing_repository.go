package repository

import (
	"context"

	"ethiohomes/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error)
	SearchByTitle(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error)
	ListByOwnerID(ctx context.Context, ownerID string, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error

	// DeleteWhere removes every listing matching the filter and
	// returns how many were removed. An empty filter removes all.
	DeleteWhere(ctx context.Context, filter map[string]interface{}) (int, error)

	IncrementViews(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entity.ListingStatus]int64, error)
}
