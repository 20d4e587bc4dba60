package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
)

type firestoreBannerRepository struct {
	client *firestore.Client
}

func NewFirestoreBannerRepository(client *firestore.Client) repository.BannerRepository {
	return &firestoreBannerRepository{
		client: client,
	}
}

func (r *firestoreBannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	if banner.ID == "" {
		doc := r.client.Collection("banners").NewDoc()
		banner.ID = doc.ID
	}

	now := time.Now()
	if banner.CreatedAt.IsZero() {
		banner.CreatedAt = now
	}
	banner.UpdatedAt = now

	_, err := r.client.Collection("banners").Doc(banner.ID).Set(ctx, banner)
	if err != nil {
		return errors.Internal("Failed to create banner", err)
	}

	return nil
}

func (r *firestoreBannerRepository) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	doc, err := r.client.Collection("banners").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Banner", err)
		}
		return nil, errors.Internal("Failed to get banner", err)
	}

	var banner entity.Banner
	if err := doc.DataTo(&banner); err != nil {
		return nil, errors.Internal("Failed to parse banner data", err)
	}

	return &banner, nil
}

func (r *firestoreBannerRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Banner, error) {
	query := r.client.Collection("banners").Query

	if onlyActive {
		query = query.Where("isActive", "==", true)
	}

	iter := query.OrderBy("displayOrder", firestore.Asc).Documents(ctx)
	var banners []*entity.Banner

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate banners", err)
		}
		var banner entity.Banner
		if err := doc.DataTo(&banner); err != nil {
			return nil, errors.Internal("Failed to parse banner data", err)
		}
		banners = append(banners, &banner)
	}

	return banners, nil
}

func (r *firestoreBannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	banner.UpdatedAt = time.Now()

	_, err := r.client.Collection("banners").Doc(banner.ID).Set(ctx, banner)
	if err != nil {
		return errors.Internal("Failed to update banner", err)
	}

	return nil
}

func (r *firestoreBannerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("banners").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete banner", err)
	}

	return nil
}
