package repository

import (
	"context"

	"ethiohomes/internal/domain/entity"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.GuestSubmission) error
	GetByID(ctx context.Context, id string) (*entity.GuestSubmission, error)
	List(ctx context.Context, status entity.ReviewStatus, limit, offset int) ([]*entity.GuestSubmission, int64, error)
	Update(ctx context.Context, submission *entity.GuestSubmission) error
	Delete(ctx context.Context, id string) error

	// ApproveWithListing marks the submission approved and creates the
	// materialized listing in a single transaction; either both land
	// or neither does.
	ApproveWithListing(ctx context.Context, submission *entity.GuestSubmission, listing *entity.Listing) error
}
