package repository

import (
	"context"

	"ethiohomes/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByPropertyID(ctx context.Context, propertyID string) (*entity.Payment, error)
	List(ctx context.Context, status entity.PaymentStatus, limit, offset int) ([]*entity.Payment, int64, error)
	ListByPayerID(ctx context.Context, payerID string, limit, offset int) ([]*entity.Payment, int64, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id string) error

	// ApplyReview transitions the payment and cascades to its linked
	// listing inside one transaction: approving a payment approves
	// the listing, rejecting it rejects the listing. The transition
	// is validated against the status tables inside the transaction,
	// so an illegal action or a missing listing leaves both records
	// untouched.
	ApplyReview(ctx context.Context, paymentID string, action entity.StatusAction) (*entity.Payment, error)
}
