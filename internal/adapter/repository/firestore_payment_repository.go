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

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		doc := r.client.Collection("payments").NewDoc()
		payment.ID = doc.ID
	}

	now := time.Now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to create payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	doc, err := r.client.Collection("payments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Payment", err)
		}
		return nil, errors.Internal("Failed to get payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) GetByPropertyID(ctx context.Context, propertyID string) (*entity.Payment, error) {
	query := r.client.Collection("payments").Where("propertyId", "==", propertyID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Payment", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get payment by property", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) List(ctx context.Context, paymentStatus entity.PaymentStatus, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").Query

	if paymentStatus != "" {
		query = query.Where("status", "==", string(paymentStatus))
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count payments", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var payments []*entity.Payment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate payments", err)
		}
		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, 0, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	return payments, total, nil
}

func (r *firestorePaymentRepository) ListByPayerID(ctx context.Context, payerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").Query.Where("payerId", "==", payerID)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count payer payments", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var payments []*entity.Payment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate payer payments", err)
		}
		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, 0, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	return payments, total, nil
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	payment.UpdatedAt = time.Now()

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to update payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("payments").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete payment", err)
	}

	return nil
}

// ApplyReview runs the payment transition and its listing cascade in
// one Firestore transaction. The invariant: after approval the linked
// listing is approved, after rejection it is rejected, and a failure
// anywhere leaves both documents as they were.
func (r *firestorePaymentRepository) ApplyReview(ctx context.Context, paymentID string, action entity.StatusAction) (*entity.Payment, error) {
	var reviewed entity.Payment

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		paymentRef := r.client.Collection("payments").Doc(paymentID)
		paymentDoc, err := tx.Get(paymentRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Payment", err)
			}
			return err
		}

		var payment entity.Payment
		if err := paymentDoc.DataTo(&payment); err != nil {
			return errors.Internal("Failed to parse payment data", err)
		}

		nextPayment, err := payment.Status.Transition(action)
		if err != nil {
			return err
		}

		listingRef := r.client.Collection("listings").Doc(payment.PropertyID)
		listingDoc, err := tx.Get(listingRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Linked listing", err)
			}
			return err
		}

		var listing entity.Listing
		if err := listingDoc.DataTo(&listing); err != nil {
			return errors.Internal("Failed to parse listing data", err)
		}

		nextListing, err := listing.Status.Transition(action)
		if err != nil {
			return err
		}

		now := time.Now()
		payment.Status = nextPayment
		payment.UpdatedAt = now
		listing.Status = nextListing
		listing.UpdatedAt = now

		if err := tx.Set(paymentRef, &payment); err != nil {
			return err
		}
		if err := tx.Set(listingRef, &listing); err != nil {
			return err
		}

		reviewed = payment
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &reviewed, nil
}
