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

type firestoreSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubmissionRepository(client *firestore.Client) repository.SubmissionRepository {
	return &firestoreSubmissionRepository{
		client: client,
	}
}

func (r *firestoreSubmissionRepository) Create(ctx context.Context, submission *entity.GuestSubmission) error {
	if submission.ID == "" {
		doc := r.client.Collection("guest_submissions").NewDoc()
		submission.ID = doc.ID
	}

	now := time.Now()
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = now
	}
	submission.UpdatedAt = now

	_, err := r.client.Collection("guest_submissions").Doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to create guest submission", err)
	}

	return nil
}

func (r *firestoreSubmissionRepository) GetByID(ctx context.Context, id string) (*entity.GuestSubmission, error) {
	doc, err := r.client.Collection("guest_submissions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Guest submission", err)
		}
		return nil, errors.Internal("Failed to get guest submission", err)
	}

	var submission entity.GuestSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, errors.Internal("Failed to parse guest submission data", err)
	}

	return &submission, nil
}

func (r *firestoreSubmissionRepository) List(ctx context.Context, reviewStatus entity.ReviewStatus, limit, offset int) ([]*entity.GuestSubmission, int64, error) {
	query := r.client.Collection("guest_submissions").Query

	if reviewStatus != "" {
		query = query.Where("propertyStatus", "==", string(reviewStatus))
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count guest submissions", err)
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
	var submissions []*entity.GuestSubmission

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate guest submissions", err)
		}
		var submission entity.GuestSubmission
		if err := doc.DataTo(&submission); err != nil {
			return nil, 0, errors.Internal("Failed to parse guest submission data", err)
		}
		submissions = append(submissions, &submission)
	}

	return submissions, total, nil
}

func (r *firestoreSubmissionRepository) Update(ctx context.Context, submission *entity.GuestSubmission) error {
	submission.UpdatedAt = time.Now()

	_, err := r.client.Collection("guest_submissions").Doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to update guest submission", err)
	}

	return nil
}

func (r *firestoreSubmissionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("guest_submissions").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete guest submission", err)
	}

	return nil
}

// ApproveWithListing materializes the listing and flips the submission
// to approved in one transaction, so a half-approved submission can
// never be observed.
func (r *firestoreSubmissionRepository) ApproveWithListing(ctx context.Context, submission *entity.GuestSubmission, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = r.client.Collection("listings").NewDoc().ID
	}

	now := time.Now()
	submission.Status = entity.ReviewStatusApproved
	submission.PropertyID = listing.ID
	submission.UpdatedAt = now
	listing.CreatedAt = now
	listing.UpdatedAt = now

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		submissionRef := r.client.Collection("guest_submissions").Doc(submission.ID)
		if _, err := tx.Get(submissionRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Guest submission", err)
			}
			return err
		}

		if err := tx.Set(r.client.Collection("listings").Doc(listing.ID), listing); err != nil {
			return err
		}
		return tx.Set(submissionRef, submission)
	})
}
