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

type firestoreApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &firestoreApplicationRepository{
		client: client,
	}
}

func (r *firestoreApplicationRepository) Create(ctx context.Context, application *entity.RoleApplication) error {
	if application.ID == "" {
		doc := r.client.Collection("role_applications").NewDoc()
		application.ID = doc.ID
	}

	now := time.Now()
	if application.CreatedAt.IsZero() {
		application.CreatedAt = now
	}
	application.UpdatedAt = now

	_, err := r.client.Collection("role_applications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to create application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) GetByID(ctx context.Context, id string) (*entity.RoleApplication, error) {
	doc, err := r.client.Collection("role_applications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Application", err)
		}
		return nil, errors.Internal("Failed to get application", err)
	}

	var application entity.RoleApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse application data", err)
	}

	return &application, nil
}

func (r *firestoreApplicationRepository) GetByUserID(ctx context.Context, userID string) (*entity.RoleApplication, error) {
	query := r.client.Collection("role_applications").Where("userId", "==", userID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Application", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get application by user", err)
	}

	var application entity.RoleApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse application data", err)
	}

	return &application, nil
}

func (r *firestoreApplicationRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.RoleApplication, int64, error) {
	query := r.client.Collection("role_applications").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count applications", err)
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
	var applications []*entity.RoleApplication

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate applications", err)
		}
		var application entity.RoleApplication
		if err := doc.DataTo(&application); err != nil {
			return nil, 0, errors.Internal("Failed to parse application data", err)
		}
		applications = append(applications, &application)
	}

	return applications, total, nil
}

func (r *firestoreApplicationRepository) Update(ctx context.Context, application *entity.RoleApplication) error {
	application.UpdatedAt = time.Now()

	_, err := r.client.Collection("role_applications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to update application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("role_applications").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) DeleteByStatus(ctx context.Context, reviewStatus entity.ReviewStatus) (int, error) {
	docs, err := r.client.Collection("role_applications").
		Where("status", "==", string(reviewStatus)).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query applications for deletion", err)
	}

	deleted := 0
	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to bulk delete applications", err)
		}
		deleted++
	}

	return deleted, nil
}

// UpdateWithUser writes the application and the user's role/status
// mirror in one transaction.
func (r *firestoreApplicationRepository) UpdateWithUser(ctx context.Context, application *entity.RoleApplication, user *entity.User) error {
	now := time.Now()
	application.UpdatedAt = now
	user.UpdatedAt = now

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userRef := r.client.Collection("users").Doc(user.ID)
		if _, err := tx.Get(userRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}

		if err := tx.Set(r.client.Collection("role_applications").Doc(application.ID), application); err != nil {
			return err
		}
		return tx.Set(userRef, user)
	})
}

// DeleteCascade removes the application, the user account and the
// user's listings in one transaction. Listing IDs are resolved by the
// caller before the transaction starts.
func (r *firestoreApplicationRepository) DeleteCascade(ctx context.Context, applicationID, userID string, listingIDs []string) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Delete(r.client.Collection("role_applications").Doc(applicationID)); err != nil {
			return err
		}
		if err := tx.Delete(r.client.Collection("users").Doc(userID)); err != nil {
			return err
		}
		for _, id := range listingIDs {
			if err := tx.Delete(r.client.Collection("listings").Doc(id)); err != nil {
				return err
			}
		}
		return nil
	})
}
