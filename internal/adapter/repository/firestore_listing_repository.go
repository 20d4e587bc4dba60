package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("listings").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

// buildQuery applies the filter map. min_price and max_price are range
// conditions; everything else is an equality match on the stored field.
func (r *firestoreListingRepository) buildQuery(filter map[string]interface{}) firestore.Query {
	query := r.client.Collection("listings").Query

	for key, value := range filter {
		switch key {
		case "min_price":
			query = query.Where("price", ">=", value)
		case "max_price":
			query = query.Where("price", "<=", value)
		default:
			query = query.Where(key, "==", value)
		}
	}

	return query
}

func (r *firestoreListingRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.buildQuery(filter)

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listings", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listings", err)
		}
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, total, nil
}

func (r *firestoreListingRepository) SearchByTitle(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	// Firestore has no full-text search, so matching happens client
	// side over the filtered set. Fine for a manually reviewed
	// listings queue; a search service would replace this at scale.
	query = strings.ToLower(query)

	docs, err := r.buildQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to search listings", err)
	}

	var matched []*entity.Listing
	for _, doc := range docs {
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}

		if strings.Contains(strings.ToLower(listing.Title), query) {
			matched = append(matched, &listing)
		}
	}

	total := int64(len(matched))

	start := offset
	end := offset + limit
	if start >= len(matched) {
		return []*entity.Listing{}, total, nil
	}
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (r *firestoreListingRepository) ListByOwnerID(ctx context.Context, ownerID string, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.client.Collection("listings").Query.Where("ownerId", "==", ownerID)

	if status != "" {
		query = query.Where("status", "==", string(status))
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count owner listings", err)
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
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate owner listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, total, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) DeleteWhere(ctx context.Context, filter map[string]interface{}) (int, error) {
	docs, err := r.buildQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query listings for deletion", err)
	}

	deleted := 0
	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to bulk delete listings", err)
		}
		deleted++
	}

	return deleted, nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}

	return nil
}

func (r *firestoreListingRepository) CountByStatus(ctx context.Context) (map[entity.ListingStatus]int64, error) {
	docs, err := r.client.Collection("listings").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to count listings", err)
	}

	counts := make(map[entity.ListingStatus]int64)
	for _, doc := range docs {
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}
		counts[listing.Status]++
	}

	return counts, nil
}
