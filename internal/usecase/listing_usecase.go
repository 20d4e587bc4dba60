package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
	"ethiohomes/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

type ListingImageInput struct {
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
}

type CreateListingInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          int64    `json:"price"`
	Currency       string   `json:"currency"`
	Type           string   `json:"type"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Size           float64  `json:"size"`
	Features       []string `json:"features"`
	City           string   `json:"city"`
	Area           string   `json:"area"`
	PhoneNumber    string   `json:"phone_number"`
	WhatsappNumber string   `json:"whatsapp_number"`
	IsPremium      bool     `json:"is_premium"`
	PaymentMethod  string   `json:"payment_method"`
}

type ListingFilter struct {
	Type     string
	City     string
	Currency string
	MinPrice int64
	MaxPrice int64
	Premium  bool
	Featured bool
	Status   entity.ListingStatus
	Sort     string
}

func convertImages(images []ListingImageInput) []entity.ListingImage {
	out := make([]entity.ListingImage, len(images))
	for i, img := range images {
		out[i] = entity.ListingImage{
			ID:           uuid.New().String(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return out
}

// CreateListing stores a broker/advertiser listing in pending_payment
// and opens the awaiting payment for the computed listing fee.
// Publication is gated on an admin approving that payment.
func (uc *ListingUseCase) CreateListing(ctx context.Context, ownerID string, input CreateListingInput, images []ListingImageInput) (*entity.Listing, *entity.Payment, error) {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, nil, errors.BadRequest("Invalid owner", err)
	}

	if owner.Role != entity.RoleBroker && owner.Role != entity.RoleAdvertiser && owner.Role != entity.RoleAdmin {
		return nil, nil, errors.Forbidden("Only brokers and advertisers can create listings", nil)
	}

	if !entity.IsValidListingType(input.Type) {
		return nil, nil, errors.BadRequest("Invalid property type", nil)
	}

	if input.Currency != entity.CurrencyETB && input.Currency != entity.CurrencyUSD {
		return nil, nil, errors.BadRequest("Invalid currency", nil)
	}

	if input.PaymentMethod != entity.PaymentMethodCBE && input.PaymentMethod != entity.PaymentMethodTelebirr {
		return nil, nil, errors.BadRequest("Invalid payment method", nil)
	}

	now := time.Now()
	listing := &entity.Listing{
		OwnerID:        ownerID,
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Currency:       input.Currency,
		Type:           input.Type,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		Size:           input.Size,
		Features:       input.Features,
		Images:         convertImages(images),
		City:           input.City,
		Area:           input.Area,
		PhoneNumber:    input.PhoneNumber,
		WhatsappNumber: input.WhatsappNumber,
		Source:         entity.SourceBroker,
		Status:         entity.ListingStatusPendingPayment,
		IsPremium:      input.IsPremium,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, nil, err
	}

	payment := &entity.Payment{
		PropertyID: listing.ID,
		PayerID:    ownerID,
		Amount:     entity.ComputeListingFee(input.Type, input.IsPremium),
		Method:     input.PaymentMethod,
		PayerName:  owner.Username,
		PayerPhone: owner.Phone,
		Status:     entity.PaymentStatusAwaiting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	return listing, payment, nil
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, ownerID string, input CreateListingInput, images []ListingImageInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	if !listing.Status.Editable() {
		return nil, errors.Conflict("Listing can no longer be edited", nil)
	}

	if !entity.IsValidListingType(input.Type) {
		return nil, errors.BadRequest("Invalid property type", nil)
	}

	if input.Currency != entity.CurrencyETB && input.Currency != entity.CurrencyUSD {
		return nil, errors.BadRequest("Invalid currency", nil)
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Price = input.Price
	listing.Currency = input.Currency
	listing.Type = input.Type
	listing.Bedrooms = input.Bedrooms
	listing.Bathrooms = input.Bathrooms
	listing.Size = input.Size
	listing.Features = input.Features
	listing.City = input.City
	listing.Area = input.Area
	listing.PhoneNumber = input.PhoneNumber
	listing.WhatsappNumber = input.WhatsappNumber

	if len(images) > 0 {
		listing.Images = convertImages(images)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListing is the public detail fetch; views are counted out of band.
func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
			logger.Warn("Failed to count view for listing %s: %v", id, err)
		}
	}()

	return listing, nil
}

func (f ListingFilter) toMap() map[string]interface{} {
	filter := make(map[string]interface{})

	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.City != "" {
		filter["city"] = f.City
	}
	if f.Currency != "" {
		filter["currency"] = f.Currency
	}
	if f.MinPrice > 0 {
		filter["min_price"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		filter["max_price"] = f.MaxPrice
	}
	if f.Premium {
		filter["isPremium"] = true
	}
	if f.Featured {
		filter["isFeatured"] = true
	}

	if f.Status != "" {
		filter["status"] = string(f.Status)
	} else {
		// The public catalogue only ever shows approved listings.
		filter["status"] = string(entity.ListingStatusApproved)
	}

	return filter
}

func (uc *ListingUseCase) ListListings(ctx context.Context, filter ListingFilter, page, limit int) ([]*entity.Listing, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.listingRepo.List(ctx, filter.toMap(), filter.Sort, limit, offset)
}

func (uc *ListingUseCase) SearchListings(ctx context.Context, query string, filter ListingFilter, page, limit int) ([]*entity.Listing, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.listingRepo.SearchByTitle(ctx, query, filter.toMap(), limit, offset)
}

func (uc *ListingUseCase) ListByOwner(ctx context.Context, ownerID string, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, int64, error) {
	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, 0, errors.BadRequest("Invalid owner", err)
	}

	return uc.listingRepo.ListByOwnerID(ctx, ownerID, status, limit, offset)
}

// MarkSold moves an approved listing to sold. The owner or an admin
// may do this.
func (uc *ListingUseCase) MarkSold(ctx context.Context, callerID, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != callerID {
		if _, err := requireAdmin(ctx, uc.userRepo, callerID); err != nil {
			return nil, err
		}
	}

	next, err := listing.Status.Transition(entity.ActionMarkSold)
	if err != nil {
		return nil, err
	}

	listing.Status = next
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// reviewListing applies an admin approve/reject to a listing directly,
// without going through its payment.
func (uc *ListingUseCase) reviewListing(ctx context.Context, adminID, id string, action entity.StatusAction) (*entity.Listing, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := listing.Status.Transition(action)
	if err != nil {
		return nil, err
	}

	listing.Status = next
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) ApproveListing(ctx context.Context, adminID, id string) (*entity.Listing, error) {
	return uc.reviewListing(ctx, adminID, id, entity.ActionApprove)
}

func (uc *ListingUseCase) RejectListing(ctx context.Context, adminID, id string) (*entity.Listing, error) {
	return uc.reviewListing(ctx, adminID, id, entity.ActionReject)
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, adminID, id string) error {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return err
	}

	if _, err := uc.listingRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.listingRepo.Delete(ctx, id)
}

// Bulk delete predicates accepted from the admin dashboard.
const (
	BulkPredicateRejected         = "rejected"
	BulkPredicateAll              = "all"
	BulkPredicateBrokerProperties = "broker_properties"
)

func (uc *ListingUseCase) BulkDeleteListings(ctx context.Context, adminID, predicate string) (int, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return 0, err
	}

	var filter map[string]interface{}
	switch predicate {
	case BulkPredicateRejected:
		filter = map[string]interface{}{"status": string(entity.ListingStatusRejected)}
	case BulkPredicateAll:
		filter = map[string]interface{}{}
	case BulkPredicateBrokerProperties:
		filter = map[string]interface{}{"source": entity.SourceBroker}
	default:
		return 0, errors.BadRequest("Unknown bulk delete predicate", nil)
	}

	deleted, err := uc.listingRepo.DeleteWhere(ctx, filter)
	if err != nil {
		return deleted, err
	}

	logger.Info("Admin %s bulk deleted %d listings (predicate=%s)", adminID, deleted, predicate)
	return deleted, nil
}

func (uc *ListingUseCase) SetFeatured(ctx context.Context, adminID, id string, featured bool) (*entity.Listing, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.IsFeatured = featured
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) SetPremium(ctx context.Context, adminID, id string, premium bool) (*entity.Listing, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.IsPremium = premium
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}
