package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/pkg/errors"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, role string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func newListingFixture(t *testing.T) (*ListingUseCase, *fakeListingRepo, *fakePaymentRepo, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	listingRepo := newFakeListingRepo()
	paymentRepo := newFakePaymentRepo(listingRepo)
	uc := NewListingUseCase(listingRepo, paymentRepo, userRepo)
	return uc, listingRepo, paymentRepo, userRepo
}

func validListingInput() CreateListingInput {
	return CreateListingInput{
		Title:         "3 bedroom house in Bole",
		Description:   "Newly built",
		Price:         15000000,
		Currency:      entity.CurrencyETB,
		Type:          "house_sale",
		Bedrooms:      3,
		City:          "Addis Ababa",
		Area:          "Bole",
		PhoneNumber:   "+251911000000",
		PaymentMethod: entity.PaymentMethodCBE,
	}
}

func TestCreateListingOpensPayment(t *testing.T) {
	uc, _, paymentRepo, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	listing, payment, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, entity.ListingStatusPendingPayment, listing.Status)
	assert.Equal(t, entity.SourceBroker, listing.Source)

	require.NotNil(t, payment)
	assert.Equal(t, listing.ID, payment.PropertyID)
	assert.Equal(t, broker.ID, payment.PayerID)
	assert.Equal(t, entity.PaymentStatusAwaiting, payment.Status)
	assert.Equal(t, entity.ComputeListingFee("house_sale", false), payment.Amount)

	stored, err := paymentRepo.GetByPropertyID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, stored.ID)
}

func TestCreateListingPremiumFee(t *testing.T) {
	uc, _, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	input := validListingInput()
	input.Type = "house_rent"
	input.IsPremium = true

	_, payment, err := uc.CreateListing(context.Background(), broker.ID, input, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(125), payment.Amount)
}

func TestCreateListingRequiresListingRole(t *testing.T) {
	uc, _, _, userRepo := newListingFixture(t)
	visitor := seedUser(t, userRepo, "kebede", entity.RoleUser)

	_, _, err := uc.CreateListing(context.Background(), visitor.ID, validListingInput(), nil)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateListingRejectsBadInput(t *testing.T) {
	uc, _, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	input := validListingInput()
	input.Type = "castle_sale"
	_, _, err := uc.CreateListing(context.Background(), broker.ID, input, nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	input = validListingInput()
	input.Currency = "EUR"
	_, _, err = uc.CreateListing(context.Background(), broker.ID, input, nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	input = validListingInput()
	input.PaymentMethod = "paypal"
	_, _, err = uc.CreateListing(context.Background(), broker.ID, input, nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateListingLockedAfterReview(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	listing, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	// Editable while pending payment.
	input := validListingInput()
	input.Title = "Price reduced"
	updated, err := uc.UpdateListing(context.Background(), listing.ID, broker.ID, input, nil)
	require.NoError(t, err)
	assert.Equal(t, "Price reduced", updated.Title)

	// Locked once approved.
	listing.Status = entity.ListingStatusApproved
	require.NoError(t, listingRepo.Update(context.Background(), listing))

	_, err = uc.UpdateListing(context.Background(), listing.ID, broker.ID, input, nil)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	uc, _, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)
	other := seedUser(t, userRepo, "kebede", entity.RoleBroker)

	listing, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	_, err = uc.UpdateListing(context.Background(), listing.ID, other.ID, validListingInput(), nil)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestReviewListingRequiresAdmin(t *testing.T) {
	uc, _, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	listing, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	_, err = uc.ApproveListing(context.Background(), broker.ID, listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.RejectListing(context.Background(), broker.ID, listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeleteListing(context.Background(), broker.ID, listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestReviewListingTerminalStates(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	listing, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	rejected, err := uc.RejectListing(context.Background(), admin.ID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusRejected, rejected.Status)

	// A rejected listing cannot come back.
	_, err = uc.ApproveListing(context.Background(), admin.ID, listing.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusRejected, stored.Status)
}

func TestMarkSold(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)
	stranger := seedUser(t, userRepo, "kebede", entity.RoleUser)

	listing, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	// Not sellable before approval.
	_, err = uc.MarkSold(context.Background(), broker.ID, listing.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = uc.ApproveListing(context.Background(), admin.ID, listing.ID)
	require.NoError(t, err)

	_, err = uc.MarkSold(context.Background(), stranger.ID, listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	sold, err := uc.MarkSold(context.Background(), broker.ID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusSold, sold.Status)

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusSold, stored.Status)
}

func TestPublicListDefaultsToApproved(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	pending, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	approved, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)
	approved.Status = entity.ListingStatusApproved
	require.NoError(t, listingRepo.Update(context.Background(), approved))

	listings, total, err := uc.ListListings(context.Background(), ListingFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listings, 1)
	assert.Equal(t, approved.ID, listings[0].ID)
	assert.NotEqual(t, pending.ID, listings[0].ID)
}

func TestBulkDeleteListings(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	first, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)
	second, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	_, err = uc.RejectListing(context.Background(), admin.ID, first.ID)
	require.NoError(t, err)

	deleted, err := uc.BulkDeleteListings(context.Background(), admin.ID, BulkPredicateRejected)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = listingRepo.GetByID(context.Background(), first.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	_, err = listingRepo.GetByID(context.Background(), second.ID)
	assert.NoError(t, err)

	// Unknown predicates are refused outright.
	_, err = uc.BulkDeleteListings(context.Background(), admin.ID, "everything")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Non-admins cannot bulk delete.
	_, err = uc.BulkDeleteListings(context.Background(), broker.ID, BulkPredicateAll)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	deleted, err = uc.BulkDeleteListings(context.Background(), admin.ID, BulkPredicateAll)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestBulkDeleteBrokerProperties(t *testing.T) {
	uc, listingRepo, _, userRepo := newListingFixture(t)
	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	_, _, err := uc.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	guestListing := &entity.Listing{
		Title:  "Guest house",
		Source: entity.SourceGuest,
		Status: entity.ListingStatusApproved,
	}
	require.NoError(t, listingRepo.Create(context.Background(), guestListing))

	deleted, err := uc.BulkDeleteListings(context.Background(), admin.ID, BulkPredicateBrokerProperties)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Guest-sourced listings survive.
	_, err = listingRepo.GetByID(context.Background(), guestListing.ID)
	assert.NoError(t, err)
}
