package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/pkg/errors"
)

func TestGetDashboardStats(t *testing.T) {
	userRepo := newFakeUserRepo()
	listingRepo := newFakeListingRepo()
	submissionRepo := newFakeSubmissionRepo(listingRepo)
	applicationRepo := newFakeApplicationRepo(userRepo, listingRepo)
	paymentRepo := newFakePaymentRepo(listingRepo)

	uc := NewAdminUseCase(listingRepo, submissionRepo, applicationRepo, paymentRepo, userRepo)

	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)
	broker := seedUser(t, userRepo, "abebe", entity.RoleBroker)

	listings := NewListingUseCase(listingRepo, paymentRepo, userRepo)
	listing, _, err := listings.CreateListing(context.Background(), broker.ID, validListingInput(), nil)
	require.NoError(t, err)

	submissions := NewSubmissionUseCase(submissionRepo, userRepo)
	_, err = submissions.CreateSubmission(context.Background(), validSubmissionInput(), nil)
	require.NoError(t, err)

	stats, err := uc.GetDashboardStats(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ListingsByStatus[listing.Status])
	assert.Equal(t, int64(1), stats.PendingSubmissions)
	assert.Equal(t, int64(0), stats.PendingApplications)
	assert.Equal(t, int64(1), stats.AwaitingPayments)
	assert.Equal(t, int64(2), stats.TotalUsers)

	_, err = uc.GetDashboardStats(context.Background(), broker.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
