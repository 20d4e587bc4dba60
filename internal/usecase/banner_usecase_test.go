package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/pkg/errors"
)

func TestBannerLifecycle(t *testing.T) {
	userRepo := newFakeUserRepo()
	bannerRepo := newFakeBannerRepo()
	uc := NewBannerUseCase(bannerRepo, userRepo)

	admin := seedUser(t, userRepo, "admin", entity.RoleAdmin)

	banner, err := uc.CreateBanner(context.Background(), admin.ID, BannerInput{
		TitleEn:  "New listings in Bole",
		TitleAm:  "በቦሌ አዲስ ማስታወቂያዎች",
		IsActive: true,
	})
	require.NoError(t, err)

	hidden, err := uc.CreateBanner(context.Background(), admin.ID, BannerInput{
		TitleEn:  "Upcoming promotion",
		TitleAm:  "የሚመጣ ማስተዋወቂያ",
		IsActive: false,
	})
	require.NoError(t, err)

	// Public feed only carries active banners.
	active, err := uc.ListActiveBanners(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, banner.ID, active[0].ID)

	// Admin sees everything.
	all, err := uc.ListAllBanners(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Toggling surfaces the hidden one.
	_, err = uc.SetBannerActive(context.Background(), admin.ID, hidden.ID, true)
	require.NoError(t, err)
	active, err = uc.ListActiveBanners(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, uc.DeleteBanner(context.Background(), admin.ID, banner.ID))
	_, err = bannerRepo.GetByID(context.Background(), banner.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestBannerAdminGate(t *testing.T) {
	userRepo := newFakeUserRepo()
	bannerRepo := newFakeBannerRepo()
	uc := NewBannerUseCase(bannerRepo, userRepo)

	visitor := seedUser(t, userRepo, "kebede", entity.RoleUser)

	_, err := uc.CreateBanner(context.Background(), visitor.ID, BannerInput{TitleEn: "x", TitleAm: "x"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.ListAllBanners(context.Background(), visitor.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeleteBanner(context.Background(), visitor.ID, "any")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
