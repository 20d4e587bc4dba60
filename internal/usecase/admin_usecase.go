package usecase

import (
	"context"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
)

// AdminUseCase serves the dashboard counters.
type AdminUseCase struct {
	listingRepo     repository.ListingRepository
	submissionRepo  repository.SubmissionRepository
	applicationRepo repository.ApplicationRepository
	paymentRepo     repository.PaymentRepository
	userRepo        repository.UserRepository
}

func NewAdminUseCase(
	listingRepo repository.ListingRepository,
	submissionRepo repository.SubmissionRepository,
	applicationRepo repository.ApplicationRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
) *AdminUseCase {
	return &AdminUseCase{
		listingRepo:     listingRepo,
		submissionRepo:  submissionRepo,
		applicationRepo: applicationRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
	}
}

type DashboardStats struct {
	ListingsByStatus    map[entity.ListingStatus]int64 `json:"listings_by_status"`
	PendingSubmissions  int64                          `json:"pending_submissions"`
	PendingApplications int64                          `json:"pending_applications"`
	AwaitingPayments    int64                          `json:"awaiting_payments"`
	TotalUsers          int64                          `json:"total_users"`
}

func (uc *AdminUseCase) GetDashboardStats(ctx context.Context, adminID string) (*DashboardStats, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	listingCounts, err := uc.listingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	_, pendingSubmissions, err := uc.submissionRepo.List(ctx, entity.ReviewStatusPending, 1, 0)
	if err != nil {
		return nil, err
	}

	_, pendingApplications, err := uc.applicationRepo.List(ctx,
		map[string]interface{}{"status": string(entity.ReviewStatusPending)}, 1, 0)
	if err != nil {
		return nil, err
	}

	_, awaitingPayments, err := uc.paymentRepo.List(ctx, entity.PaymentStatusAwaiting, 1, 0)
	if err != nil {
		return nil, err
	}

	_, totalUsers, err := uc.userRepo.List(ctx, "", 1, 0)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ListingsByStatus:    listingCounts,
		PendingSubmissions:  pendingSubmissions,
		PendingApplications: pendingApplications,
		AwaitingPayments:    awaitingPayments,
		TotalUsers:          totalUsers,
	}, nil
}
