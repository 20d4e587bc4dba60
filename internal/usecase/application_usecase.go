package usecase

import (
	"context"
	"time"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
	"ethiohomes/pkg/logger"
)

type ApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
	listingRepo     repository.ListingRepository
	userRepo        repository.UserRepository
	auth            AuthClient
}

func NewApplicationUseCase(
	applicationRepo repository.ApplicationRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	auth AuthClient,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		applicationRepo: applicationRepo,
		listingRepo:     listingRepo,
		userRepo:        userRepo,
		auth:            auth,
	}
}

type ApplyInput struct {
	Type          string `json:"type"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	BusinessName  string `json:"business_name"`
	LicenseNumber string `json:"license_number"`
	City          string `json:"city"`
}

// Apply files a broker/advertiser application for the calling user.
// One live application per user; a rejected one may be replaced.
func (uc *ApplicationUseCase) Apply(ctx context.Context, userID string, input ApplyInput) (*entity.RoleApplication, error) {
	if input.Type != entity.ApplicationTypeBroker && input.Type != entity.ApplicationTypeAdvertiser {
		return nil, errors.BadRequest("Invalid application type", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("Invalid user", err)
	}

	if user.Role == entity.RoleBroker || user.Role == entity.RoleAdvertiser {
		return nil, errors.Conflict("Account already has a listing role", nil)
	}

	existing, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil && existing.Status == entity.ReviewStatusPending {
		return nil, errors.Conflict("An application is already pending for this account", nil)
	}

	now := time.Now()
	application := &entity.RoleApplication{
		UserID:        userID,
		Type:          input.Type,
		FullName:      input.FullName,
		Phone:         input.Phone,
		BusinessName:  input.BusinessName,
		LicenseNumber: input.LicenseNumber,
		City:          input.City,
		Status:        entity.ReviewStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	user.BrokerStatus = entity.ReviewStatusPending
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to mirror application status on user %s: %v", userID, err)
	}

	return application, nil
}

func (uc *ApplicationUseCase) GetMyApplication(ctx context.Context, userID string) (*entity.RoleApplication, error) {
	return uc.applicationRepo.GetByUserID(ctx, userID)
}

func (uc *ApplicationUseCase) ListApplications(ctx context.Context, adminID, applicationType string, status entity.ReviewStatus, page, limit int) ([]*entity.RoleApplication, int64, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, 0, err
	}

	filter := make(map[string]interface{})
	if applicationType != "" {
		filter["type"] = applicationType
	}
	if status != "" {
		filter["status"] = string(status)
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.applicationRepo.List(ctx, filter, limit, offset)
}

// ApproveApplication grants the applied-for role. Application and user
// are written together so a user can never hold an approved
// application without the matching role.
func (uc *ApplicationUseCase) ApproveApplication(ctx context.Context, adminID, id string) (*entity.RoleApplication, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	application, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := application.Status.Transition(entity.ActionApprove)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, application.UserID)
	if err != nil {
		return nil, errors.NotFound("Applicant user", err)
	}

	application.Status = next
	user.Role = application.GrantedRole()
	user.BrokerStatus = entity.ReviewStatusApproved

	if err := uc.applicationRepo.UpdateWithUser(ctx, application, user); err != nil {
		return nil, err
	}

	return application, nil
}

func (uc *ApplicationUseCase) RejectApplication(ctx context.Context, adminID, id, reason string) (*entity.RoleApplication, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	if reason == "" {
		return nil, errors.BadRequest("Rejection reason is required", nil)
	}

	application, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := application.Status.Transition(entity.ActionReject)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, application.UserID)
	if err != nil {
		return nil, errors.NotFound("Applicant user", err)
	}

	application.Status = next
	application.RejectionReason = reason
	user.BrokerStatus = entity.ReviewStatusRejected

	if err := uc.applicationRepo.UpdateWithUser(ctx, application, user); err != nil {
		return nil, err
	}

	return application, nil
}

// DeleteApplication removes the application together with the user
// account and every listing that user owns. The auth provider account
// is removed afterwards; losing that cleanup only leaves a dangling
// login with no user record behind it.
func (uc *ApplicationUseCase) DeleteApplication(ctx context.Context, adminID, id string) error {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return err
	}

	application, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user, err := uc.userRepo.GetByID(ctx, application.UserID)
	if err != nil {
		return errors.NotFound("Applicant user", err)
	}

	if user.IsMainAdmin() {
		return errors.Forbidden("The main admin account cannot be deleted", nil)
	}

	listings, _, err := uc.listingRepo.ListByOwnerID(ctx, user.ID, "", 0, 0)
	if err != nil {
		return err
	}

	listingIDs := make([]string, len(listings))
	for i, l := range listings {
		listingIDs[i] = l.ID
	}

	if err := uc.applicationRepo.DeleteCascade(ctx, application.ID, user.ID, listingIDs); err != nil {
		return err
	}

	if err := uc.auth.DeleteUser(ctx, user.ID); err != nil {
		logger.Warn("Failed to delete auth account for user %s: %v", user.ID, err)
	}

	logger.Info("Admin %s deleted application %s, user %s and %d listings", adminID, id, user.ID, len(listingIDs))
	return nil
}

func (uc *ApplicationUseCase) BulkDeleteRejected(ctx context.Context, adminID string) (int, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return 0, err
	}

	return uc.applicationRepo.DeleteByStatus(ctx, entity.ReviewStatusRejected)
}
