package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
)

type SubmissionUseCase struct {
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
}

func NewSubmissionUseCase(
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
	}
}

type CreateSubmissionInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Currency      string   `json:"currency"`
	Type          string   `json:"type"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Size          float64  `json:"size"`
	Features      []string `json:"features"`
	City          string   `json:"city"`
	Area          string   `json:"area"`
	GuestName     string   `json:"guest_name"`
	GuestPhone    string   `json:"guest_phone"`
	GuestWhatsapp string   `json:"guest_whatsapp"`
}

// CreateSubmission accepts a property proposal from an unauthenticated
// visitor. It enters the admin review queue as pending.
func (uc *SubmissionUseCase) CreateSubmission(ctx context.Context, input CreateSubmissionInput, images []ListingImageInput) (*entity.GuestSubmission, error) {
	if !entity.IsValidListingType(input.Type) {
		return nil, errors.BadRequest("Invalid property type", nil)
	}

	if input.Currency != entity.CurrencyETB && input.Currency != entity.CurrencyUSD {
		return nil, errors.BadRequest("Invalid currency", nil)
	}

	submissionImages := make([]entity.ListingImage, len(images))
	for i, img := range images {
		submissionImages[i] = entity.ListingImage{
			ID:           uuid.New().String(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}

	now := time.Now()
	submission := &entity.GuestSubmission{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		Currency:      input.Currency,
		Type:          input.Type,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		Size:          input.Size,
		Features:      input.Features,
		Images:        submissionImages,
		City:          input.City,
		Area:          input.Area,
		GuestName:     input.GuestName,
		GuestPhone:    input.GuestPhone,
		GuestWhatsapp: input.GuestWhatsapp,
		Status:        entity.ReviewStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

func (uc *SubmissionUseCase) GetSubmission(ctx context.Context, adminID, id string) (*entity.GuestSubmission, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	return uc.submissionRepo.GetByID(ctx, id)
}

func (uc *SubmissionUseCase) ListSubmissions(ctx context.Context, adminID string, status entity.ReviewStatus, page, limit int) ([]*entity.GuestSubmission, int64, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.submissionRepo.List(ctx, status, limit, offset)
}

// ApproveSubmission materializes the submission into an approved
// listing. The listing carries the guest's contact numbers and no
// owner account.
func (uc *SubmissionUseCase) ApproveSubmission(ctx context.Context, adminID, id string) (*entity.GuestSubmission, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	submission, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := submission.Status.Transition(entity.ActionApprove); err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		Title:          submission.Title,
		Description:    submission.Description,
		Price:          submission.Price,
		Currency:       submission.Currency,
		Type:           submission.Type,
		Bedrooms:       submission.Bedrooms,
		Bathrooms:      submission.Bathrooms,
		Size:           submission.Size,
		Features:       submission.Features,
		Images:         submission.Images,
		City:           submission.City,
		Area:           submission.Area,
		PhoneNumber:    submission.GuestPhone,
		WhatsappNumber: submission.GuestWhatsapp,
		Source:         entity.SourceGuest,
		Status:         entity.ListingStatusApproved,
	}

	if err := uc.submissionRepo.ApproveWithListing(ctx, submission, listing); err != nil {
		return nil, err
	}

	return submission, nil
}

func (uc *SubmissionUseCase) RejectSubmission(ctx context.Context, adminID, id, reason string) (*entity.GuestSubmission, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	if reason == "" {
		return nil, errors.BadRequest("Rejection reason is required", nil)
	}

	submission, err := uc.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := submission.Status.Transition(entity.ActionReject)
	if err != nil {
		return nil, err
	}

	submission.Status = next
	submission.RejectionReason = reason

	if err := uc.submissionRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

func (uc *SubmissionUseCase) DeleteSubmission(ctx context.Context, adminID, id string) error {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return err
	}

	if _, err := uc.submissionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.submissionRepo.Delete(ctx, id)
}
