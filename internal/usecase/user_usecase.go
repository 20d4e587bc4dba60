package usecase

import (
	"context"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
	"ethiohomes/pkg/logger"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	auth        AuthClient
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	auth AuthClient,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		auth:        auth,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if user.IsMainAdmin() {
			return nil, errors.Forbidden("The main admin account cannot be renamed", nil)
		}
		existing, err := uc.userRepo.GetByUsername(ctx, input.Username)
		if err == nil && existing != nil {
			return nil, errors.BadRequest("Username already taken", nil)
		}
		user.Username = input.Username
	}

	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.BadRequest("Password must be at least 8 characters", nil)
	}

	return uc.auth.UpdateUserPassword(ctx, userID, newPassword)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, adminID, role string, page, limit int) ([]*entity.User, int64, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.userRepo.List(ctx, role, limit, offset)
}

func isValidRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleBroker, entity.RoleAdvertiser, entity.RoleUser:
		return true
	}
	return false
}

func (uc *UserUseCase) ChangeRole(ctx context.Context, adminID, userID, role string) (*entity.User, error) {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return nil, err
	}

	if !isValidRole(role) {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.IsMainAdmin() {
		return nil, errors.Forbidden("The main admin account cannot be modified", nil)
	}

	user.Role = role
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Admin %s changed role of user %s to %s", adminID, userID, role)
	return user, nil
}

// DeleteUser removes the account, its listings and the auth provider
// account.
func (uc *UserUseCase) DeleteUser(ctx context.Context, adminID, userID string) error {
	if _, err := requireAdmin(ctx, uc.userRepo, adminID); err != nil {
		return err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsMainAdmin() {
		return errors.Forbidden("The main admin account cannot be deleted", nil)
	}

	deleted, err := uc.listingRepo.DeleteWhere(ctx, map[string]interface{}{"ownerId": userID})
	if err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if err := uc.auth.DeleteUser(ctx, userID); err != nil {
		logger.Warn("Failed to delete auth account for user %s: %v", userID, err)
	}

	logger.Info("Admin %s deleted user %s and %d listings", adminID, userID, deleted)
	return nil
}
