package usecase

import (
	"context"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
)

type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
	SignInWithEmailPassword(email, password string) (string, error)
	RefreshIdToken(refreshToken string) (string, error)
	TestConnection(ctx context.Context) error
}

// requireAdmin is the server-side half of the access gate: every
// review-workflow method re-checks the caller's role even though the
// admin routes are already gated by middleware.
func requireAdmin(ctx context.Context, userRepo repository.UserRepository, callerID string) (*entity.User, error) {
	caller, err := userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, errors.Forbidden("Admin privileges required", err)
	}
	if caller.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}
	return caller, nil
}
