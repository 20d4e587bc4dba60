package repository

import (
	"context"

	"ethiohomes/internal/domain/entity"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.RoleApplication) error
	GetByID(ctx context.Context, id string) (*entity.RoleApplication, error)
	GetByUserID(ctx context.Context, userID string) (*entity.RoleApplication, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.RoleApplication, int64, error)
	Update(ctx context.Context, application *entity.RoleApplication) error
	Delete(ctx context.Context, id string) error
	DeleteByStatus(ctx context.Context, status entity.ReviewStatus) (int, error)

	// UpdateWithUser writes the reviewed application and its user's
	// role/status mirror in one transaction.
	UpdateWithUser(ctx context.Context, application *entity.RoleApplication, user *entity.User) error

	// DeleteCascade removes the application, its user account and the
	// given listings owned by that user, atomically.
	DeleteCascade(ctx context.Context, applicationID, userID string, listingIDs []string) error
}
