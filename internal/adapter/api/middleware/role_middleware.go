package middleware

import (
	"net/http"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly refuses everyone whose user record is not role admin. The
// target of the request is never touched on refusal.
func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}

// Require builds a gate allowing only the given roles.
func (m *RoleMiddleware) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify privileges")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
		}
	}
}
