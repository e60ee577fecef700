package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

// Authorize enforces role-based access control. Runs strictly after Protect;
// a missing user means the route was miswired and answers 401. Denials are
// answered as 401 to match the historical contract.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.NewRoleDenied(user.Role)
			}
			return next(c)
		}
	}
}
