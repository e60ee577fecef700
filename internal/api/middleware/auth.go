package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

// userContextKey is where Protect stores the authenticated user.
const userContextKey = "user"

// UserFinder resolves a token's embedded identifier to the full user record.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Protect verifies the session token and injects the full user record into
// the request context. The token is read from the Authorization header first,
// falling back to the token cookie. Any failure answers 401 through the
// central error handler.
func Protect(jwtSecret string, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return domain.ErrNotAuthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrNotAuthorized
			}

			id, _ := claims["id"].(string)
			if id == "" {
				return domain.ErrNotAuthorized
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return domain.ErrNotAuthorized
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// CurrentUser returns the user injected by Protect.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrNotAuthorized
	}
	return user, nil
}
