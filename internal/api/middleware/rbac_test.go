package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

func runAuthorized(user *domain.User, roles ...string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if user != nil {
		c.Set("user", user)
	}

	handler := Authorize(roles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAuthorize(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		user := &domain.User{ID: "u1", Role: domain.RolePublisher}
		if err := runAuthorized(user, domain.RolePublisher, domain.RoleAdmin); err != nil {
			t.Fatalf("expected pass, got %v", err)
		}
	})

	t.Run("disallowed role denied", func(t *testing.T) {
		user := &domain.User{ID: "u1", Role: domain.RoleUser}
		err := runAuthorized(user, domain.RolePublisher, domain.RoleAdmin)

		var de *domain.Error
		if !errors.As(err, &de) || de.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
		if de.Message != "User role 'user' is not authorized to access this route" {
			t.Fatalf("unexpected message: %q", de.Message)
		}
	})

	t.Run("missing user denied", func(t *testing.T) {
		if err := runAuthorized(nil, domain.RoleAdmin); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}
