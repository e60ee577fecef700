package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubUserFinder struct {
	user *domain.User
}

func (s *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, domain.NewNotFound(id)
}

func signTestToken(t *testing.T, userID string, expires time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"id": userID, "exp": expires.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func runProtected(t *testing.T, req *http.Request, finder UserFinder) (*domain.User, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.User
	handler := Protect(testSecret, finder)(func(c echo.Context) error {
		u, err := CurrentUser(c)
		if err != nil {
			return err
		}
		seen = u
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return seen, err
}

func TestProtect_BearerHeader(t *testing.T) {
	finder := &stubUserFinder{user: &domain.User{ID: "u1", Role: domain.RolePublisher}}
	token := signTestToken(t, "u1", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	user, err := runProtected(t, req, finder)
	if err != nil {
		t.Fatalf("protect: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("user not injected: %+v", user)
	}
}

func TestProtect_CookieFallback(t *testing.T) {
	finder := &stubUserFinder{user: &domain.User{ID: "u1", Role: domain.RoleUser}}
	token := signTestToken(t, "u1", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	user, err := runProtected(t, req, finder)
	if err != nil {
		t.Fatalf("protect: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("user not injected: %+v", user)
	}
}

func TestProtect_Failures(t *testing.T) {
	finder := &stubUserFinder{user: &domain.User{ID: "u1"}}

	cases := []struct {
		name  string
		build func(t *testing.T) *http.Request
	}{
		{"no token", func(t *testing.T) *http.Request {
			return httptest.NewRequest(http.MethodGet, "/", nil)
		}},
		{"garbage token", func(t *testing.T) *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer not-a-jwt")
			return req
		}},
		{"expired token", func(t *testing.T) *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signTestToken(t, "u1", time.Now().Add(-time.Hour)))
			return req
		}},
		{"wrong secret", func(t *testing.T) *http.Request {
			claims := jwt.MapClaims{"id": "u1", "exp": time.Now().Add(time.Hour).Unix()}
			signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			return req
		}},
		{"unknown user", func(t *testing.T) *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ghost", time.Now().Add(time.Hour)))
			return req
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runProtected(t, tc.build(t), finder)
			if !errors.Is(err, domain.ErrNotAuthorized) {
				t.Fatalf("expected ErrNotAuthorized, got %v", err)
			}
		})
	}
}
