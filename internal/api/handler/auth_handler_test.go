package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, in)
	}
	return &domain.User{ID: "u1"}, "signed-token", nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return nil, "", domain.ErrInvalidCredentials
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID}, nil
}

func (s *stubAuthService) UpdateDetails(ctx context.Context, userID, name, email string) (*domain.User, error) {
	return &domain.User{ID: userID, Name: name, Email: email}, nil
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, userID, current, next string) (string, error) {
	return "signed-token", nil
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return "reset-token", nil
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, password string) (*domain.User, string, error) {
	return &domain.User{ID: "u1"}, "signed-token", nil
}

func newAuthContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_SetsCookieAndEnvelope(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			if email != "john@example.com" || password != "123456" {
				return nil, "", domain.ErrInvalidCredentials
			}
			return &domain.User{ID: "u1"}, "signed-token", nil
		},
	}
	h := NewAuthHandler(svc, 30, false)

	c, rec := newAuthContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"123456"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || body.Token != "signed-token" {
		t.Fatalf("unexpected envelope: %+v", body)
	}

	cookies := rec.Result().Cookies()
	var tokenCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "token" {
			tokenCookie = ck
		}
	}
	if tokenCookie == nil {
		t.Fatal("token cookie not set")
	}
	if tokenCookie.Value != "signed-token" || !tokenCookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", tokenCookie)
	}
}

func TestLogin_FailurePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 30, false)

	c, _ := newAuthContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"wrong"}`)
	err := h.Login(c)

	var de *domain.Error
	if !errors.As(err, &de) || de.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 application error, got %v", err)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 30, false)

	c, _ := newAuthContext(http.MethodPost, "/api/v1/auth/register",
		`{"name":"","email":"not-an-email","password":"123"}`)
	err := h.Register(c)

	var de *domain.Error
	if !errors.As(err, &de) || de.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(de.Messages) != 3 {
		t.Fatalf("expected three field messages, got %v", de.Messages)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 30, false)

	c, rec := newAuthContext(http.MethodGet, "/api/v1/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "token" || cookies[0].Value != "none" {
		t.Fatalf("cookie not cleared: %+v", cookies)
	}
}
