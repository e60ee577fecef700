package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devtrail/bootcamp-api/internal/api/metrics"
	"github.com/devtrail/bootcamp-api/internal/api/middleware"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
)

// AuthHandler exposes registration, login, and account self-service. Tokens
// are delivered both as an HTTP-only cookie and in the JSON body.
type AuthHandler struct {
	service      ports.AuthService
	cookieExpire time.Duration
	secureCookie bool
}

func NewAuthHandler(service ports.AuthService, cookieExpireDays int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieExpire: time.Duration(cookieExpireDays) * 24 * time.Hour,
		secureCookie: secureCookie,
	}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user publisher"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a new account and issues a token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  tokenResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, token, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("user").Inc()
	return h.sendTokenResponse(c, http.StatusOK, token)
}

// Login authenticates a user and issues a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return h.sendTokenResponse(c, http.StatusOK, token)
}

// Logout clears the token cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "none",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})
	return okData(c, http.StatusOK, map[string]any{})
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	current, err := h.service.Me(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, current)
}

// UpdateDetails changes the authenticated user's name and/or email.
func (h *AuthHandler) UpdateDetails(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req updateDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateDetails(c.Request().Context(), user.ID, req.Name, req.Email)
	if err != nil {
		return err
	}
	return okData(c, http.StatusOK, updated)
}

// UpdatePassword verifies the current password, stores the new one, and
// issues a fresh token.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.UpdatePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	return h.sendTokenResponse(c, http.StatusOK, token)
}

// ForgotPassword issues a password-reset token for the account. Delivery is
// handled by the mail collaborator; the API only confirms issuance.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return okData(c, http.StatusOK, "Email sent")
}

// ResetPassword consumes a reset token and sets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, token, err := h.service.ResetPassword(c.Request().Context(), c.Param("resettoken"), req.Password)
	if err != nil {
		return err
	}
	return h.sendTokenResponse(c, http.StatusOK, token)
}

// sendTokenResponse sets the HTTP-only token cookie (Secure in production)
// and writes the token envelope.
func (h *AuthHandler) sendTokenResponse(c echo.Context, code int, token string) error {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieExpire),
		HttpOnly: true,
		Secure:   h.secureCookie,
	})
	return c.JSON(code, tokenResponse{Success: true, Token: token})
}
