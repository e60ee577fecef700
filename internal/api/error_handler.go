package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

// errorResponse is the canonical envelope for all API errors. Message is a
// string for single faults and a list for aggregated validation failures.
type errorResponse struct {
	Success bool `json:"success"`
	Message any  `json:"message"`
}

// NewHTTPErrorHandler returns the single point where any fault becomes a
// response. Handlers and middleware never format failures themselves:
//   - Known application errors map to their own status code and message.
//   - Validation failures map to 400 with the per-field message list.
//   - Everything else logs the real cause and answers 500 "Server Error".
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Application errors carry their status; validation carries a list.
	var de *domain.Error
	if errors.As(err, &de) {
		if len(de.Messages) > 0 {
			return de.Code, de.Messages
		}
		return de.Code, de.Message
	}

	// Raw validator errors from handlers that skipped the echo validator.
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fe.Error())
		}
		return http.StatusBadRequest, msgs
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server Error"
}
