package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is the application error carried from the fault site up to the HTTP
// error handler, which is the only place it is turned into a response.
type Error struct {
	Code     int
	Message  string
	Messages []string // per-field validation messages, when non-empty they win over Message
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return e.Message
}

// NewError builds an Error with an explicit status code.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidationError aggregates one or more field-level failures into a 400.
func NewValidationError(messages ...string) *Error {
	return &Error{Code: http.StatusBadRequest, Messages: messages}
}

// NewNotFound reports a lookup by an identifier that matched nothing, or an
// identifier that could not be cast to an object id. The status and wording
// match the historical API contract.
func NewNotFound(id string) *Error {
	return &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("Resource not found with the id of %s", id)}
}

// NewDuplicate reports a unique-index violation on the named field. The
// historical contract answers 404 here, not 409.
func NewDuplicate(field, value string) *Error {
	return &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("Resource already exists with the %s of %s", field, value)}
}

// NewNotOwner reports an ownership check failure on a mutating operation.
// Answered as 401 to match the historical contract.
func NewNotOwner(userID, verb, resource string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: fmt.Sprintf("User %s is not authorized to %s this %s", userID, verb, resource)}
}

// NewRoleDenied reports a role not present in a route's allowed set.
func NewRoleDenied(role string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: fmt.Sprintf("User role '%s' is not authorized to access this route", role)}
}

var (
	ErrMissingCredentials = NewError(http.StatusUnauthorized, "Please provide an email and password")
	ErrInvalidCredentials = NewError(http.StatusUnauthorized, "Invalid credentials")
	ErrNotAuthorized      = NewError(http.StatusUnauthorized, "Not authorized to access this route")
	ErrInvalidResetToken  = NewError(http.StatusBadRequest, "Invalid token")
	ErrPasswordIncorrect  = NewError(http.StatusUnauthorized, "Password is incorrect")
)
