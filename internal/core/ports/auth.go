package ports

import (
	"context"
	"time"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
)

// RegisterInput carries the public registration fields. Role defaults to
// "user" and may only be "user" or "publisher"; admins are provisioned
// through the admin user CRUD.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService issues and refreshes stateless session tokens and manages the
// caller's own account.
type AuthService interface {
	// Register creates the user and returns it with a fresh token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a fresh token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Me resolves an already-authenticated identifier to the full record.
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateDetails(ctx context.Context, userID, name, email string) (*domain.User, error)
	// UpdatePassword verifies the current password, stores the new hash, and
	// returns a fresh token.
	UpdatePassword(ctx context.Context, userID, current, next string) (string, error)
	// ForgotPassword issues a one-time reset token for the account. The mail
	// transport is an external collaborator; the token is returned so the
	// caller can hand it off.
	ForgotPassword(ctx context.Context, email string) (string, error)
	// ResetPassword consumes a reset token, replaces the credential, and
	// returns the user with a fresh token.
	ResetPassword(ctx context.Context, token, password string) (*domain.User, string, error)
}

// ResetTokenStore persists password-reset token digests with a TTL.
type ResetTokenStore interface {
	Save(ctx context.Context, digest, userID string, ttl time.Duration) error
	// Consume returns the user id bound to the digest and invalidates it.
	// Unknown or expired digests return domain.ErrInvalidResetToken.
	Consume(ctx context.Context, digest string) (string, error)
}
