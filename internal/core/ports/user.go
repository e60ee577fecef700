package ports

import (
	"context"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching q and the pre-pagination total.
	List(ctx context.Context, q query.Query) ([]*domain.User, int64, error)
	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id string, set map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the admin-facing user creation fields.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the admin-facing partial update fields; nil means
// leave unchanged. A non-nil Password is re-hashed before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UserService is the admin-only user CRUD.
type UserService interface {
	List(ctx context.Context, q query.Query) ([]*domain.User, int64, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
