package ports

import (
	"context"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Review, error)
	List(ctx context.Context, q query.Query) ([]*domain.Review, int64, error)
	Update(ctx context.Context, id string, set map[string]any) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByBootcamp(ctx context.Context, bootcampID string) error
	// AverageRating aggregates the mean rating across the bootcamp's
	// reviews; zero when it has none.
	AverageRating(ctx context.Context, bootcampID string) (float64, error)
}

// ReviewService implements the review resource operations with ownership
// checks on mutation.
type ReviewService interface {
	List(ctx context.Context, q query.Query) ([]*domain.Review, int64, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Review, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, actor *domain.User, bootcampID string, r *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, actor *domain.User, id string, set map[string]any) (*domain.Review, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
