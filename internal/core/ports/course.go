package ports

import (
	"context"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Course, error)
	List(ctx context.Context, q query.Query) ([]*domain.Course, int64, error)
	Update(ctx context.Context, id string, set map[string]any) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
	DeleteByBootcamp(ctx context.Context, bootcampID string) error
	// AverageTuition aggregates the mean tuition across the bootcamp's
	// courses; zero when it has none.
	AverageTuition(ctx context.Context, bootcampID string) (float64, error)
}

// CourseService implements the course resource operations.
type CourseService interface {
	List(ctx context.Context, q query.Query) ([]*domain.Course, int64, error)
	ListByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, actor *domain.User, bootcampID string, c *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, id string, set map[string]any) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
