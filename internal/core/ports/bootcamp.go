package ports

import (
	"context"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// BootcampRepository defines persistence operations for bootcamps.
type BootcampRepository interface {
	Create(ctx context.Context, b *domain.Bootcamp) (*domain.Bootcamp, error)
	FindByID(ctx context.Context, id string) (*domain.Bootcamp, error)
	// FindByOwner returns the bootcamp published by the given user, or
	// a not-found error when the user has none.
	FindByOwner(ctx context.Context, userID string) (*domain.Bootcamp, error)
	List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error)
	Update(ctx context.Context, id string, set map[string]any) (*domain.Bootcamp, error)
	Delete(ctx context.Context, id string) error
	// FindWithinRadius returns bootcamps whose location lies inside the
	// sphere centred on (lng, lat) with the given radius in radians.
	FindWithinRadius(ctx context.Context, lng, lat, radius float64) ([]*domain.Bootcamp, error)
}

// Geocoder resolves a zipcode to a location. External collaborator.
type Geocoder interface {
	Geocode(ctx context.Context, zipcode string) (domain.Location, error)
}

// BootcampService implements the bootcamp resource operations, including the
// one-bootcamp-per-publisher rule and ownership checks on mutation.
type BootcampService interface {
	List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error)
	Get(ctx context.Context, id string) (*domain.Bootcamp, error)
	Create(ctx context.Context, actor *domain.User, b *domain.Bootcamp) (*domain.Bootcamp, error)
	Update(ctx context.Context, actor *domain.User, id string, set map[string]any) (*domain.Bootcamp, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	// WithinRadius geocodes the zipcode and searches within distance miles.
	WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]*domain.Bootcamp, error)
	// UpdatePhoto checks ownership, invokes save to persist the file, then
	// records the filename on the bootcamp.
	UpdatePhoto(ctx context.Context, actor *domain.User, id, filename string, save func() error) (*domain.Bootcamp, error)
}
