package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// earthRadiusMiles converts a distance in miles to radians for $centerSphere.
const earthRadiusMiles = 3963

// BootcampService implements bootcamp CRUD with ownership checks, the
// one-bootcamp-per-publisher rule, and cascade deletion of child resources.
type BootcampService struct {
	repo     ports.BootcampRepository
	courses  ports.CourseRepository
	reviews  ports.ReviewRepository
	geocoder ports.Geocoder
	log      zerolog.Logger
}

func NewBootcampService(
	repo ports.BootcampRepository,
	courses ports.CourseRepository,
	reviews ports.ReviewRepository,
	geocoder ports.Geocoder,
	log zerolog.Logger,
) *BootcampService {
	return &BootcampService{repo: repo, courses: courses, reviews: reviews, geocoder: geocoder, log: log}
}

func (s *BootcampService) List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *BootcampService) Get(ctx context.Context, id string) (*domain.Bootcamp, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BootcampService) Create(ctx context.Context, actor *domain.User, b *domain.Bootcamp) (*domain.Bootcamp, error) {
	if actor.Role != domain.RoleAdmin {
		switch _, err := s.repo.FindByOwner(ctx, actor.ID); {
		case err == nil:
			return nil, domain.NewError(http.StatusBadRequest,
				fmt.Sprintf("The user with ID %s has already published a bootcamp", actor.ID))
		case !isNotFound(err):
			// Only a confirmed "no bootcamp" waives the limit; infrastructure
			// failures must not.
			return nil, err
		}
	}

	b.UserID = actor.ID
	b.Slug = slugify(b.Name)
	b.CreatedAt = time.Now().UTC()
	s.resolveLocation(ctx, b)

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("bootcamp_id", created.ID).Str("user_id", actor.ID).Msg("bootcamp created")
	return created, nil
}

func (s *BootcampService) Update(ctx context.Context, actor *domain.User, id string, set map[string]any) (*domain.Bootcamp, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(existing.UserID) {
		return nil, domain.NewNotOwner(actor.ID, "update", "bootcamp")
	}

	if name, ok := set["name"].(string); ok {
		set["slug"] = slugify(name)
	}
	return s.repo.Update(ctx, id, set)
}

func (s *BootcampService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanMutate(existing.UserID) {
		return domain.NewNotOwner(actor.ID, "delete", "bootcamp")
	}

	// Cascade: courses and reviews do not outlive their bootcamp.
	if err := s.courses.DeleteByBootcamp(ctx, id); err != nil {
		return err
	}
	if err := s.reviews.DeleteByBootcamp(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("bootcamp_id", id).Str("user_id", actor.ID).Msg("bootcamp deleted")
	return nil
}

func (s *BootcampService) WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]*domain.Bootcamp, error) {
	loc, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, domain.NewError(http.StatusBadRequest, fmt.Sprintf("Unable to geocode zipcode %s", zipcode))
	}

	lng, lat := loc.Coordinates[0], loc.Coordinates[1]
	radius := distanceMiles / earthRadiusMiles
	return s.repo.FindWithinRadius(ctx, lng, lat, radius)
}

func (s *BootcampService) UpdatePhoto(ctx context.Context, actor *domain.User, id, filename string, save func() error) (*domain.Bootcamp, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(existing.UserID) {
		return nil, domain.NewNotOwner(actor.ID, "update", "bootcamp")
	}

	if err := save(); err != nil {
		s.log.Error().Err(err).Str("bootcamp_id", id).Msg("photo upload failed")
		return nil, domain.NewError(http.StatusInternalServerError, "Problem with file upload")
	}

	return s.repo.Update(ctx, id, map[string]any{"photo": filename})
}

// resolveLocation geocodes the free-form address into a GeoJSON point. The
// geocoder is an external collaborator; on failure the address is kept raw
// and Location stays nil, so the stored document carries no location field.
func (s *BootcampService) resolveLocation(ctx context.Context, b *domain.Bootcamp) {
	if b.Address == "" {
		return
	}
	loc, err := s.geocoder.Geocode(ctx, b.Address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", b.Address).Msg("geocoding failed, keeping raw address")
		return
	}
	b.Location = &loc
	b.Address = ""
}
