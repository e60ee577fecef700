package service

import (
	"context"
	"time"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// In-memory stand-ins for the repository ports. Each method may be overridden
// per test; unset methods fall back to a harmless default.

type stubUserRepo struct {
	createFn      func(ctx context.Context, u *domain.User) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn      func(ctx context.Context, id string, set map[string]any) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, u)
	}
	u.ID = "u1"
	return u, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFound(id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(ctx, email)
	}
	return nil, domain.NewError(404, "User not found")
}

func (s *stubUserRepo) List(ctx context.Context, q query.Query) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) Update(ctx context.Context, id string, set map[string]any) (*domain.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, set)
	}
	return &domain.User{ID: id}, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

type stubBootcampRepo struct {
	findByIDFn    func(ctx context.Context, id string) (*domain.Bootcamp, error)
	findByOwnerFn func(ctx context.Context, userID string) (*domain.Bootcamp, error)
	createFn      func(ctx context.Context, b *domain.Bootcamp) (*domain.Bootcamp, error)
	updateFn      func(ctx context.Context, id string, set map[string]any) (*domain.Bootcamp, error)
	deleteFn      func(ctx context.Context, id string) error
	withinFn      func(ctx context.Context, lng, lat, radius float64) ([]*domain.Bootcamp, error)
}

func (s *stubBootcampRepo) Create(ctx context.Context, b *domain.Bootcamp) (*domain.Bootcamp, error) {
	if s.createFn != nil {
		return s.createFn(ctx, b)
	}
	b.ID = "b1"
	return b, nil
}

func (s *stubBootcampRepo) FindByID(ctx context.Context, id string) (*domain.Bootcamp, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFound(id)
}

func (s *stubBootcampRepo) FindByOwner(ctx context.Context, userID string) (*domain.Bootcamp, error) {
	if s.findByOwnerFn != nil {
		return s.findByOwnerFn(ctx, userID)
	}
	return nil, domain.NewError(404, "Bootcamp not found")
}

func (s *stubBootcampRepo) List(ctx context.Context, q query.Query) ([]*domain.Bootcamp, int64, error) {
	return nil, 0, nil
}

func (s *stubBootcampRepo) Update(ctx context.Context, id string, set map[string]any) (*domain.Bootcamp, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, set)
	}
	return &domain.Bootcamp{ID: id}, nil
}

func (s *stubBootcampRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubBootcampRepo) FindWithinRadius(ctx context.Context, lng, lat, radius float64) ([]*domain.Bootcamp, error) {
	if s.withinFn != nil {
		return s.withinFn(ctx, lng, lat, radius)
	}
	return nil, nil
}

type stubCourseRepo struct {
	findByIDFn         func(ctx context.Context, id string) (*domain.Course, error)
	createFn           func(ctx context.Context, c *domain.Course) (*domain.Course, error)
	deleteByBootcampFn func(ctx context.Context, bootcampID string) error
	averageTuitionFn   func(ctx context.Context, bootcampID string) (float64, error)
}

func (s *stubCourseRepo) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	c.ID = "c1"
	return c, nil
}

func (s *stubCourseRepo) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFound(id)
}

func (s *stubCourseRepo) FindByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Course, error) {
	return nil, nil
}

func (s *stubCourseRepo) List(ctx context.Context, q query.Query) ([]*domain.Course, int64, error) {
	return nil, 0, nil
}

func (s *stubCourseRepo) Update(ctx context.Context, id string, set map[string]any) (*domain.Course, error) {
	return &domain.Course{ID: id}, nil
}

func (s *stubCourseRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubCourseRepo) DeleteByBootcamp(ctx context.Context, bootcampID string) error {
	if s.deleteByBootcampFn != nil {
		return s.deleteByBootcampFn(ctx, bootcampID)
	}
	return nil
}

func (s *stubCourseRepo) AverageTuition(ctx context.Context, bootcampID string) (float64, error) {
	if s.averageTuitionFn != nil {
		return s.averageTuitionFn(ctx, bootcampID)
	}
	return 0, nil
}

type stubReviewRepo struct {
	findByIDFn         func(ctx context.Context, id string) (*domain.Review, error)
	createFn           func(ctx context.Context, r *domain.Review) (*domain.Review, error)
	updateFn           func(ctx context.Context, id string, set map[string]any) (*domain.Review, error)
	deleteFn           func(ctx context.Context, id string) error
	deleteByBootcampFn func(ctx context.Context, bootcampID string) error
	averageRatingFn    func(ctx context.Context, bootcampID string) (float64, error)
}

func (s *stubReviewRepo) Create(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	if s.createFn != nil {
		return s.createFn(ctx, r)
	}
	r.ID = "r1"
	return r, nil
}

func (s *stubReviewRepo) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFound(id)
}

func (s *stubReviewRepo) FindByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Review, error) {
	return nil, nil
}

func (s *stubReviewRepo) List(ctx context.Context, q query.Query) ([]*domain.Review, int64, error) {
	return nil, 0, nil
}

func (s *stubReviewRepo) Update(ctx context.Context, id string, set map[string]any) (*domain.Review, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, set)
	}
	return &domain.Review{ID: id}, nil
}

func (s *stubReviewRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubReviewRepo) DeleteByBootcamp(ctx context.Context, bootcampID string) error {
	if s.deleteByBootcampFn != nil {
		return s.deleteByBootcampFn(ctx, bootcampID)
	}
	return nil
}

func (s *stubReviewRepo) AverageRating(ctx context.Context, bootcampID string) (float64, error) {
	if s.averageRatingFn != nil {
		return s.averageRatingFn(ctx, bootcampID)
	}
	return 0, nil
}

// stubStats records every enqueued job.
type stubStats struct {
	jobs []ports.StatsJob
}

func (s *stubStats) Enqueue(job ports.StatsJob) {
	s.jobs = append(s.jobs, job)
}

type stubGeocoder struct {
	geocodeFn func(ctx context.Context, zipcode string) (domain.Location, error)
}

func (s *stubGeocoder) Geocode(ctx context.Context, zipcode string) (domain.Location, error) {
	if s.geocodeFn != nil {
		return s.geocodeFn(ctx, zipcode)
	}
	return domain.Location{Type: "Point", Coordinates: []float64{-71.0589, 42.3601}}, nil
}

// stubResetStore keeps digests in a map, honouring single use.
type stubResetStore struct {
	saved map[string]string
}

func (s *stubResetStore) Save(ctx context.Context, digest, userID string, ttl time.Duration) error {
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	s.saved[digest] = userID
	return nil
}

func (s *stubResetStore) Consume(ctx context.Context, digest string) (string, error) {
	userID, ok := s.saved[digest]
	if !ok {
		return "", domain.ErrInvalidResetToken
	}
	delete(s.saved, digest)
	return userID, nil
}
