package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// CourseService implements course CRUD. Every write schedules a recompute of
// the parent bootcamp's average tuition.
type CourseService struct {
	repo      ports.CourseRepository
	bootcamps ports.BootcampRepository
	stats     ports.StatsEnqueuer
	log       zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, bootcamps ports.BootcampRepository, stats ports.StatsEnqueuer, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, bootcamps: bootcamps, stats: stats, log: log}
}

func (s *CourseService) List(ctx context.Context, q query.Query) ([]*domain.Course, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *CourseService) ListByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Course, error) {
	return s.repo.FindByBootcamp(ctx, bootcampID)
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, actor *domain.User, bootcampID string, c *domain.Course) (*domain.Course, error) {
	if _, err := s.bootcamps.FindByID(ctx, bootcampID); err != nil {
		return nil, bootcampLookupError(err, bootcampID)
	}

	c.BootcampID = bootcampID
	c.UserID = actor.ID
	c.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: bootcampID, Kind: ports.StatsTuition})
	return created, nil
}

func (s *CourseService) Update(ctx context.Context, id string, set map[string]any) (*domain.Course, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: existing.BootcampID, Kind: ports.StatsTuition})
	return updated, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: existing.BootcampID, Kind: ports.StatsTuition})
	return nil
}

// bootcampLookupError rewrites a parent-bootcamp lookup failure into the
// message the nested routes have always answered with.
func bootcampLookupError(err error, bootcampID string) error {
	if isNotFound(err) {
		return domain.NewError(http.StatusNotFound, "No bootcamp found with the id of "+bootcampID)
	}
	return err
}

// isNotFound reports whether err is an application error carrying a 404.
func isNotFound(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && de.Code == http.StatusNotFound
}
