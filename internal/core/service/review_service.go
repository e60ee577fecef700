package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/pkg/query"
)

// ReviewService implements review CRUD with ownership checks. Every write
// schedules a recompute of the parent bootcamp's average rating.
type ReviewService struct {
	repo      ports.ReviewRepository
	bootcamps ports.BootcampRepository
	stats     ports.StatsEnqueuer
	log       zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, bootcamps ports.BootcampRepository, stats ports.StatsEnqueuer, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, bootcamps: bootcamps, stats: stats, log: log}
}

func (s *ReviewService) List(ctx context.Context, q query.Query) ([]*domain.Review, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *ReviewService) ListByBootcamp(ctx context.Context, bootcampID string) ([]*domain.Review, error) {
	return s.repo.FindByBootcamp(ctx, bootcampID)
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) Create(ctx context.Context, actor *domain.User, bootcampID string, r *domain.Review) (*domain.Review, error) {
	if _, err := s.bootcamps.FindByID(ctx, bootcampID); err != nil {
		return nil, bootcampLookupError(err, bootcampID)
	}

	r.BootcampID = bootcampID
	r.UserID = actor.ID
	r.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: bootcampID, Kind: ports.StatsRating})
	return created, nil
}

func (s *ReviewService) Update(ctx context.Context, actor *domain.User, id string, set map[string]any) (*domain.Review, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutate(existing.UserID) {
		return nil, domain.NewError(http.StatusUnauthorized, "Not authorized to update review")
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: existing.BootcampID, Kind: ports.StatsRating})
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanMutate(existing.UserID) {
		return domain.NewError(http.StatusUnauthorized, "Not authorized to update review")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.stats.Enqueue(ports.StatsJob{BootcampID: existing.BootcampID, Kind: ports.StatsRating})
	return nil
}
