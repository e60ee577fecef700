package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/core/ports"
)

// StatsService recomputes per-bootcamp aggregates from their source
// collections. It runs on the background worker pool, never inline with a
// request.
type StatsService struct {
	bootcamps ports.BootcampRepository
	courses   ports.CourseRepository
	reviews   ports.ReviewRepository
	log       zerolog.Logger
}

func NewStatsService(bootcamps ports.BootcampRepository, courses ports.CourseRepository, reviews ports.ReviewRepository, log zerolog.Logger) *StatsService {
	return &StatsService{bootcamps: bootcamps, courses: courses, reviews: reviews, log: log}
}

func (s *StatsService) Recompute(ctx context.Context, job ports.StatsJob) error {
	switch job.Kind {
	case ports.StatsTuition:
		avg, err := s.courses.AverageTuition(ctx, job.BootcampID)
		if err != nil {
			return fmt.Errorf("average tuition: %w", err)
		}
		// Rounded up to the nearest ten, matching the published figures.
		cost := math.Ceil(avg/10) * 10
		if _, err := s.bootcamps.Update(ctx, job.BootcampID, map[string]any{"averageCost": cost}); err != nil {
			return fmt.Errorf("store average cost: %w", err)
		}
	case ports.StatsRating:
		avg, err := s.reviews.AverageRating(ctx, job.BootcampID)
		if err != nil {
			return fmt.Errorf("average rating: %w", err)
		}
		if _, err := s.bootcamps.Update(ctx, job.BootcampID, map[string]any{"averageRating": avg}); err != nil {
			return fmt.Errorf("store average rating: %w", err)
		}
	default:
		return fmt.Errorf("unknown stats kind %q", job.Kind)
	}

	s.log.Debug().Str("bootcamp_id", job.BootcampID).Str("kind", string(job.Kind)).Msg("aggregate recomputed")
	return nil
}
