package ports

import "context"

// StatsKind selects which aggregate a job recomputes.
type StatsKind string

const (
	StatsTuition StatsKind = "tuition"
	StatsRating  StatsKind = "rating"
)

// StatsJob asks for one bootcamp aggregate to be recomputed.
type StatsJob struct {
	BootcampID string
	Kind       StatsKind
}

// StatsEnqueuer hands a recompute job to the background worker pool. Jobs for
// the same bootcamp are processed in order.
type StatsEnqueuer interface {
	Enqueue(job StatsJob)
}

// StatsService recomputes a bootcamp aggregate from its source collection.
type StatsService interface {
	Recompute(ctx context.Context, job StatsJob) error
}
