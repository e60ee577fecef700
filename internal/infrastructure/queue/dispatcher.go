package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/devtrail/bootcamp-api/internal/api/metrics"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes aggregate-recompute jobs to a fixed set of workers using
// consistent hashing on the bootcamp id, so recomputes for the same bootcamp
// never interleave.
type Dispatcher struct {
	workers []chan ports.StatsJob
	service ports.StatsService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.StatsService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StatsJob, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StatsJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its bootcamp.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.StatsJob) {
	i := d.shardIndex(job.BootcampID)
	d.workers[i] <- job
	metrics.StatsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a bootcamp id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bootcampID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bootcampID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StatsJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.StatsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Recompute(ctx, job); err != nil {
				metrics.StatsErrorsTotal.WithLabelValues(string(job.Kind)).Inc()
				d.log.Error().Err(err).
					Str("bootcamp_id", job.BootcampID).
					Str("kind", string(job.Kind)).
					Int("worker_id", id).
					Msg("stats recompute failed")
				continue
			}
			metrics.StatsProcessedTotal.WithLabelValues(string(job.Kind)).Inc()
		}
	}
}
