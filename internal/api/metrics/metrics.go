// Package metrics defines and registers the custom Prometheus metrics for the
// bootcamp directory API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto;
// HTTP-level metrics come from the echoprometheus middleware in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bootcamp_api"

// ResourcesCreatedTotal counts successful resource creations.
// Label:
//   - resource: "bootcamp", "course", "review", or "user"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by resource type.",
	},
	[]string{"resource"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// StatsProcessedTotal counts aggregate recomputes that completed.
// Label:
//   - kind: "tuition" or "rating"
var StatsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_processed_total",
		Help:      "Total number of bootcamp aggregate recomputes completed.",
	},
	[]string{"kind"},
)

// StatsErrorsTotal counts aggregate recomputes that failed.
// Label:
//   - kind: "tuition" or "rating"
var StatsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_errors_total",
		Help:      "Total number of bootcamp aggregate recomputes that failed.",
	},
	[]string{"kind"},
)

// StatsQueueDepth tracks the number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var StatsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stats_queue_depth",
		Help:      "Current number of recompute jobs pending per worker channel.",
	},
	[]string{"worker_id"},
)
