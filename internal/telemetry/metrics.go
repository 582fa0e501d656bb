package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// GenerationsTotal counts Generate calls by result.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mazeband",
		Name:      "generations_total",
		Help:      "Maze generations by result",
	}, []string{"result"})

	// CreationFailuresTotal counts placements the level refused, by role.
	CreationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mazeband",
		Name:      "entity_creation_failures_total",
		Help:      "Placement requests rejected by the level, by role",
	}, []string{"role"})

	// PathLength observes the number of cells on each solved path.
	PathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mazeband",
		Name:      "path_length_cells",
		Help:      "Cells on the solved start-to-goal path",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048 cells
	})

	// GenerationDuration observes wall time of a full generation.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mazeband",
		Name:      "generation_duration_seconds",
		Help:      "Wall time of one maze generation",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	})
)
