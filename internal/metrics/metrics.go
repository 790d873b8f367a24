package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tictactoe"

// Results of a decision request.
const (
	ResultMove        = "move"
	ResultMalformed   = "malformed"
	ResultUnreachable = "unreachable"
	ResultFinished    = "finished"
	ResultNoMove      = "no_move"
)

var (
	// Decisions counts decision requests.
	// Labels: result (move, malformed, unreachable, finished, no_move)
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decide",
		Name:      "requests_total",
		Help:      "Total decision requests by result",
	}, []string{"result"})

	// SearchNodes measures how many positions a search visited.
	SearchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "nodes",
		Help:      "Positions visited per search",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	})

	// CacheLookups counts decision cache lookups.
	// Labels: status (hit, miss, stale, error)
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Decision cache lookups by status",
	}, []string{"status"})
)
