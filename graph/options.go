package graph

import (
	"context"
	"time"
)

// Option configures a single Run/RunMany call.
//
// Example:
//
//	graph.Run(ctx, root, nil, rc,
//	    graph.WithMetrics(m),
//	    graph.WithHistoryStore(store),
//	)
type Option func(*runConfig) error

// runConfig collects the Options applied to one execution.
type runConfig struct {
	metrics Metrics
	history HistoryStore
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{}
	for _, opt := range opts {
		// Options never fail validation today, but the error return
		// keeps the door open without an incompatible signature change.
		_ = opt(cfg)
	}
	return cfg
}

// Metrics receives counters and observations from a resolver as it
// walks an execution. Implementations must be safe for concurrent use.
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
	ObserveProvider(d time.Duration, success bool)
}

// WithMetrics attaches a Metrics sink to the execution.
func WithMetrics(m Metrics) Option {
	return func(cfg *runConfig) error {
		cfg.metrics = m
		return nil
	}
}

// HistoryStore persists a completed execution's Timing sequence for
// later inspection. Implementations live in the history subpackage.
type HistoryStore interface {
	SaveExecution(ctx context.Context, executionID string, timings []Timing) error
}

// WithHistoryStore attaches a HistoryStore that records the completed
// execution's Timing sequence after every root has settled, just before
// RunMany returns.
func WithHistoryStore(s HistoryStore) Option {
	return func(cfg *runConfig) error {
		cfg.history = s
		return nil
	}
}
