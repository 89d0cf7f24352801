package core

import (
	"context"
	"expvar"
	"sync"
	"time"
)

const expvarName = "herdcore_metrics"

// OperationStats aggregates dispatch outcomes for one operation.
type OperationStats struct {
	Success int64   `json:"success"`
	Errors  int64   `json:"errors"`
	TotalMS float64 `json:"total_ms"`
}

// ExpvarMetricsRecorder keeps per-operation counters and exposes them under
// /debug/vars. Zero-dependency counterpart of the Prometheus recorder.
type ExpvarMetricsRecorder struct {
	mu  sync.Mutex
	ops map[string]OperationStats
}

// NewExpvarMetricsRecorder constructs the recorder. expvar panics on
// duplicate names, so only the first recorder in a process claims the export
// slot; later ones still aggregate and remain readable via Snapshot.
func NewExpvarMetricsRecorder() *ExpvarMetricsRecorder {
	rec := &ExpvarMetricsRecorder{ops: make(map[string]OperationStats)}
	if expvar.Get(expvarName) == nil {
		expvar.Publish(expvarName, expvar.Func(func() any {
			return rec.Snapshot()
		}))
	}
	return rec
}

// Snapshot returns a copy of the per-operation aggregates.
func (r *ExpvarMetricsRecorder) Snapshot() map[string]OperationStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]OperationStats, len(r.ops))
	for op, stats := range r.ops {
		out[op] = stats
	}
	return out
}

// Observe implements MetricsRecorder.
func (r *ExpvarMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.mu.Lock()
	stats := r.ops[operation]
	if success {
		stats.Success++
	} else {
		stats.Errors++
	}
	stats.TotalMS += float64(duration) / float64(time.Millisecond)
	r.ops[operation] = stats
	r.mu.Unlock()
}
