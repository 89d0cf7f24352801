package core

import (
	"context"
	"time"
)

// Logger is the minimal structured logging surface the service needs.
// *zap.SugaredLogger satisfies it directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// MetricsRecorder observes service operation outcomes.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Tracer starts spans around service operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan finalizes a single traced operation.
type TraceSpan interface {
	End(err error)
}

// AuditSink receives the change records of every effective dispatch.
type AuditSink interface {
	Record(ctx context.Context, entries []AuditEntry)
}

// AuditEntry pairs a change with the dispatch that produced it.
type AuditEntry struct {
	At        time.Time `json:"at"`
	Operation string    `json:"operation"`
	Change    Change    `json:"change"`
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

type nopMetrics struct{}

func (nopMetrics) Observe(context.Context, string, bool, time.Duration) {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, TraceSpan) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End(error) {}
