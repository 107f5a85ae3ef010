// Package telemetry provides hierarchical timing collection for operations.
// Collectors travel through context so instrumentation stays non-intrusive:
// when no collector is attached every timer is a no-op.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "store.load")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// Collector gathers timing data for a command run.
type Collector interface {
	// Start begins timing an operation; end it with Timer.End.
	Start(name string) Timer

	// Report writes the collected timings to w.
	Report(w io.Writer)
}

// Timer tracks a single operation. Timers nest via Child.
type Timer interface {
	End()
	Child(name string) Timer
}

type contextKey int

const (
	collectorKey contextKey = iota
	rootTimerKey
)

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the context's collector, or a no-op collector when
// none is attached.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noOpCollector{}
}

// WithRootTimer attaches a timer that StartTimer nests new timers under.
func WithRootTimer(ctx context.Context, t Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, t)
}

// StartTimer starts a timer under the context's root timer when present,
// otherwise directly on the context's collector.
func StartTimer(ctx context.Context, name string) Timer {
	if root, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return root.Child(name)
	}
	return FromContext(ctx).Start(name)
}

// noOpCollector provides zero overhead when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer)   {}

type noOpTimer struct{}

func (noOpTimer) End()               {}
func (noOpTimer) Child(string) Timer { return noOpTimer{} }
