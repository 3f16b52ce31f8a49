// Package telemetry defines the span contract generated adapters emit when
// instrumentation is enabled: one span per invocation named
// "<category>.<action>" with category and action attributes. Collectors plug
// in via SetTracer; the default tracer is a no-op.
package telemetry

import (
	"context"
	"sync"
)

// Attr is a single span attribute.
type Attr struct {
	Key   string
	Value string
}

// String builds a string attribute.
func String(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Span is one in-flight command invocation.
type Span interface {
	// RecordError marks the span as failed.
	RecordError(err error)
	// End closes the span.
	End()
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	StartSpan(ctx context.Context, name string, attrs ...Attr) (context.Context, Span)
}

var (
	tracerMu sync.RWMutex
	tracer   Tracer = nopTracer{}
)

// SetTracer installs the process-wide tracer. Call once from main before
// any command is routed.
func SetTracer(t Tracer) {
	tracerMu.Lock()
	defer tracerMu.Unlock()
	if t == nil {
		tracer = nopTracer{}
		return
	}
	tracer = t
}

// StartSpan opens a span on the installed tracer.
func StartSpan(ctx context.Context, name string, attrs ...Attr) (context.Context, Span) {
	tracerMu.RLock()
	t := tracer
	tracerMu.RUnlock()
	return t.StartSpan(ctx, name, attrs...)
}
