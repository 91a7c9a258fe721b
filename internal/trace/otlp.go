// Package trace records handled UI events as OpenTelemetry spans.
//
// Export is opt-in: with OTEL_EXPORTER_OTLP_ENDPOINT unset, NewOTLPTracer
// returns a tracer backed by a no-op provider and nothing leaves the process.
package trace

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "tabdemo/ui"

// Attribute keys attached to UI event spans.
const (
	KeyTab        = attribute.Key("tabdemo.tab")
	KeyKey        = attribute.Key("tabdemo.key")
	KeyTodoIndex  = attribute.Key("tabdemo.todo.index")
	KeyTodoCount  = attribute.Key("tabdemo.todo.count")
	KeyCounter    = attribute.Key("tabdemo.counter")
	KeyGeneration = attribute.Key("tabdemo.clock.generation")
)

// Tracer starts one span per handled UI event.
type Tracer struct {
	provider *sdktrace.TracerProvider // nil when disabled
	tracer   oteltrace.Tracer
}

// NewOTLPTracer creates an OTLP-exporting tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Otherwise it returns a disabled tracer whose spans are no-ops.
func NewOTLPTracer(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return newTracer(sdktrace.WithBatcher(exporter)), nil
}

// NewWithExporter creates a tracer that hands each finished span to exp
// synchronously.
func NewWithExporter(exp sdktrace.SpanExporter) *Tracer {
	return newTracer(sdktrace.WithSyncer(exp))
}

// Disabled returns a tracer that records nothing.
func Disabled() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

func newTracer(opt sdktrace.TracerProviderOption) *Tracer {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "tabdemo"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Enabled reports whether spans are exported anywhere.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// Event starts a span named name and returns the function that ends it.
// A nil Tracer is valid and records nothing.
func (t *Tracer) Event(ctx context.Context, name string, attrs ...attribute.KeyValue) func() {
	if t == nil || t.tracer == nil {
		return func() {}
	}
	_, span := t.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
	return func() { span.End() }
}

// Shutdown flushes pending spans and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
