// Package telemetry provides OpenTelemetry tracing and Prometheus metrics for mazeband.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "mazeband"
	serviceVersion = "0.1.0"
)

// Setup installs an OTLP HTTP tracer provider. The exporter reads the
// standard OTEL_EXPORTER_OTLP_* variables; attrs are added to the resource
// so every span carries the run's maze configuration.
//
// The returned function flushes and stops the provider.
func Setup(ctx context.Context, attrs ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, attrs...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// MazeAttributes describes one run for the trace resource.
func MazeAttributes(rows, cols int, seed int64, mode string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
		attribute.Int("maze.cells", rows*cols),
		attribute.Int64("maze.seed", seed),
		attribute.String("maze.mode", mode),
	}
}

// newResource builds the service resource. Not merged with resource.Default()
// to avoid schema URL conflicts.
func newResource(ctx context.Context, extra ...attribute.KeyValue) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", getHostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.Int("process.pid", os.Getpid()),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return resource.New(ctx, resource.WithAttributes(append(attrs, extra...)...))
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("mazeband/" + name)
}

// Disable installs a no-op tracer provider for runs without an exporter.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
