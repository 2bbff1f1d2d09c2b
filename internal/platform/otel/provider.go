// Package otel wires OpenTelemetry tracing for the courier service.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Version is reported as service.version unless WithServiceVersion overrides
// it. Release builds set it through -ldflags.
var Version = "dev"

type options struct {
	serviceVersion string
	exporter       sdktrace.SpanExporter
	sampler        sdktrace.Sampler
}

// Option customises Setup.
type Option func(*options)

func WithServiceVersion(version string) Option {
	return func(o *options) { o.serviceVersion = version }
}

// WithExporter replaces the OTLP exporter. Spans are then exported
// synchronously as they end, which is what tests want.
func WithExporter(exporter sdktrace.SpanExporter) Option {
	return func(o *options) { o.exporter = exporter }
}

// WithSampleRatio samples the given fraction of root spans. Child spans follow
// their parent.
func WithSampleRatio(ratio float64) Option {
	return func(o *options) {
		o.sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// Setup registers a global tracer provider for serviceName. Spans go to the
// OTLP/HTTP endpoint, or to the exporter given with WithExporter. With
// neither, Setup leaves the global no-op provider in place.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName, endpoint string, opts ...Option) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	o := options{
		serviceVersion: Version,
		sampler:        sdktrace.ParentBased(sdktrace.AlwaysSample()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if endpoint == "" && o.exporter == nil {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(o.serviceVersion),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build trace resource: %w", err)
	}

	processor, err := newSpanProcessor(ctx, endpoint, o.exporter)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(o.sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newSpanProcessor(ctx context.Context, endpoint string, exporter sdktrace.SpanExporter) (sdktrace.SpanProcessor, error) {
	if exporter != nil {
		return sdktrace.NewSimpleSpanProcessor(exporter), nil
	}

	otlp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return sdktrace.NewBatchSpanProcessor(otlp), nil
}
