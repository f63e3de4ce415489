package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

type Options struct {
	ServiceName string
	Exporter    string // none | stdout | otlp
	Endpoint    string // host:port del collector OTLP (gRPC, sin TLS)

	// Writer para el exporter stdout; default os.Stdout.
	Writer io.Writer
}

// Shutdown vacía y cierra el tracer provider.
type Shutdown func(ctx context.Context) error

// Setup configura el tracer provider global. Con exporter "none" no instala nada
// y los tracers quedan como no-op.
func Setup(ctx context.Context, opts Options) (Shutdown, error) {
	exporter, err := newExporter(ctx, opts)
	if err != nil {
		return nil, err
	}
	if exporter == nil {
		return func(context.Context) error { return nil }, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Exporter)) {
	case "", ExporterNone:
		return nil, nil
	case ExporterStdout:
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}
		return stdouttrace.New(stdouttrace.WithWriter(w))
	case ExporterOTLP:
		endpoint := strings.TrimSpace(opts.Endpoint)
		endpoint = strings.TrimPrefix(endpoint, "grpc://")
		endpoint = strings.TrimPrefix(endpoint, "http://")
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("telemetry: unknown exporter %q", opts.Exporter)
	}
}
