// Package telemetry installs the global OpenTelemetry tracer provider.
// Spans go to Langfuse's OTLP endpoint so HTTP requests, score computation
// and coach-tip generation show up next to the ingestion traces.
package telemetry

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/blaisecz/shift-coach/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otlpTracesPath = "/api/public/otel/v1/traces"

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// Enabled reports whether cfg carries everything the Langfuse exporter needs.
func Enabled(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// InitTracer sets the global tracer provider and W3C propagator. Without
// Langfuse credentials the no-op provider stays in place.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (Shutdown, error) {
	if !Enabled(cfg) {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSuffix(cfg.LangfuseBaseURL, "/")+otlpTracesPath),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + basicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", cfg.LangfuseEnv),
		attribute.String("langfuse.environment", cfg.LangfuseEnv),
	))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}
