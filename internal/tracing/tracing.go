package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/appclacks/scorecard/internal/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Configuration struct {
	Enabled     bool
	Endpoint    string `validate:"required_if=Enabled true"`
	Insecure    bool
	ServiceName string `yaml:"service-name"`
}

func (c Configuration) Service() string {
	if c.ServiceName == "" {
		return "scorecard"
	}
	return c.ServiceName
}

// Setup registers the global tracer provider exporting spans over OTLP/HTTP.
// The returned function flushes and stops the provider.
func Setup(ctx context.Context, logger *slog.Logger, config Configuration) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if err := validator.Validator.Struct(config); err != nil {
		return nil, err
	}
	options := []otlptracehttp.Option{otlptracehttp.WithEndpoint(config.Endpoint)}
	if config.Insecure {
		options = append(options, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("fail to create the otlp exporter: %w", err)
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", config.Service()))),
	)
	otel.SetTracerProvider(provider)
	logger.Info(fmt.Sprintf("exporting traces to %s", config.Endpoint))
	return provider.Shutdown, nil
}
