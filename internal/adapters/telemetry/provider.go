package telemetry

import (
	"context"

	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the process-wide tracer provider.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Setup installs a TracerProvider that reports spans through logger and
// registers it as the global provider.
func Setup(logger ports.Logger) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// TracerProvider returns the installed provider.
func (p *Provider) TracerProvider() *sdktrace.TracerProvider {
	return p.tp
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
