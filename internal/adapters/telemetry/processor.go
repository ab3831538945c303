// Package telemetry wires OpenTelemetry tracing to the application logger.
package telemetry

import (
	"context"
	"fmt"

	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogProcessor implements sdktrace.SpanProcessor by reporting finished spans
// through a ports.Logger: timings at debug level, failures at warn level.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart is called when a span starts.
func (p *LogProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		p.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, desc))
		return
	}
	p.logger.Debug(fmt.Sprintf("%s took %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(_ context.Context) error {
	return nil
}
