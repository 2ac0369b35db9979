// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/hoptrace/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const serviceName = "hoptrace"

var _ Provider = (*manager)(nil)

//go:generate go tool moq -out telemetry_moq.go . Provider
type Provider interface {
	// GetRegistry returns the prometheus registry instance
	// containing the registered prometheus collectors
	GetRegistry() *prometheus.Registry
	// InitTracing initializes the OpenTelemetry tracing
	InitTracing(ctx context.Context) error
	// WriteTextfile writes the gathered metrics to path in the
	// text exposition format. An empty path writes nothing.
	WriteTextfile(ctx context.Context, path string) error
	// Shutdown flushes and closes the tracing
	Shutdown(ctx context.Context) error
}

type manager struct {
	config   Config
	version  string
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
}

// New creates the telemetry provider of a single hoptrace run.
// The registry starts empty so the textfile only carries the run's own metrics.
func New(config Config, version string) Provider {
	return &manager{
		config:   config,
		version:  version,
		registry: prometheus.NewRegistry(),
	}
}

// GetRegistry returns the registry to register prometheus metrics
func (m *manager) GetRegistry() *prometheus.Registry {
	return m.registry
}

// InitTracing initializes the OpenTelemetry tracing.
// The global noop provider stays in place if tracing is disabled.
func (m *manager) InitTracing(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !m.config.Enabled {
		log.DebugContext(ctx, "Tracing disabled")
		return nil
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(m.version),
		),
	)
	if err != nil {
		log.DebugContext(ctx, "Failed to create resource", "error", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := m.config.Exporter.Create(ctx, &m.config)
	if err != nil {
		log.DebugContext(ctx, "Failed to create exporter", "error", err)
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	const (
		batchTimeout = 5 * time.Second
		maxQueueSize = 1000
		maxBatchSize = 100
	)
	bsp := sdktrace.NewBatchSpanProcessor(exporter,
		sdktrace.WithBatchTimeout(batchTimeout),
		sdktrace.WithMaxQueueSize(maxQueueSize),
		sdktrace.WithMaxExportBatchSize(maxBatchSize),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(bsp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	m.tp = tp
	log.DebugContext(ctx, "Tracing initialized with new provider", "provider", m.config.Exporter)
	return nil
}

// WriteTextfile writes the registry to path for the node exporter textfile collector.
func (m *manager) WriteTextfile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	log := logger.FromContext(ctx).With("path", path)
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		log.DebugContext(ctx, "Failed to write metrics textfile", "error", err)
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	log.DebugContext(ctx, "Metrics textfile written")
	return nil
}

// Shutdown flushes pending spans and closes the tracing
func (m *manager) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if m.tp != nil {
		err := m.tp.Shutdown(ctx)
		if err != nil {
			log.DebugContext(ctx, "Failed to shutdown tracer provider", "error", err)
			return fmt.Errorf("failed to shutdown tracer provider: %w", err)
		}
	}

	log.DebugContext(ctx, "Tracing shutdown")
	return nil
}
