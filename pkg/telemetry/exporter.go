// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc/credentials"
)

// Exporter is the protocol used to export the traces
type Exporter string

const (
	// HTTP is the protocol used to export the traces via HTTP/1.1
	HTTP Exporter = "http"
	// GRPC is the protocol used to export the traces via HTTP/2 (gRPC)
	GRPC Exporter = "grpc"
	// STDOUT is used to export the traces to the standard error stream,
	// so they never mix with the report
	STDOUT Exporter = "stdout"
	// NOOP is used to disable the export of traces
	NOOP Exporter = ""
)

var exporters = []Exporter{HTTP, GRPC, STDOUT, NOOP}

func (e Exporter) String() string {
	return string(e)
}

// Validate validates the exporter
func (e Exporter) Validate() error {
	if !slices.Contains(exporters, e) {
		return fmt.Errorf("unsupported exporter %q", e)
	}
	return nil
}

// IsExporting returns true if the exporter sends traces to a collector
func (e Exporter) IsExporting() bool {
	return e == HTTP || e == GRPC
}

// Create creates a new span exporter for the given configuration
func (e Exporter) Create(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	switch e {
	case HTTP:
		return newHTTPExporter(ctx, config)
	case GRPC:
		return newGRPCExporter(ctx, config)
	case STDOUT:
		return stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	case NOOP:
		return tracetest.NewNoopExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported exporter %q", e)
	}
}

func newHTTPExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(config.Url)}
	if headers := authHeaders(config.Token); headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracehttp.WithInsecure())
		return otlptracehttp.New(ctx, opts...)
	}
	if config.TLS.CertPath != "" {
		pool, err := loadCertPool(config.TLS.CertPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, otlptracehttp.WithTLSClientConfig(&tls.Config{
			RootCAs:    pool,
			MinVersion: tls.VersionTLS12,
		}))
	}
	return otlptracehttp.New(ctx, opts...)
}

func newGRPCExporter(ctx context.Context, config *Config) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpointURL(config.Url)}
	if headers := authHeaders(config.Token); headers != nil {
		opts = append(opts, otlptracegrpc.WithHeaders(headers))
	}

	if !config.TLS.Enabled {
		opts = append(opts, otlptracegrpc.WithInsecure())
		return otlptracegrpc.New(ctx, opts...)
	}
	if config.TLS.CertPath != "" {
		creds, err := credentials.NewClientTLSFromFile(config.TLS.CertPath, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load tls certificate: %w", err)
		}
		opts = append(opts, otlptracegrpc.WithTLSCredentials(creds))
	}
	return otlptracegrpc.New(ctx, opts...)
}

// authHeaders returns the bearer authorization header for token, or nil.
func authHeaders(token string) map[string]string {
	if token == "" {
		return nil
	}
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	return map[string]string{"Authorization": token}
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read tls certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("failed to parse tls certificate %q", path)
	}
	return pool, nil
}
