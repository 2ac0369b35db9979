// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ipinfo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/telekom/hoptrace/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultURL is the lookup service queried when none is configured.
	DefaultURL = "http://ipinfo.io"
	// maxResponseSize caps the body read from the lookup service.
	maxResponseSize = 1 << 20
)

var _ Client = (*client)(nil)

// Client looks up the metadata of an address.
//
//go:generate go tool moq -out client_moq.go . Client
type Client interface {
	// Lookup queries the metadata of ip. It performs exactly one request.
	Lookup(ctx context.Context, ip string) (Metadata, error)
}

// Config is the configuration of the lookup service client.
type Config struct {
	// URL is the base URL of the lookup service.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
	// Token is an optional API token sent as query parameter.
	Token string `json:"token" yaml:"token" mapstructure:"token"`
	// Timeout limits every request. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

type client struct {
	config    Config
	userAgent string
	client    *http.Client
}

// NewClient creates a lookup service client.
// The userAgent is sent with every request if not empty.
func NewClient(cfg Config, userAgent string) Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	return &client{
		config:    cfg,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Lookup issues GET <url>/<ip>/json and maps the answer to [Metadata].
func (c *client) Lookup(ctx context.Context, ip string) (Metadata, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("ipinfo.client")
	ctx, span := tracer.Start(ctx, "Lookup", trace.WithAttributes(
		attribute.String("ipinfo.ip", ip),
	))
	defer span.End()
	log := logger.FromContext(ctx).With("ip", ip)

	endpoint, err := c.endpoint(ip)
	if err != nil {
		return Metadata{}, recordError(span, fmt.Errorf("failed to build lookup url: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return Metadata{}, recordError(span, fmt.Errorf("failed to create lookup request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.DebugContext(ctx, "Looking up address metadata", "url", c.config.URL)
	resp, err := c.client.Do(req)
	if err != nil {
		log.DebugContext(ctx, "Lookup request failed", "error", err)
		return Metadata{}, recordError(span, fmt.Errorf("lookup request failed: %w", err))
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			log.WarnContext(ctx, "Failed to close lookup response body", "error", cErr)
		}
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		log.DebugContext(ctx, "Lookup service answered with unexpected status", "status", resp.StatusCode)
		return Metadata{}, recordError(span, ErrUnexpectedStatus{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Metadata{}, recordError(span, fmt.Errorf("failed to read lookup response: %w", err))
	}

	md, err := parseResponse(body)
	if err != nil {
		log.DebugContext(ctx, "Failed to parse lookup response", "error", err)
		return Metadata{}, recordError(span, err)
	}

	span.SetAttributes(
		attribute.String("ipinfo.country", md.Country),
		attribute.String("ipinfo.as", md.AS),
	)
	log.DebugContext(ctx, "Resolved address metadata", "country", md.Country, "as", md.AS, "provider", md.Provider)
	return md, nil
}

// endpoint returns the lookup url for ip.
func (c *client) endpoint(ip string) (string, error) {
	u, err := url.Parse(c.config.URL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath(ip, "json")
	if c.config.Token != "" {
		q := u.Query()
		q.Set("token", c.config.Token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// recordError marks the span as failed and returns err.
func recordError(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
	return err
}
