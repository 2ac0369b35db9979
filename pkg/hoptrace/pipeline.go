// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hoptrace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/hoptrace/internal/ipinfo"
	"github.com/telekom/hoptrace/internal/logger"
	"github.com/telekom/hoptrace/internal/traceroute"
	"github.com/telekom/hoptrace/pkg/report"
	"github.com/telekom/hoptrace/pkg/resolve"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "hoptrace.pipeline"

// Pipeline resolves a host, traces the route to it and enriches the hops.
type Pipeline struct {
	resolver resolve.Resolver
	tracer   traceroute.Client
	lookup   ipinfo.Client
	options  traceroute.Options
	metrics  metrics
}

// New creates a pipeline and registers its metrics on registry.
func New(resolver resolve.Resolver, tracer traceroute.Client, lookup ipinfo.Client, opts traceroute.Options, registry prometheus.Registerer) (*Pipeline, error) {
	m := newMetrics()
	if err := m.register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return &Pipeline{
		resolver: resolver,
		tracer:   tracer,
		lookup:   lookup,
		options:  opts,
		metrics:  m,
	}, nil
}

// Run traces the route to host and returns the enriched hops in path order.
// The report is only returned if every hop was enriched.
func (p *Pipeline) Run(ctx context.Context, host string) (rep report.Report, err error) {
	host = strings.TrimSpace(host)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Run", trace.WithAttributes(
		attribute.String("hoptrace.host", host),
	))
	defer func() {
		p.metrics.finish(err)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
		}
		span.End()
	}()
	log := logger.FromContext(ctx).With("target", host)

	addr, err := resolve.Resolve(ctx, p.resolver, host)
	if err != nil {
		log.DebugContext(ctx, "Failed to resolve host", "error", err)
		return report.Report{}, &ErrHostResolution{Host: host, Err: err}
	}
	span.SetAttributes(attribute.String("hoptrace.address", addr))
	log = log.With("address", addr)
	log.DebugContext(ctx, "Host resolved")

	rows := []report.Row{}
	for hop, tErr := range p.tracer.Run(ctx, traceroute.Target{Address: addr}, &p.options) {
		if tErr != nil {
			log.DebugContext(ctx, "Failed to trace route", "error", tErr)
			return report.Report{}, &ErrTrace{Address: addr, Err: tErr}
		}
		p.metrics.hops.Inc()

		md, lErr := p.enrich(ctx, hop.IP)
		if lErr != nil {
			log.DebugContext(ctx, "Failed to enrich hop", "ip", hop.IP, "error", lErr)
			return report.Report{}, &ErrEnrichment{IP: hop.IP, Err: lErr}
		}
		log.DebugContext(ctx, "Hop enriched", "index", hop.Index, "ip", hop.IP, "as", md.AS)
		rows = append(rows, report.Row{
			Index:    hop.Index,
			IP:       hop.IP,
			AS:       md.AS,
			Country:  md.Country,
			Provider: md.Provider,
		})
	}

	span.SetAttributes(attribute.Int("hoptrace.hops", len(rows)))
	log.InfoContext(ctx, "Route traced", "hops", len(rows))
	return report.Report{Target: host, Address: addr, Hops: rows}, nil
}

// enrich looks up the metadata of ip and records the lookup metrics.
func (p *Pipeline) enrich(ctx context.Context, ip string) (ipinfo.Metadata, error) {
	start := time.Now()
	md, err := p.lookup.Lookup(ctx, ip)
	p.metrics.lookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.lookupErrors.Inc()
	}
	return md, err
}
