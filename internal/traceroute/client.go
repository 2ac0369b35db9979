// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/telekom/hoptrace/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	_ Client = (*genericClient)(nil)
)

// Client is able to trace the route to a target.
//
//go:generate go tool moq -out client_moq.go . Client
type Client interface {
	// Run returns the hops on the path to target, in path order.
	// The trace starts when iteration begins. Errors are yielded with a zero Hop
	// and end the sequence.
	Run(ctx context.Context, target Target, opts *Options) iter.Seq2[Hop, error]
}

type genericClient struct {
	// start launches the trace-route process.
	start startFunc
}

func NewClient() Client {
	return &genericClient{
		start: startCommand,
	}
}

func (c *genericClient) Run(ctx context.Context, target Target, opts *Options) iter.Seq2[Hop, error] {
	return func(yield func(Hop, error) bool) {
		if opts == nil {
			def := DefaultOptions()
			opts = &def
		}
		if err := target.Validate(); err != nil {
			yield(Hop{}, fmt.Errorf("invalid target %s: %w", target, err))
			return
		}
		if err := opts.Validate(); err != nil {
			yield(Hop{}, fmt.Errorf("invalid options: %w", err))
			return
		}

		tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("traceroute.client")
		ctx, span := tracer.Start(ctx, "Run", trace.WithAttributes(
			attribute.Stringer("traceroute.target.address", target),
			attribute.String("traceroute.options.binary", opts.Binary),
			attribute.String("traceroute.options.encoding", opts.Encoding),
		))
		defer span.End()
		log := logger.FromContext(ctx).With("target", target.String())

		args := commandLine(opts, target)
		log.DebugContext(ctx, "Starting trace-route process", "binary", opts.Binary, "args", strings.Join(args, " "))
		proc, err := c.start(ctx, opts.Binary, args...)
		if err != nil {
			yield(Hop{}, wrapError(ctx, err, "failed to start %s", opts.Binary))
			return
		}
		defer func() {
			if cErr := proc.Close(); cErr != nil {
				log.WarnContext(ctx, "Trace-route process did not exit cleanly", "error", cErr)
			}
		}()

		out, err := newDecoder(proc.Output(), opts.Encoding)
		if err != nil {
			yield(Hop{}, wrapError(ctx, err, "failed to decode trace-route output"))
			return
		}

		scanner := bufio.NewScanner(out)
		index := 0
		for ip := range NewExtractor(IPv4Pattern, opts.TimeoutMarkers).Hops(scanner) {
			index++
			hop := Hop{Index: index, IP: ip}
			log.DebugContext(ctx, "Extracted hop", "hop", hop.String())
			span.AddEvent("Hop extracted", trace.WithAttributes(
				attribute.Int("traceroute.hop.index", hop.Index),
				attribute.String("traceroute.hop.ip", hop.IP),
			))
			if !yield(hop, nil) {
				span.SetAttributes(attribute.Int("traceroute.hops.count", index))
				return
			}
		}
		span.SetAttributes(attribute.Int("traceroute.hops.count", index))

		if err := scanner.Err(); err != nil {
			yield(Hop{}, wrapError(ctx, err, "failed to read trace-route output"))
			return
		}
		if err := ctx.Err(); err != nil {
			yield(Hop{}, wrapError(ctx, err, "trace to %s interrupted", target))
			return
		}
		log.DebugContext(ctx, "Trace-route finished", "hops", index)
	}
}
