// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"fmt"
	"slices"

	"github.com/telekom/hoptrace/internal/logger"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commandLine returns the arguments for tracing to target.
// The target address is always the last argument.
func commandLine(opts *Options, target Target) []string {
	return append(slices.Clone(opts.Args), target.Address)
}

// wrapError wraps an error with a message and logs it at debug level.
// It also records the error in the current OpenTelemetry span.
func wrapError(ctx context.Context, err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx)
	span := trace.SpanFromContext(ctx)
	caser := cases.Title(language.English)

	text := fmt.Sprintf(msg, args...)
	log.DebugContext(ctx, caser.String(text), "error", err)
	span.SetStatus(codes.Error, text)
	span.RecordError(err)
	return fmt.Errorf("%s: %w", text, err)
}
