// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/telekom/hoptrace/internal/logger"
)

var (
	logLevels  = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}
	logFormats = []string{"TEXT", "JSON"}
)

// Validate validates the startup config
func (c *Config) Validate(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)

	if vErr := c.validateLookup(); vErr != nil {
		log.DebugContext(ctx, "The lookup configuration is invalid", "error", vErr)
		err = errors.Join(err, vErr)
	}

	if vErr := c.Traceroute.Validate(); vErr != nil {
		log.DebugContext(ctx, "The traceroute configuration is invalid", "error", vErr)
		err = errors.Join(err, fmt.Errorf("%w: %w", ErrInvalidTraceroute, vErr))
	}

	if !c.Output.Format.IsValid() {
		log.DebugContext(ctx, "The output format is not supported", "format", c.Output.Format)
		err = errors.Join(err, fmt.Errorf("%w %q", ErrInvalidOutputFormat, c.Output.Format))
	}

	if vErr := c.Log.Validate(); vErr != nil {
		log.DebugContext(ctx, "The log configuration is invalid", "error", vErr)
		err = errors.Join(err, vErr)
	}

	if c.HasTelemetry() {
		if vErr := c.Telemetry.Validate(ctx); vErr != nil {
			log.DebugContext(ctx, "The telemetry configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if err != nil {
		return fmt.Errorf("validation of configuration failed: %w", err)
	}
	return nil
}

func (c *Config) validateLookup() error {
	u, err := url.ParseRequestURI(c.Lookup.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w %q", ErrInvalidLookupURL, c.Lookup.URL)
	}
	if c.Lookup.Timeout < 0 {
		return fmt.Errorf("%w, must be equal or above 0, got %s", ErrInvalidLookupTimeout, c.Lookup.Timeout)
	}
	return nil
}

// Validate validates the log configuration. Empty values select the defaults.
func (c *LogConfig) Validate() (err error) {
	if c.Level != "" && !slices.Contains(logLevels, strings.ToUpper(c.Level)) {
		err = errors.Join(err, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.Level))
	}
	if c.Format != "" && !slices.Contains(logFormats, strings.ToUpper(c.Format)) {
		err = errors.Join(err, fmt.Errorf("%w %q", ErrInvalidLogFormat, c.Format))
	}
	return err
}
