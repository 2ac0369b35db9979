// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/telekom/hoptrace/internal/ipinfo"
	"github.com/telekom/hoptrace/internal/logger"
	"github.com/telekom/hoptrace/internal/traceroute"
	"github.com/telekom/hoptrace/pkg/config"
	"github.com/telekom/hoptrace/pkg/hoptrace"
	"github.com/telekom/hoptrace/pkg/report"
	"github.com/telekom/hoptrace/pkg/resolve"
	"github.com/telekom/hoptrace/pkg/telemetry"
)

// shutdownTimeout bounds the flush of pending spans after a run.
const shutdownTimeout = 10 * time.Second

// dependencies creates the collaborators of a run
type dependencies struct {
	resolver   func() resolve.Resolver
	traceroute func() traceroute.Client
	lookup     func(cfg ipinfo.Config, userAgent string) ipinfo.Client
	telemetry  func(cfg telemetry.Config, version string) telemetry.Provider
}

var defaultDependencies = dependencies{
	resolver:   resolve.NewResolver,
	traceroute: traceroute.NewClient,
	lookup:     ipinfo.NewClient,
	telemetry:  telemetry.New,
}

// registerFlags adds the run flags to cmd and binds them to their config keys
func registerFlags(cmd *cobra.Command) {
	d := config.Default()
	flags := cmd.Flags()

	flags.StringP("output", "o", d.Output.Format.String(), "output format, one of table, json or yaml")
	flags.String("lookup-url", d.Lookup.URL, "base url of the address metadata service")
	flags.String("lookup-token", d.Lookup.Token, "api token of the address metadata service")
	flags.Duration("lookup-timeout", d.Lookup.Timeout, "timeout of every metadata lookup, 0 waits forever")
	flags.String("traceroute-binary", d.Traceroute.Binary, "trace-route executable to run")
	flags.StringSlice("traceroute-args", d.Traceroute.Args, "arguments passed to the trace-route executable before the target")
	flags.String("traceroute-encoding", d.Traceroute.Encoding, "character encoding of the trace-route output")
	flags.Int("timeout-markers", d.Traceroute.TimeoutMarkers, "number of timeout markers on a line that ends the path")
	flags.String("metrics-textfile", d.Metrics.Textfile, "path to write prometheus metrics to after the run")
	flags.String("log-level", d.Log.Level, "log level, one of DEBUG, INFO, WARN or ERROR")
	flags.String("log-format", d.Log.Format, "log format, one of TEXT or JSON")

	bindFlags(flags, map[string]string{
		"output.format":             "output",
		"lookup.url":                "lookup-url",
		"lookup.token":              "lookup-token",
		"lookup.timeout":            "lookup-timeout",
		"traceroute.binary":         "traceroute-binary",
		"traceroute.args":           "traceroute-args",
		"traceroute.encoding":       "traceroute-encoding",
		"traceroute.timeoutMarkers": "timeout-markers",
		"metrics.textfile":          "metrics-textfile",
		"log.level":                 "log-level",
		"log.format":                "log-format",
	})
}

func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %q: %v", name, err))
		}
	}
}

// run is the entry point to trace the route to a host
func run(version string, deps dependencies) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runTrace(cmd, args[0], version, deps)
	}
}

func runTrace(cmd *cobra.Command, host, version string, deps dependencies) (err error) {
	cfg := config.Default()
	if err = viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	log := logger.NewLogger(logger.NewHandler(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level))
	ctx, cancel := logger.NewContextWithLogger(logger.IntoContext(cmd.Context(), log))
	defer cancel()
	if used := viper.ConfigFileUsed(); used != "" {
		log.DebugContext(ctx, "Using config file", "path", used)
	}

	if err = cfg.Validate(ctx); err != nil {
		return err
	}

	tel := deps.telemetry(cfg.Telemetry, version)
	if err = tel.InitTracing(ctx); err != nil {
		return err
	}
	defer func() {
		sCtx, sCancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer sCancel()
		err = errors.Join(err, tel.Shutdown(sCtx))
	}()

	pipeline, err := hoptrace.New(
		deps.resolver(),
		deps.traceroute(),
		deps.lookup(cfg.Lookup, "hoptrace/"+version),
		cfg.Traceroute,
		tel.GetRegistry(),
	)
	if err != nil {
		return err
	}

	rep, err := pipeline.Run(ctx, host)
	if mErr := tel.WriteTextfile(ctx, cfg.Metrics.Textfile); mErr != nil {
		log.WarnContext(ctx, "Metrics were not written", "error", mErr)
	}
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), rep, cfg.Output.Format)
}
