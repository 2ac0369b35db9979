// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/telekom/hoptrace/internal/ipinfo"
	"github.com/telekom/hoptrace/internal/traceroute"
	"github.com/telekom/hoptrace/pkg/report"
	"github.com/telekom/hoptrace/pkg/telemetry"
)

type Config struct {
	// Lookup is the configuration of the address metadata service
	Lookup ipinfo.Config `yaml:"lookup" mapstructure:"lookup"`
	// Traceroute is the configuration of the trace-route invocation
	Traceroute traceroute.Options `yaml:"traceroute" mapstructure:"traceroute"`
	// Output is the configuration of the report
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	// Log is the configuration of the diagnostic logs
	Log LogConfig `yaml:"log" mapstructure:"log"`
	// Telemetry is the configuration for the telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`
	// Metrics is the configuration of the metrics textfile
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// OutputConfig is the configuration of the report
type OutputConfig struct {
	Format report.Format `yaml:"format" mapstructure:"format"`
}

// LogConfig is the configuration of the diagnostic logs written to stderr
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// MetricsConfig is the configuration of the metrics textfile
type MetricsConfig struct {
	// Textfile is the path the metrics are written to after every run.
	// Metrics are not written if empty.
	Textfile string `yaml:"textfile" mapstructure:"textfile"`
}

// Default returns the configuration that runs the platform's
// trace-route utility against the public lookup service.
func Default() Config {
	return Config{
		Lookup: ipinfo.Config{
			URL: ipinfo.DefaultURL,
		},
		Traceroute: traceroute.DefaultOptions(),
		Output: OutputConfig{
			Format: report.FormatTable,
		},
		Log: LogConfig{
			Level:  "WARN",
			Format: "TEXT",
		},
	}
}

// HasTelemetry returns true if the config has telemetry enabled
func (c *Config) HasTelemetry() bool {
	return c.Telemetry.Enabled
}

// HasMetrics returns true if the metrics are written to a textfile
func (c *Config) HasMetrics() bool {
	return c.Metrics.Textfile != ""
}
