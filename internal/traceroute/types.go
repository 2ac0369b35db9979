// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"errors"
	"fmt"
	"net/netip"
	"runtime"
)

// Options contains the configuration of the trace-route invocation.
type Options struct {
	// Binary is the trace-route executable to run.
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`
	// Args are passed to the executable before the target address.
	// They must request numeric-only output.
	Args []string `json:"args" yaml:"args" mapstructure:"args"`
	// Encoding is the character encoding of the executable's output.
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`
	// TimeoutMarkers is the number of timeout markers on a single line
	// that ends the path.
	TimeoutMarkers int `json:"timeoutMarkers" yaml:"timeoutMarkers" mapstructure:"timeoutMarkers"`
}

// DefaultOptions returns the options for the platform's trace-route utility.
// On Windows this is tracert, which prints in the legacy console code page.
func DefaultOptions() Options {
	return defaultOptionsFor(runtime.GOOS)
}

func defaultOptionsFor(goos string) Options {
	if goos == "windows" {
		return Options{
			Binary:         "tracert",
			Args:           []string{"-d"},
			Encoding:       "cp866",
			TimeoutMarkers: DefaultTimeoutMarkers,
		}
	}
	return Options{
		Binary:         "traceroute",
		Args:           []string{"-n"},
		Encoding:       "utf-8",
		TimeoutMarkers: DefaultTimeoutMarkers,
	}
}

// Validate checks that the options can be used to start a trace.
func (o *Options) Validate() error {
	if o.Binary == "" {
		return ErrEmptyBinary
	}
	if o.TimeoutMarkers < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTimeoutMarkers, o.TimeoutMarkers)
	}
	if _, err := lookupEncoding(o.Encoding); err != nil {
		return err
	}
	return nil
}

// Target represents a target for the traceroute.
type Target struct {
	// Address is the numeric address to trace to.
	Address string `json:"address" yaml:"address" mapstructure:"address"`
}

func (t Target) String() string {
	return t.Address
}

func (t Target) Validate() error {
	if t.Address == "" {
		return errors.New("target address cannot be empty")
	}
	if _, err := netip.ParseAddr(t.Address); err != nil {
		return fmt.Errorf("target address must be numeric: %w", err)
	}
	return nil
}

// Hop is one intermediate router on the path to a target.
type Hop struct {
	// Index is the 1-based position of the hop in the reported path.
	Index int `json:"index" yaml:"index"`
	// IP is the address of the hop as printed by the trace-route tool.
	IP string `json:"ip" yaml:"ip"`
}

func (h Hop) String() string {
	return fmt.Sprintf("%-2d  %s", h.Index, h.IP)
}
