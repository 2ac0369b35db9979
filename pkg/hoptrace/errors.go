// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package hoptrace

import "fmt"

// ErrHostResolution is returned when the host cannot be resolved to an address.
type ErrHostResolution struct {
	Host string
	Err  error
}

func (e *ErrHostResolution) Error() string {
	return fmt.Sprintf("failed to resolve host %q: %v", e.Host, e.Err)
}

func (e *ErrHostResolution) Unwrap() error {
	return e.Err
}

// ErrTrace is returned when the trace-route utility cannot be run or read.
type ErrTrace struct {
	Address string
	Err     error
}

func (e *ErrTrace) Error() string {
	return fmt.Sprintf("failed to trace route to %s: %v", e.Address, e.Err)
}

func (e *ErrTrace) Unwrap() error {
	return e.Err
}

// ErrEnrichment is returned when the metadata of a hop cannot be looked up.
type ErrEnrichment struct {
	IP  string
	Err error
}

func (e *ErrEnrichment) Error() string {
	return fmt.Sprintf("failed to look up hop %s: %v", e.IP, e.Err)
}

func (e *ErrEnrichment) Unwrap() error {
	return e.Err
}
