// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrInvalidLookupURL is returned when the lookup url is invalid
	ErrInvalidLookupURL = errors.New("invalid lookup url")
	// ErrInvalidLookupTimeout is returned when the lookup timeout is negative
	ErrInvalidLookupTimeout = errors.New("invalid lookup timeout")
	// ErrInvalidTraceroute is returned when the trace-route options are invalid
	ErrInvalidTraceroute = errors.New("invalid traceroute options")
	// ErrInvalidOutputFormat is returned when the output format is not supported
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when the log level is unknown
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when the log format is unknown
	ErrInvalidLogFormat = errors.New("invalid log format")
)
