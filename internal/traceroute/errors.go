// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"errors"
	"os/exec"
)

var (
	// ErrUnknownEncoding is returned when the configured output encoding is not supported.
	ErrUnknownEncoding = errors.New("unknown output encoding")
	// ErrEmptyBinary is returned when no trace-route executable is configured.
	ErrEmptyBinary = errors.New("trace-route binary cannot be empty")
	// ErrInvalidTimeoutMarkers is returned when the timeout marker threshold is below 1.
	ErrInvalidTimeoutMarkers = errors.New("timeout markers must be at least 1")
)

// isExitError checks if the error only reports a non-zero exit
// of the trace-route process. Those are expected when the process
// was terminated after the path ended or the target was unreachable.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
