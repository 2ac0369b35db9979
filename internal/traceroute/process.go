// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// waitDelay bounds how long Close waits for the output pipe
// to drain after the process was terminated.
const waitDelay = 5 * time.Second

// process is a started trace-route process.
type process interface {
	// Output returns the raw standard output of the process.
	Output() io.Reader
	// Close terminates the process if it is still running and waits for it to exit.
	// A non-zero exit status is not reported as an error.
	Close() error
}

// startFunc starts the named executable with the given arguments.
type startFunc func(ctx context.Context, name string, args ...string) (process, error)

// command is a [process] backed by [exec.Cmd].
type command struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

// startCommand starts name in its own process group, so that terminating
// it also stops any helpers the trace-route tool spawned.
func startCommand(ctx context.Context, name string, args ...string) (process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	configureProcess(cmd)
	cmd.Cancel = func() error {
		return terminateProcess(cmd)
	}
	cmd.WaitDelay = waitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	if combineOutput {
		// Both streams share the pipe, so the header keeps its place before the hops.
		cmd.Stderr = cmd.Stdout
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &command{cmd: cmd, stdout: stdout}, nil
}

func (c *command) Output() io.Reader {
	return c.stdout
}

func (c *command) Close() error {
	// The process may have exited on its own already, in which case
	// there is nothing left to terminate.
	_ = terminateProcess(c.cmd)
	if err := c.cmd.Wait(); err != nil && !isExitError(err) {
		return err
	}
	return nil
}
