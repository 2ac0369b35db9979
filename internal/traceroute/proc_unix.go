// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package traceroute

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// combineOutput reports whether stderr is read together with stdout.
// traceroute prints its header naming the target to stderr.
const combineOutput = true

// configureProcess places the process in a new process group.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateProcess kills the process group of cmd.
// A group that is already gone is not an error.
func terminateProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}
