// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import "errors"

var (
	// ErrEmptyHost is returned when no host is given
	ErrEmptyHost = errors.New("host cannot be empty")
	// ErrInvalidHostName is returned when the host is neither an address nor a valid host name
	ErrInvalidHostName = errors.New("invalid host name")
	// ErrNoIPv4Address is returned when the host has no IPv4 address
	ErrNoIPv4Address = errors.New("no IPv4 address found")
)
