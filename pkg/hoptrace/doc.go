// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package hoptrace traces the path to a host and enriches every hop with
// the autonomous system, country and provider of its address.
//
// A run resolves the host, starts the trace-route utility and looks up each
// hop as soon as it is read. Lookups happen one after another in path order.
// The first failure ends the run and no partial report is returned.
package hoptrace
