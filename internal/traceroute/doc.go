// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package traceroute runs the platform trace-route utility and turns its
// textual output into an ordered sequence of hops.
//
// It exposes a [Client] for tracing the path to a single numeric target with
// configurable [Options], and an [Extractor] that implements the parsing on
// top of any [LineSource], so canned output can be parsed without running a
// process.
//
// Parsing rules:
//   - blank lines are skipped
//   - a line with [DefaultTimeoutMarkers] or more timeout markers ("*") ends
//     the path, the far end did not reply
//   - a line without an IPv4 address ends the path
//   - the first address of the whole output is the target itself and is
//     dropped, every following first-address-of-a-line is a hop
//
// The first-address rule relies on the tool printing the target address in
// its header line before any hop row. tracert (Windows) prints the header to
// stdout, traceroute (Unix) to stderr. Outside Windows both streams are
// therefore read as one, in the order they were written.
//
// Typical usage:
//
//	client := traceroute.NewClient()
//	opts := traceroute.DefaultOptions()
//	for hop, err := range client.Run(ctx, traceroute.Target{Address: "8.8.8.8"}, &opts) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(hop)
//	}
//
// The process is started when iteration begins and is terminated and awaited
// when iteration ends, whether the path was exhausted, the consumer stopped
// early or the context was canceled.
package traceroute
