// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"iter"
	"regexp"
	"strings"
)

const (
	// timeoutMarker is printed by trace-route tools instead of a
	// round-trip time when a packet was not answered.
	timeoutMarker = "*"
	// DefaultTimeoutMarkers is the number of timeout markers on one line
	// that ends the path: no packet sent to the hop was answered.
	DefaultTimeoutMarkers = 3
)

// IPv4Pattern matches four dot-separated groups of one to three digits.
var IPv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// LineSource provides decoded trace-route output one line at a time.
// [*bufio.Scanner] satisfies it.
type LineSource interface {
	// Scan advances to the next line and reports whether there is one.
	Scan() bool
	// Text returns the current line.
	Text() string
}

// Extractor turns trace-route output into hop addresses.
type Extractor struct {
	pattern        *regexp.Regexp
	timeoutMarkers int
}

// NewExtractor creates an Extractor that finds hop addresses with pattern
// and ends the path on lines with at least timeoutMarkers timeout markers.
// A nil pattern selects [IPv4Pattern], values below 1 select [DefaultTimeoutMarkers].
func NewExtractor(pattern *regexp.Regexp, timeoutMarkers int) *Extractor {
	if pattern == nil {
		pattern = IPv4Pattern
	}
	if timeoutMarkers < 1 {
		timeoutMarkers = DefaultTimeoutMarkers
	}
	return &Extractor{
		pattern:        pattern,
		timeoutMarkers: timeoutMarkers,
	}
}

// Hops returns the hop addresses found in src, in path order.
//
// The sequence reads src lazily and can be consumed once. The first address
// in the output is the target itself and is never yielded.
func (e *Extractor) Hops(src LineSource) iter.Seq[string] {
	return func(yield func(string) bool) {
		targetSeen := false
		for src.Scan() {
			line := src.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if strings.Count(line, timeoutMarker) >= e.timeoutMarkers {
				return
			}

			ip := e.pattern.FindString(line)
			if ip == "" {
				return
			}
			if !targetSeen {
				targetSeen = true
				continue
			}
			if !yield(ip) {
				return
			}
		}
	}
}
