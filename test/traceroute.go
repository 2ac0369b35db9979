// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// TracerouteUnix is the combined stdout and stderr of `traceroute -n 8.8.8.8`
// on Linux. The header line is written to stderr, the hop rows to stdout.
// The path ends at the fourth hop, which did not answer.
const TracerouteUnix = `traceroute to 8.8.8.8 (8.8.8.8), 30 hops max, 60 byte packets
 1  192.168.1.1  0.512 ms  0.488 ms  0.470 ms
 2  10.20.0.1  5.123 ms  5.101 ms  5.090 ms
 3  * 172.16.4.9  9.871 ms *
 4  * * *
 5  142.250.46.1  14.002 ms  13.870 ms  13.911 ms
`

// TracerouteUnixHops are the hops of [TracerouteUnix].
var TracerouteUnixHops = []string{"192.168.1.1", "10.20.0.1", "172.16.4.9"}

// TracertWindows is the output of `tracert -d 8.8.8.8` on an English Windows.
const TracertWindows = "\r\n" +
	"Tracing route to 8.8.8.8 over a maximum of 30 hops\r\n" +
	"\r\n" +
	"  1    <1 ms    <1 ms    <1 ms  192.168.0.1\r\n" +
	"  2     3 ms     2 ms     3 ms  100.64.0.1\r\n" +
	"  3    12 ms    11 ms    12 ms  8.8.8.8\r\n" +
	"\r\n" +
	"Trace complete.\r\n"

// TracertWindowsHops are the hops of [TracertWindows].
var TracertWindowsHops = []string{"192.168.0.1", "100.64.0.1", "8.8.8.8"}

// TracertRussian is the output of `tracert -d 8.8.8.8` on a Russian Windows,
// before it is encoded in the console code page.
const TracertRussian = "\r\n" +
	"Трассировка маршрута к 8.8.8.8 с максимальным числом прыжков 30\r\n" +
	"\r\n" +
	"  1    <1 мс    <1 мс    <1 мс  192.168.0.1\r\n" +
	"  2     4 мс     3 мс     3 мс  95.167.0.1\r\n" +
	"  3     *        *        *     Превышен интервал ожидания для запроса.\r\n" +
	"  4    20 мс    19 мс    21 мс  8.8.8.8\r\n" +
	"\r\n" +
	"Трассировка завершена.\r\n"

// TracertRussianHops are the hops of [TracertRussian].
var TracertRussianHops = []string{"192.168.0.1", "95.167.0.1"}

// EncodeCP866 encodes s in the Cyrillic DOS code page used by the Russian Windows console.
func EncodeCP866(t testing.TB, s string) []byte {
	t.Helper()
	b, err := charmap.CodePage866.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("failed to encode %q as cp866: %v", s, err)
	}
	return b
}

// MarkAsLongRunning skips the test when running with -short.
// Use it for tests that start real processes.
func MarkAsLongRunning(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping long running test in short mode")
	}
}
