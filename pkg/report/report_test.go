// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = Report{
	Target:  "dns.google",
	Address: "8.8.8.8",
	Hops: []Row{
		{Index: 1, IP: "8.8.8.8", AS: "15169", Country: "US", Provider: "Google LLC"},
		{Index: 2, IP: "10.0.0.1", AS: "", Country: "", Provider: ""},
	},
}

func TestWriteTable(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want string
	}{
		{
			name: "header only",
			rows: nil,
			want: "№ IP                   AS        Country     Provider            \n",
		},
		{
			name: "single enriched hop",
			rows: []Row{{Index: 1, IP: "8.8.8.8", AS: "15169", Country: "US", Provider: "Google LLC"}},
			want: "№ IP                   AS        Country     Provider            \n" +
				"1 8.8.8.8              15169     US          Google LLC          \n",
		},
		{
			name: "empty metadata keeps column widths",
			rows: []Row{{Index: 2, IP: "10.0.0.1"}},
			want: "№ IP                   AS        Country     Provider            \n" +
				"2 10.0.0.1                                                       \n",
		},
		{
			name: "long values are not truncated",
			rows: []Row{{Index: 12, IP: "10.0.0.1", AS: "4200000000", Country: "DE", Provider: "Deutsche Telekom AG Network Services"}},
			want: "№ IP                   AS        Country     Provider            \n" +
				"12 10.0.0.1             4200000000 DE          Deutsche Telekom AG Network Services\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteTable(&buf, tt.rows))
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("WriteTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteTable_Order(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sample.Hops))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1 8.8.8.8"))
	assert.True(t, strings.HasPrefix(lines[2], "2 10.0.0.1"))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatJSON))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), `"provider": "Google LLC"`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatYAML))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasPrefix(buf.String(), "target: dns.google\n"))
}

func TestWrite_DefaultsToTable(t *testing.T) {
	var table, def bytes.Buffer
	require.NoError(t, Write(&table, sample, FormatTable))
	require.NoError(t, Write(&def, sample, ""))
	assert.Equal(t, table.String(), def.String())
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sample, "xml")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteTable_WriterError(t *testing.T) {
	assert.Error(t, WriteTable(failingWriter{}, sample.Hops))
}

func TestFormat_IsValid(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, f.IsValid(), f.String())
	}
	assert.False(t, Format("xml").IsValid())
	assert.False(t, Format("").IsValid())
}
