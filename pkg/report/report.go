// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Format is the output format of a report.
type Format string

// Format constants for the report.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats are all supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

func (f Format) String() string {
	return string(f)
}

func (f Format) IsValid() bool {
	return slices.Contains(Formats, f)
}

// tableHeaders are the column titles of the table.
var tableHeaders = []any{"№", "IP", "AS", "Country", "Provider"}

// Column layout of the table. All columns are left-justified and never truncated.
const (
	headerLayout = "%-1s %-20s %-9s %-11s %-20s\n"
	rowLayout    = "%-1d %-20s %-9s %-11s %-20s\n"
)

// Row is one enriched hop.
type Row struct {
	// Index is the 1-based position of the hop on the path.
	Index int `json:"index" yaml:"index"`
	// IP is the address of the hop.
	IP string `json:"ip" yaml:"ip"`
	// AS is the autonomous system number of the hop.
	AS string `json:"as" yaml:"as"`
	// Country is the country code of the hop.
	Country string `json:"country" yaml:"country"`
	// Provider is the organization operating the hop.
	Provider string `json:"provider" yaml:"provider"`
}

// Report is the enriched path to a target.
type Report struct {
	// Target is the host as given by the user.
	Target string `json:"target" yaml:"target"`
	// Address is the resolved address of the target.
	Address string `json:"address" yaml:"address"`
	// Hops are the enriched hops in path order.
	Hops []Row `json:"hops" yaml:"hops"`
}

// Write renders the report to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatTable, "":
		return WriteTable(w, r.Hops)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}

// WriteTable prints the rows as fixed-width table in the given order, header first.
func WriteTable(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintf(w, headerLayout, tableHeaders...); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, rowLayout, r.Index, r.IP, r.AS, r.Country, r.Provider); err != nil {
			return err
		}
	}
	return nil
}
