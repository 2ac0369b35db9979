// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/telekom/hoptrace/pkg/report"
)

// NewCmdSchema creates the command printing the schema of the json and yaml reports
func NewCmdSchema() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI schema of the json and yaml reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteSchema(cmd.OutOrStdout())
		},
	}
}
