// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

//go:generate go run gen-docs.go gen-docs --path ../../docs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	hoptracecmd "github.com/telekom/hoptrace/cmd"
)

func main() {
	execute()
}

func execute() {
	rootCmd := &cobra.Command{
		Use:   "gen-docs",
		Short: "Generates docs for hoptrace",
	}
	rootCmd.AddCommand(NewCmdGenDocs())

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewCmdGenDocs creates a new gen-docs command
func NewCmdGenDocs() *cobra.Command {
	var docPath, format string

	cmd := &cobra.Command{
		Use:   "gen-docs",
		Short: "Generate the CLI reference",
		Long:  `Generate the reference of the hoptrace commands and flags as markdown, man pages or yaml`,
		RunE:  runGenDocs(&docPath, &format),
	}

	cmd.PersistentFlags().StringVar(&docPath, "path", "docs", "directory path where the files will be created")
	cmd.PersistentFlags().StringVar(&format, "format", "markdown", "format of the reference, one of markdown, man or yaml")

	return cmd
}

// runGenDocs generates the reference files of the hoptrace command tree
func runGenDocs(path, format *string) func(cmd *cobra.Command, args []string) error {
	c := hoptracecmd.BuildCmd("")
	c.DisableAutoGenTag = true
	return func(_ *cobra.Command, _ []string) error {
		if err := os.MkdirAll(*path, 0o750); err != nil {
			return fmt.Errorf("failed to create docs directory: %w", err)
		}

		var err error
		switch *format {
		case "markdown":
			err = doc.GenMarkdownTree(c, *path)
		case "man":
			err = doc.GenManTree(c, &doc.GenManHeader{Title: "HOPTRACE", Section: "1"}, *path)
		case "yaml":
			err = doc.GenYamlTree(c, *path)
		default:
			return fmt.Errorf("unsupported docs format %q", *format)
		}
		if err != nil {
			return fmt.Errorf("failed to generate docs: %w", err)
		}
		return nil
	}
}
