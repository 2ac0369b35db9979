// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCmdRoot creates a new root command
func NewCmdRoot(version string) *cobra.Command {
	return newCmdRoot(version, defaultDependencies)
}

func newCmdRoot(version string, deps dependencies) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "hoptrace <host>",
		Short: "Hoptrace, the enriched trace-route",
		Long: "Hoptrace traces the route to a host and shows the autonomous system,\n" +
			"country and provider of every hop on the path.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(cfgFile)
		},
		RunE: run(version, deps),
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.hoptrace.yaml)")
	registerFlags(rootCmd)

	return rootCmd
}

// Execute adds all child commands to the root command
// and executes the cmd tree
func Execute(version string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := BuildCmd(version)

	err := cmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "hoptrace: %v\n", err)
		os.Exit(1)
	}
}

func BuildCmd(version string) *cobra.Command {
	cmd := NewCmdRoot(version)
	cmd.AddCommand(NewCmdSchema())
	return cmd
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search config in home directory with name ".hoptrace" (without an extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hoptrace")
	}

	viper.SetOptions(viper.ExperimentalBindStruct())
	viper.SetEnvPrefix("hoptrace")
	dotreplacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(dotreplacer)
	viper.AutomaticEnv()
	_ = viper.BindEnv("log.level", "HOPTRACE_LOG_LEVEL", "LOG_LEVEL")
	_ = viper.BindEnv("log.format", "HOPTRACE_LOG_FORMAT", "LOG_FORMAT")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
