// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the configcraft command-line application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/configcraft/configcraft/pkg/document"
	"github.com/configcraft/configcraft/pkg/logger"
	"github.com/configcraft/configcraft/pkg/manager"
)

var rootCmd = &cobra.Command{
	Use:               "configcraft",
	DisableAutoGenTag: true,
	Short:             "Manage typed configuration files from a declared schema",
	Long: `configcraft manages configuration files whose sections, options, types,
defaults, and constraints are declared up front in a schema file.

Files are generated with documentation comments, healed when options are
missing, validated on every read and write, and always written atomically.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
}

// registry shares one manager per profile across subcommands.
var registry = manager.NewRegistry()

// NewRootCmd creates a new root command for the configcraft CLI.
func NewRootCmd() *cobra.Command {
	// Add persistent flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	if err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.PersistentFlags().StringP("schema", "s", "", "Path to the schema file (YAML)")
	rootCmd.PersistentFlags().StringP("dir", "d", defaultConfigDir(), "Configuration directory")
	rootCmd.PersistentFlags().StringP("profile", "p", "default", "Configuration profile name")
	rootCmd.PersistentFlags().String("encoding", "", "File character encoding (IANA name, default UTF-8)")
	rootCmd.PersistentFlags().Bool("warn-unknown", false, "Log entries found in the file but absent from the schema")

	// Add subcommands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Silence printing the usage on error
	rootCmd.SilenceUsage = true

	return rootCmd
}

func defaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "configcraft")
}

// initializedManager loads the schema file and returns the profile's shared
// manager, initialized against the configuration directory.
func initializedManager(cmd *cobra.Command) (*manager.Manager, error) {
	schemaPath, _ := cmd.Flags().GetString("schema")
	dir, _ := cmd.Flags().GetString("dir")
	profile, _ := cmd.Flags().GetString("profile")
	encoding, _ := cmd.Flags().GetString("encoding")
	warnUnknown, _ := cmd.Flags().GetBool("warn-unknown")

	if schemaPath == "" {
		return nil, fmt.Errorf("a schema file is required: pass --schema")
	}
	s, err := LoadSchemaFile(schemaPath)
	if err != nil {
		return nil, err
	}

	policy := document.UnknownKeyIgnore
	if warnUnknown {
		policy = document.UnknownKeyWarn
	}

	m, err := registry.GetOrCreate(profile, s, manager.WithUnknownKeyPolicy(policy))
	if err != nil {
		return nil, err
	}
	if err := m.Initialize(cmd.Context(), profile, dir, encoding); err != nil {
		return nil, err
	}
	return m, nil
}
