// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/configcraft/configcraft/pkg/values"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or heal the configuration file for a profile",
		Long: `Load the profile's configuration file, or generate it from schema defaults
when missing. Either way the file is rewritten in canonical form: missing
options are filled in with defaults and documentation comments are refreshed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := initializedManager(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("Configuration ready at %s\n", m.Path())
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <section> <option>",
		Short: "Print the current value of an option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := initializedManager(cmd)
			if err != nil {
				return err
			}
			v, err := m.GetValue(args[0], args[1])
			if err != nil {
				return err
			}
			if v.IsNull() {
				fmt.Println("null")
				return nil
			}
			fmt.Println(values.EncodeIndent(v))
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <option> <literal>",
		Short: "Set an option and write the file immediately",
		Long: `Set an option to a literal value and persist the change. The literal uses
the configuration file notation: quoted strings, bare numbers, true/false,
[...] lists, {...} dicts, or null. The value is validated against the schema
before anything is written.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := initializedManager(cmd)
			if err != nil {
				return err
			}
			section, option := args[0], args[1]

			b, ok := m.Schema().Lookup(section, option)
			if !ok {
				return fmt.Errorf("option %q in section %q does not exist", option, section)
			}
			v, err := values.Decode(args[2], b.Kinds())
			if err != nil {
				return err
			}
			if err := m.SetValue(cmd.Context(), section, option, v); err != nil {
				return err
			}
			fmt.Printf("Set %s.%s and wrote %s\n", section, option, m.Path())
			return nil
		},
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			profile, _ := cmd.Flags().GetString("profile")
			fmt.Println(filepath.Join(dir, profile+".ini"))
			return nil
		},
	}
}
