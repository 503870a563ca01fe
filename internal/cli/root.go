// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package cli assembles the rigcheck command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/cli/backfillcmd"
	"github.com/tomtom215/rigcheck/internal/cli/common"
	"github.com/tomtom215/rigcheck/internal/cli/parsecmd"
	"github.com/tomtom215/rigcheck/internal/cli/resolvecmd"
	"github.com/tomtom215/rigcheck/internal/cli/scorecmd"
)

// NewRoot returns the `rigcheck` root command with every subcommand attached.
func NewRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "rigcheck",
		Short:         "Game hardware requirements and compatibility tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(common.ConfigFlag, "", "config file path (default: CONFIG_PATH or ./config.yaml)")

	root.AddCommand(parsecmd.New())
	root.AddCommand(resolvecmd.New())
	root.AddCommand(scorecmd.New())
	root.AddCommand(backfillcmd.New())
	root.AddCommand(newCompletion(root))
	return root
}

func newCompletion(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
}
