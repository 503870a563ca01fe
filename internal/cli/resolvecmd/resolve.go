// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package resolvecmd implements `rigcheck resolve`, which resolves the
// hardware requirements of one catalog game through the configured sources
// and cache.
package resolvecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/cli/common"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/models"
)

// New returns the `rigcheck resolve` command.
func New() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "resolve <game-id>",
		Short: "Resolve the hardware requirements of a catalog game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.ContextWithGameID(cmd.Context(), args[0])
			_, a, err := common.OpenApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer common.CloseApp(cmd, a)

			game, err := a.Catalog.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("look up %s: %w", args[0], err)
			}
			entry, err := a.Resolver.Resolve(ctx, game, force)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			return common.WriteJSON(cmd.OutOrStdout(), models.NewGameRequirements(game, entry))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "bypass the cache and query the sources")
	return cmd
}
