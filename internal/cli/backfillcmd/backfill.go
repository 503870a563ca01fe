// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package backfillcmd implements `rigcheck backfill`, a one-shot run of the
// batch requirement fill job.
package backfillcmd

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/cli/common"
)

// New returns the `rigcheck backfill` command.
func New() *cobra.Command {
	var categories []string
	cmd := &cobra.Command{
		Use:   "backfill [--category name]...",
		Short: "Fill the requirement cache for catalog categories",
		Long: "Backfill resolves every game of the given categories, or of the\n" +
			"configured backfill categories, or of the whole catalog, and prints\n" +
			"the final progress of each category as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, a, err := common.OpenApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer common.CloseApp(cmd, a)

			if len(categories) == 0 {
				categories = cfg.Backfill.Categories
			}
			if len(categories) == 0 {
				if categories, err = a.Catalog.Categories(ctx); err != nil {
					return err
				}
			}

			results := make([]backfill.Progress, 0, len(categories))
			var runErr error
			for _, category := range categories {
				p, err := a.Job.Run(ctx, category)
				results = append(results, p)
				if err != nil {
					runErr = err
					break
				}
			}
			if err := common.WriteJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category to fill (repeatable)")
	return cmd
}
