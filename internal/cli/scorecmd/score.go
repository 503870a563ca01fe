// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package scorecmd implements `rigcheck score`, which rates a hardware
// profile against the requirements of one catalog game.
package scorecmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/cli/common"
	"github.com/tomtom215/rigcheck/internal/compat"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/metrics"
	"github.com/tomtom215/rigcheck/internal/models"
)

// New returns the `rigcheck score` command.
func New() *cobra.Command {
	var (
		gameID  string
		profile compat.Profile
	)
	cmd := &cobra.Command{
		Use:   "score --game <id> [--cpu ...] [--gpu ...] [--ram GB] [--storage GB] [--os ...]",
		Short: "Score a hardware profile against a game's requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if profile.RAMGB < 0 || profile.StorageGB < 0 {
				return errors.New("--ram and --storage must not be negative")
			}

			ctx := logging.ContextWithGameID(cmd.Context(), gameID)
			cfg, a, err := common.OpenApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer common.CloseApp(cmd, a)

			game, err := a.Catalog.Get(ctx, gameID)
			if err != nil {
				return fmt.Errorf("look up %s: %w", gameID, err)
			}
			entry, err := a.Resolver.Resolve(ctx, game, false)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", gameID, err)
			}

			weights := compat.WeightsFromConfig(cfg.Scoring.Weights)
			result := compat.Score(profile, entry.Requirements, &weights)
			metrics.CompatScores.WithLabelValues(string(result.Tier)).Inc()

			out := models.CompatGame{
				GameID: game.ID,
				Name:   game.Name,
				Source: entry.Source,
				Result: &result,
			}
			if entry.Requirements == nil || !entry.Requirements.HasData() {
				out.Note = models.NoRequirementsNote
			}
			return common.WriteJSON(cmd.OutOrStdout(), out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gameID, "game", "", "catalog game id")
	f.StringVar(&profile.CPU, "cpu", "", "processor model, e.g. \"Intel Core i7-9700K\"")
	f.StringVar(&profile.GPU, "gpu", "", "graphics card model, e.g. \"NVIDIA GeForce RTX 2070\"")
	f.Float64Var(&profile.RAMGB, "ram", 0, "installed memory in GB")
	f.Float64Var(&profile.StorageGB, "storage", 0, "free storage in GB")
	f.StringVar(&profile.OS, "os", "", "operating system, e.g. \"Windows 10\"")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}
