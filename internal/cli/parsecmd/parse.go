// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package parsecmd implements `rigcheck parse`, which runs the requirement
// text parser over a file or standard input without any network access.
package parsecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/cli/common"
	"github.com/tomtom215/rigcheck/internal/models"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// maxInput bounds how much text is read.
const maxInput = 1 << 20

// New returns the `rigcheck parse` command.
func New() *cobra.Command {
	var tiers bool
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse free-text system requirements into a structured record",
		Long: "Parse reads requirement text (HTML or plain) from a file, or from\n" +
			"standard input when the argument is '-' or missing, and prints the\n" +
			"extracted record as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out := models.ParsedRequirements{Record: requirements.ParseText(text)}
			if tiers {
				minimum, recommended := requirements.SplitTiers(text)
				if recommended != "" {
					reqs := requirements.ParseBlocks(minimum, recommended)
					out.Tiers = &reqs
				}
			}
			return common.WriteJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&tiers, "tiers", true, "also split minimum and recommended sections when present")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxInput+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxInput {
		return "", fmt.Errorf("input exceeds %d bytes", maxInput)
	}
	return string(data), nil
}
