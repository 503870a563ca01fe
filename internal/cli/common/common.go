// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

// Package common holds helpers shared by the rigcheck subcommands: config
// loading from the persistent --config flag, logging setup and JSON output.
package common

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/rigcheck/internal/app"
	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
)

// ConfigFlag is the persistent flag naming the YAML config file.
const ConfigFlag = "config"

// LoadConfig loads configuration for cmd. An explicit --config wins over
// CONFIG_PATH and the default search paths.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	var path string
	if f := cmd.Flag(ConfigFlag); f != nil {
		path = f.Value.String()
	}
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// SetupLogging sends logs to the command's stderr so stdout stays clean
// for JSON output.
func SetupLogging(cmd *cobra.Command, cfg *config.Config) {
	logging.Init(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		Output:     cmd.ErrOrStderr(),
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
}

// OpenApp loads configuration, sets up logging and builds the application
// components. The caller must Close the returned App.
func OpenApp(ctx context.Context, cmd *cobra.Command) (*config.Config, *app.App, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	SetupLogging(cmd, cfg)

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, a, nil
}

// CloseApp closes a and reports a failure on the command's stderr.
func CloseApp(cmd *cobra.Command, a *app.App) {
	if err := a.Close(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "close:", err)
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
