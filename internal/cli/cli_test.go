// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/rigcheck/internal/backfill"
	"github.com/tomtom215/rigcheck/internal/cache"
	"github.com/tomtom215/rigcheck/internal/compat"
	"github.com/tomtom215/rigcheck/internal/models"
)

// writeConfig lays out an offline catalog, fallback table and config file.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	catalogDir := filepath.Join(dir, "catalog")
	require.NoError(t, os.MkdirAll(catalogDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "action.json"),
		[]byte(`[{"id":"doom","name":"DOOM"},{"id":"obscure","name":"Obscure Indie"}]`), 0o600))

	fallbackPath := filepath.Join(dir, "fallback.json")
	require.NoError(t, os.WriteFile(fallbackPath,
		[]byte(`{"DOOM": {"cpu": "Intel Core i5-2500K", "ram": "8 GB", "os": "Windows 10"}}`), 0o600))

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf(`
logging:
  level: error
catalog:
  backend: file
  dir: %q
cache:
  backend: memory
steam:
  enabled: false
rawg:
  enabled: false
fallback:
  source: file
  path: %q
backfill:
  item_delay: 0s
  batch_delay: 0s
`, catalogDir, fallbackPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return cfgPath
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRoot("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParse_Stdin(t *testing.T) {
	out, err := execute(t, "Processor: Intel Core i5-2500K Graphics: NVIDIA GTX 660 Memory: 8 GB", "parse")
	require.NoError(t, err)

	var got models.ParsedRequirements
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Record.RAMGB)
	assert.Equal(t, 8.0, *got.Record.RAMGB)
	require.NotNil(t, got.Record.GPU)
	assert.Contains(t, *got.Record.GPU, "GTX 660")
	assert.Nil(t, got.Tiers)
}

func TestParse_FileWithTiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.txt")
	text := "Minimum: OS: Windows 10 Processor: Intel Core i5-4460 Memory: 8 GB RAM Recommended: Memory: 16 GB RAM"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	out, err := execute(t, "", "parse", path)
	require.NoError(t, err)

	var got models.ParsedRequirements
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Tiers)
	require.NotNil(t, got.Tiers.Recommended.RAMGB)
	assert.Equal(t, 16.0, *got.Tiers.Recommended.RAMGB)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := execute(t, "", "parse", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "open input")
}

func TestResolve(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "", "--config", cfgPath, "resolve", "doom")
	require.NoError(t, err)

	var got models.GameRequirements
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "doom", got.GameID)
	assert.Equal(t, cache.SourceFallback, got.Source)
	require.NotNil(t, got.Requirements)
	require.NotNil(t, got.Requirements.Minimum.RAMGB)
	assert.Equal(t, 8.0, *got.Requirements.Minimum.RAMGB)
}

func TestResolve_UnknownGame(t *testing.T) {
	cfgPath := writeConfig(t)

	_, err := execute(t, "", "--config", cfgPath, "resolve", "quake")
	assert.ErrorContains(t, err, "game not found")
}

func TestScore(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "", "--config", cfgPath, "score",
		"--game", "doom", "--cpu", "Intel Core i7-9700K", "--ram", "16", "--os", "Windows 11")
	require.NoError(t, err)

	var got models.CompatGame
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Result)
	assert.Equal(t, compat.DefaultWeights(), got.Result.Weights)
	assert.Equal(t, 1.0, got.Result.Breakdown.RAMScore)
	assert.Empty(t, got.Note)
}

func TestScore_NoRequirements(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "", "--config", cfgPath, "score", "--game", "obscure", "--ram", "8")
	require.NoError(t, err)

	var got models.CompatGame
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, cache.SourceNone, got.Source)
	assert.Equal(t, models.NoRequirementsNote, got.Note)
}

func TestScore_RequiresGame(t *testing.T) {
	_, err := execute(t, "", "score", "--ram", "8")
	assert.ErrorContains(t, err, "game")
}

func TestBackfill(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "", "--config", cfgPath, "backfill", "--category", "action")
	require.NoError(t, err)

	var got []backfill.Progress
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "action", got[0].Category)
	assert.Equal(t, 2, got[0].Total)
	assert.Equal(t, 1, got[0].Resolved)
	assert.Equal(t, 1, got[0].Empty)
	assert.True(t, got[0].Done)
}

func TestBackfill_DefaultsToCatalogCategories(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "", "--config", cfgPath, "backfill")
	require.NoError(t, err)
	assert.Contains(t, out, `"action"`)
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "rigcheck")

	_, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
