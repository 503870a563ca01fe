// Rigcheck - Game Catalog Hardware Compatibility
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigcheck

package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tomtom215/rigcheck/internal/config"
	"github.com/tomtom215/rigcheck/internal/logging"
	"github.com/tomtom215/rigcheck/internal/requirements"
)

// fieldText accepts a JSON string or number; curated files often write RAM
// as a bare 8 instead of "8 GB".
type fieldText string

func (f *fieldText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = fieldText(s)
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("fallback field must be string or number: %w", err)
		}
		*f = fieldText(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
}

// FallbackTier is one tier of a curated entry.
type FallbackTier struct {
	CPU     fieldText `json:"cpu"`
	GPU     fieldText `json:"gpu"`
	RAM     fieldText `json:"ram"`
	Storage fieldText `json:"storage"`
	OS      fieldText `json:"os"`
}

// FallbackEntry is one curated game. Recommended, when present, overrides
// individual minimum fields.
type FallbackEntry struct {
	FallbackTier
	Recommended *FallbackTier `json:"recommended"`
}

func (t FallbackTier) record() requirements.Record {
	rec := requirements.Record{
		CPU: requirements.StringPtr(string(t.CPU)),
		GPU: requirements.StringPtr(string(t.GPU)),
		OS:  requirements.StringPtr(string(t.OS)),
	}
	rec.SetRAM(string(t.RAM))
	rec.SetStorage(string(t.Storage))
	return rec
}

// Requirements converts the entry, defaulting recommended from minimum.
func (e FallbackEntry) Requirements() requirements.GameRequirements {
	minimum := e.FallbackTier.record()
	recommended := requirements.Record{}
	if e.Recommended != nil {
		recommended = requirements.MergeMissingFields(e.Recommended.record(), minimum)
	}
	return requirements.NewGameRequirements(minimum, recommended)
}

// FallbackTable is the curated name to requirements adapter.
type FallbackTable struct {
	exact      map[string]requirements.GameRequirements
	normalized map[string]string
}

// NewFallbackTable indexes entries by exact and normalized name. When two
// names normalize identically the lexically first one wins.
func NewFallbackTable(entries map[string]FallbackEntry) *FallbackTable {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &FallbackTable{
		exact:      make(map[string]requirements.GameRequirements, len(entries)),
		normalized: make(map[string]string, len(entries)),
	}
	for _, name := range names {
		reqs := entries[name].Requirements()
		if !reqs.HasData() {
			continue
		}
		t.exact[name] = reqs
		key := NormalizeName(name)
		if _, taken := t.normalized[key]; !taken && key != "" {
			t.normalized[key] = name
		}
	}
	return t
}

// ParseFallbackTable validates data against the fallback schema and builds a table.
func ParseFallbackTable(data []byte) (*FallbackTable, error) {
	if err := validateFallbackTable(data); err != nil {
		return nil, err
	}
	var entries map[string]FallbackEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode fallback table: %w", err)
	}
	return NewFallbackTable(entries), nil
}

// LoadFallbackFile reads a fallback table from disk.
func LoadFallbackFile(path string) (*FallbackTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback table: %w", err)
	}
	return ParseFallbackTable(data)
}

// LoadFallbackObject reads a fallback table from S3-compatible object storage.
func LoadFallbackObject(ctx context.Context, cfg config.ObjectStoreConfig) (*FallbackTable, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}

	obj, err := client.GetObject(ctx, cfg.Bucket, cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get fallback object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return nil, fmt.Errorf("fallback object %s/%s does not exist", cfg.Bucket, cfg.Object)
		}
		return nil, fmt.Errorf("read fallback object: %w", err)
	}
	return ParseFallbackTable(data)
}

// Fallback table locations.
const (
	FallbackSourceFile        = "file"
	FallbackSourceObjectStore = "objectstore"
	FallbackSourceNone        = "none"
)

// LoadFallback loads the table from the location cfg selects. An empty
// table is returned for source "none".
func LoadFallback(ctx context.Context, cfg config.FallbackConfig) (*FallbackTable, error) {
	switch cfg.Source {
	case FallbackSourceObjectStore:
		return LoadFallbackObject(ctx, cfg.ObjectStore)
	case FallbackSourceFile, "":
		if cfg.Path == "" {
			break
		}
		return LoadFallbackFile(cfg.Path)
	case FallbackSourceNone:
	default:
		return nil, fmt.Errorf("unknown fallback source %q", cfg.Source)
	}
	logging.Warn().Msg("No fallback table configured; fallback adapter is empty")
	return NewFallbackTable(nil), nil
}

// Name implements Adapter.
func (t *FallbackTable) Name() string {
	return NameFallback
}

// Len returns the number of games with data.
func (t *FallbackTable) Len() int {
	return len(t.exact)
}

// Lookup matches q.Name exactly, then by normalized name.
func (t *FallbackTable) Lookup(_ context.Context, q Query) (*requirements.GameRequirements, error) {
	name := strings.TrimSpace(q.Name)
	if reqs, ok := t.exact[name]; ok {
		out := reqs.Clone()
		return &out, nil
	}
	if key, ok := t.normalized[NormalizeName(name)]; ok {
		out := t.exact[key].Clone()
		return &out, nil
	}
	return nil, nil
}
