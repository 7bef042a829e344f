// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mapper

import (
	"encoding/json"
	"os"
)

// Entry is one row of the explicit mapping table: a default target name,
// optionally overridden per base terrain (§6, Inputs #3).
type Entry struct {
	Default    string            `json:"default"`
	PerTerrain map[string]string `json:"perTerrain,omitempty"`
}

// Table is the explicit source-token-to-target-name mapping, tier 1 of
// the resolution algorithm (§4.4).
type Table map[string]Entry

// LoadMappingFile reads an explicit mapping document. A missing file is
// not an error — the explicit-mapping tier is optional.
func LoadMappingFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, nil
		}
		return nil, err
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Resolve returns the target name the table specifies for sourceToken on
// baseTerrain, preferring a per-terrain override over the default.
func (t Table) Resolve(sourceToken, baseTerrain string) (string, bool) {
	entry, ok := t[sourceToken]
	if !ok {
		return "", false
	}
	if override, ok := entry.PerTerrain[baseTerrain]; ok {
		return override, true
	}
	if entry.Default != "" {
		return entry.Default, true
	}
	return "", false
}
