// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"encoding/json"
	"os"
)

// rawConstant and rawProperty mirror the catalog JSON document's nested
// shapes (§6, Inputs #2). Values are carried through but unused by the
// conversion pipeline itself.
type rawConstant struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type rawProperty struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Default any    `json:"default"`
}

type rawAssetType struct {
	Type               string        `json:"type"`
	Directory          string        `json:"directory"`
	LevelRestrictions  []string      `json:"levelRestrictions"`
	Constants          []rawConstant `json:"constants"`
	Properties         []rawProperty `json:"properties"`
}

type rawCatalog struct {
	AssetTypes []rawAssetType `json:"AssetTypes"`
}

// LoadFile reads and parses the target editor's asset-type catalog JSON
// document and builds an in-memory, read-only Catalog (§4.3).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses a catalog document already read into memory.
func Load(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	refs := make([]AssetRef, 0, len(raw.AssetTypes))
	for _, at := range raw.AssetTypes {
		restrictions := make(map[string]bool, len(at.LevelRestrictions))
		for _, r := range at.LevelRestrictions {
			restrictions[r] = true
		}
		refs = append(refs, AssetRef{
			SourceToken:  at.Type,
			TargetType:   at.Type,
			Directory:    at.Directory,
			Category:     ClassifyDirectory(at.Directory),
			Restrictions: restrictions,
		})
	}

	return newCatalog(refs)
}
