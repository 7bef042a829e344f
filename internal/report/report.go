// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package report

import (
	"encoding/json"

	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/mapper"
)

// AssetCounts tallies how many tokens landed in each resolution tier
// (§4.4, §6 Outputs #3).
type AssetCounts struct {
	Explicit         int `json:"explicit"`
	CategoryFallback int `json:"categoryFallback"`
	KeywordFallback  int `json:"keywordFallback"`
	Skipped          int `json:"skipped"`
}

// Report is the per-map run report (§6 Outputs #3): counts of
// resolved/fallback/skipped assets, control-point and spawn counts, the
// chosen orientation remap, the chosen base terrain, and any notes
// accumulated along the way.
type Report struct {
	Map              string            `json:"map"`
	BaseTerrain      string            `json:"baseTerrain"`
	Orientation      coords.AxisRemap_e `json:"orientation"`
	ControlPoints    int               `json:"controlPoints"`
	Headquarters     int               `json:"headquarters"`
	SpawnPoints      int               `json:"spawnPoints"`
	VehicleSpawners  int               `json:"vehicleSpawners"`
	StaticObjects    int               `json:"staticObjects"`
	AssetResolution  AssetCounts       `json:"assetResolution"`
	HeightClamps     int               `json:"heightClamps"`
	Resolutions      []mapper.Resolution `json:"resolutions,omitempty"`
	Notes            []string          `json:"notes,omitempty"`
}

// New builds an empty report for one map/terrain pair; callers fold
// results into it as the pipeline runs.
func New(mapName, baseTerrain string) *Report {
	return &Report{Map: mapName, BaseTerrain: baseTerrain}
}

// AddResolution folds one mapper.Resolution into the report's per-tier
// counts and keeps the resolution itself for the detailed listing.
func (r *Report) AddResolution(res mapper.Resolution) {
	r.Resolutions = append(r.Resolutions, res)
	switch res.Tier {
	case mapper.ExplicitMapping:
		r.AssetResolution.Explicit++
	case mapper.CategoryFallback:
		r.AssetResolution.CategoryFallback++
	case mapper.KeywordFallback:
		r.AssetResolution.KeywordFallback++
	default:
		r.AssetResolution.Skipped++
	}
	if res.Note != "" {
		r.Notes = append(r.Notes, res.SourceToken+": "+res.Note)
	}
}

// AddNote appends a free-form note (bounds clamps, fallback-tier usage,
// anything else §4's "surfaced but never fatal" category covers).
func (r *Report) AddNote(note string) {
	r.Notes = append(r.Notes, note)
}

// NoteClamp records one Height Snapper bounds-clamp event (§4.8, §7
// BoundsClamp).
func (r *Report) NoteClamp(objectName, note string) {
	r.HeightClamps++
	r.AddNote(objectName + ": " + note)
}

// MarshalIndent renders the report as indented JSON, the shape every CLI
// command writes to the report path (§6 Outputs #3).
func (r *Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
