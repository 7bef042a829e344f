// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"os"
	"path/filepath"

	"github.com/portalconv/portalconv/internal/sourcemap"
)

// Engine implements sourceengine.Engine for the Refractor engine's
// conventional map directory layout (§4.2).
type Engine struct {
	// BoundsBufferMeters inflates SourceMap.bounds around control points
	// and vehicle spawners (§4.2). Callers normally pass
	// config.Gameplay_t.BoundsBufferMeters.
	BoundsBufferMeters float64
}

func New(boundsBufferMeters float64) *Engine {
	return &Engine{BoundsBufferMeters: boundsBufferMeters}
}

func (e *Engine) Name() string {
	return "refractor"
}

// CanParse reports whether dir contains an Init.con file, the one file
// every Refractor map directory is guaranteed to have.
func (e *Engine) CanParse(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "Init.con"))
	return err == nil
}

// Parse assembles a SourceMap from dir's conventional file layout (§4.2).
func (e *Engine) Parse(dir string) (*sourcemap.SourceMap, error) {
	controlPoints, canBeCaptured, err := parseControlPoints(dir)
	if err != nil {
		return nil, err
	}
	sourcemap.AssignHeadquarters(controlPoints, canBeCaptured)

	spawnPoints, err := parseSoldierSpawns(dir, controlPoints)
	if err != nil {
		return nil, err
	}

	vehicleSpawners, err := parseObjectSpawns(dir)
	if err != nil {
		return nil, err
	}

	staticObjects, err := parseStaticObjects(dir)
	if err != nil {
		return nil, err
	}

	rawHeightmap, err := readHeightmap(dir)
	if err != nil {
		return nil, err
	}

	bounds := sourcemap.ComputeBounds(controlPoints, vehicleSpawners, e.BoundsBufferMeters)

	return &sourcemap.SourceMap{
		Name:            filepath.Base(dir),
		Bounds:          bounds,
		ControlPoints:   controlPoints,
		SpawnPoints:     spawnPoints,
		VehicleSpawners: vehicleSpawners,
		StaticObjects:   staticObjects,
		RawHeightmap:    rawHeightmap,
	}, nil
}

// readHeightmap carries Heightdata/HeightMap.raw through unparsed (§4.2).
// A missing file is not an error — not every map ships custom heightdata.
func readHeightmap(dir string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, "Heightdata", "HeightMap.raw"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
