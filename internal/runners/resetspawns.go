// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runners

import (
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/mapper"
	"github.com/portalconv/portalconv/internal/report"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/sourcemap"
	"github.com/portalconv/portalconv/internal/terrain"
)

// ConvertResettingSpawns runs the same pipeline as Convert, except every
// headquarters' spawn points are first replaced by a fresh circular
// arrangement at radiusMeters (§11 Open Question: spawn layout is carried
// through verbatim by default; a circular reset is available only via this
// explicit opt-in path, never the default Convert).
func (p *Pipeline) ConvertResettingSpawns(sourceDir, mapName string, terr *terrain.TargetTerrain, radiusMeters float64) (*scene.Scene, *report.Report, error) {
	rep := report.New(mapName, terr.Name)

	engine, err := p.findEngine(sourceDir)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Parsing, Err: err}
	}
	sm, err := engine.Parse(sourceDir)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Parsing, Err: err}
	}
	sourcemap.ResetSpawnsCircular(sm, radiusMeters)

	rep.ControlPoints = len(sm.ControlPoints)
	rep.SpawnPoints = len(sm.SpawnPoints)
	rep.VehicleSpawners = len(sm.VehicleSpawners)
	rep.StaticObjects = len(sm.StaticObjects)
	for _, cp := range sm.ControlPoints {
		if cp.Role.IsHeadquarters() {
			rep.Headquarters++
		}
	}

	m := &mapper.Mapper{
		Catalog:       p.Catalog,
		Explicit:      p.Mapping,
		BaseTerrain:   terr.Name,
		MapThemeWords: themeWords(sm.Name),
	}
	resolved := p.resolveStatics(m, rep, sm.StaticObjects)
	p.resolveVehicles(sm.VehicleSpawners, rep)

	remap := coords.SolveOrientation(sm.Bounds, terr.Bounds().To2D(), p.Config.Tolerance.OrientationTie)
	rebaser := coords.NewRebaser(sm.Bounds, terr.Center(), remap)
	rep.Orientation = remap
	rebaseSourceMap(sm, resolved, rebaser)

	p.snap(sm, resolved, terr, rep)

	sc, err := p.emit(sm, resolved, terr)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Emitting, Err: err}
	}

	return sc, rep, nil
}
