// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runners

import (
	"fmt"
	"sort"
	"strings"

	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/catalog"
	"github.com/portalconv/portalconv/internal/config"
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/mapper"
	"github.com/portalconv/portalconv/internal/report"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/snapper"
	"github.com/portalconv/portalconv/internal/sourceengine"
	"github.com/portalconv/portalconv/internal/sourcemap"
	"github.com/portalconv/portalconv/internal/terrain"
)

// Pipeline holds the process-lifetime, read-only dependencies every map
// conversion shares: the engine registry, the asset catalog, the explicit
// mapping table, and the clearance/tolerance/gameplay constants (§5,
// §9 "global mutable tables -> confine to a single process-lifetime cache
// object constructed at CLI start and passed to stages").
type Pipeline struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Mapping mapper.Table
	Engines []sourceengine.Engine
}

// New builds a Pipeline. Engines are tried in order; the first whose
// CanParse(sourceDir) reports true drives the parse.
func New(cfg *config.Config, cat *catalog.Catalog, mapping mapper.Table, engines ...sourceengine.Engine) *Pipeline {
	return &Pipeline{Config: cfg, Catalog: cat, Mapping: mapping, Engines: engines}
}

func (p *Pipeline) findEngine(dir string) (sourceengine.Engine, error) {
	for _, e := range p.Engines {
		if e.CanParse(dir) {
			return e, nil
		}
	}
	return nil, cerrs.ErrInputNotFound
}

// airVehicles names the target-vehicle enum entries that snap with the
// VehicleAir clearance instead of VehicleGround (§4.8): rotary and fixed-
// wing aircraft.
var airVehicles = map[string]bool{
	"UH60": true, "Eurocopter": true, "AH64": true,
	"JAS39": true, "F22": true, "F16": true, "SU57": true,
}

// Convert runs one map through Parsing -> Mapping -> Rebasing -> Snapping
// -> Emitting (§4 "State machines"). Packaging is a separate step (see
// internal/packager) since only the export/multi-experience CLI verbs
// need it. Any fatal error is returned wrapped in a *StageError naming the
// map and the state in which it occurred.
func (p *Pipeline) Convert(sourceDir, mapName string, terr *terrain.TargetTerrain) (*scene.Scene, *report.Report, error) {
	rep := report.New(mapName, terr.Name)

	// Parsing
	engine, err := p.findEngine(sourceDir)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Parsing, Err: err}
	}
	sm, err := engine.Parse(sourceDir)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Parsing, Err: err}
	}
	rep.ControlPoints = len(sm.ControlPoints)
	rep.SpawnPoints = len(sm.SpawnPoints)
	rep.VehicleSpawners = len(sm.VehicleSpawners)
	rep.StaticObjects = len(sm.StaticObjects)
	for _, cp := range sm.ControlPoints {
		if cp.Role.IsHeadquarters() {
			rep.Headquarters++
		}
	}

	// Mapping
	m := &mapper.Mapper{
		Catalog:       p.Catalog,
		Explicit:      p.Mapping,
		BaseTerrain:   terr.Name,
		MapThemeWords: themeWords(sm.Name),
	}
	resolved := p.resolveStatics(m, rep, sm.StaticObjects)
	p.resolveVehicles(sm.VehicleSpawners, rep)

	// Rebasing
	remap := coords.SolveOrientation(sm.Bounds, terr.Bounds().To2D(), p.Config.Tolerance.OrientationTie)
	rebaser := coords.NewRebaser(sm.Bounds, terr.Center(), remap)
	rep.Orientation = remap
	rebaseSourceMap(sm, resolved, rebaser)

	// Snapping
	p.snap(sm, resolved, terr, rep)

	// Emitting
	sc, err := p.emit(sm, resolved, terr)
	if err != nil {
		return nil, rep, &StageError{Map: mapName, State: Emitting, Err: err}
	}

	return sc, rep, nil
}

// resolvedStatic pairs a source static object with its mapper resolution.
type resolvedStatic struct {
	obj    *sourcemap.PlacedObject
	target catalog.AssetRef
}

func (p *Pipeline) resolveStatics(m *mapper.Mapper, rep *report.Report, objs []*sourcemap.PlacedObject) []resolvedStatic {
	var out []resolvedStatic
	for _, obj := range objs {
		res := m.Resolve(obj.SourceToken)
		rep.AddResolution(res)
		if res.Tier == mapper.Skip || res.ChosenTarget == "" {
			continue
		}
		ref, ok := p.Catalog.ByName(res.ChosenTarget)
		if !ok {
			ref = catalog.AssetRef{TargetType: res.ChosenTarget, Category: catalog.Prop}
		}
		out = append(out, resolvedStatic{obj: obj, target: ref})
	}
	return out
}

// resolveVehicles applies the explicit mapping table to vehicle spawner
// templates (overriding the parse-time guess against the fixed 16-entry
// enum) and records an unresolved spawner as a mapping miss rather than
// aborting the run (§4.4, §7 MappingMiss).
func (p *Pipeline) resolveVehicles(spawners []*sourcemap.VehicleSpawner, rep *report.Report) {
	for _, vs := range spawners {
		if target, ok := p.Mapping.Resolve(vs.SourceClass, ""); ok {
			if idx := catalog.TargetVehicleIndex(target); idx >= 0 {
				vs.TargetVehicleIndex = idx
			}
		}
		if vs.TargetVehicleIndex < 0 {
			rep.AddNote(fmt.Sprintf("vehicle spawner %q: no target-vehicle enum match, skipped", vs.SourceClass))
		}
	}
}

// themeWords derives tie-break keywords from a source map's own name
// (§4.4 tie-breaking: "prefer assets whose name contains a known
// map-theme keyword (derived from source map name if present)").
func themeWords(mapName string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range mapName {
		switch {
		case r == '_' || r == '-' || r == ' ' || (r >= '0' && r <= '9'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

// rebaseSourceMap applies the Coordinate Rebaser to every object in sm and
// its resolved statics, in place (§4.6).
func rebaseSourceMap(sm *sourcemap.SourceMap, resolved []resolvedStatic, rebaser coords.Rebaser) {
	for _, cp := range sm.ControlPoints {
		cp.Position = rebaser.Rebase(cp.Position)
	}
	for _, sp := range sm.SpawnPoints {
		sp.Position = rebaser.Rebase(sp.Position)
		sp.Rotation = rebaser.RebaseRotation(sp.Rotation)
	}
	for _, vs := range sm.VehicleSpawners {
		vs.Position = rebaser.Rebase(vs.Position)
		vs.Rotation = rebaser.RebaseRotation(vs.Rotation)
	}
	for _, rs := range resolved {
		rs.obj.Position = rebaser.Rebase(rs.obj.Position)
		rs.obj.Rotation = rebaser.RebaseRotation(rs.obj.Rotation)
	}
}

// snap applies the Height Snapper's class-dependent clearance to every
// placed object (§4.8), recording any bounds-clamp event in rep.
func (p *Pipeline) snap(sm *sourcemap.SourceMap, resolved []resolvedStatic, terr *terrain.TargetTerrain, rep *report.Report) {
	tol := p.Config.Tolerance.HeightSnap
	clearance := p.Config.Clearance

	for _, cp := range sm.ControlPoints {
		class := snapper.ClassCapturePoint
		if cp.Role.IsHeadquarters() {
			class = snapper.ClassHeadquarters
		}
		newPos, r := snapper.SnapPoint(terr, clearance, class, cp.Position, tol)
		cp.Position = newPos
		if r.Clamped {
			rep.NoteClamp(cp.Name, r.Note)
		}
	}
	for _, sp := range sm.SpawnPoints {
		newPos, r := snapper.SnapPoint(terr, clearance, snapper.ClassSpawnPoint, sp.Position, tol)
		sp.Position = newPos
		if r.Clamped {
			rep.NoteClamp("spawn point", r.Note)
		}
	}
	for _, vs := range sm.VehicleSpawners {
		class := snapper.ClassVehicleGround
		if idx := vs.TargetVehicleIndex; idx >= 0 && airVehicles[catalog.TargetVehicles[idx]] {
			class = snapper.ClassVehicleAir
		}
		newPos, r := snapper.SnapPoint(terr, clearance, class, vs.Position, tol)
		vs.Position = newPos
		if r.Clamped {
			rep.NoteClamp(vs.SourceClass, r.Note)
		}
	}
	for _, rs := range resolved {
		class := snapper.ClassProp
		switch rs.target.Category {
		case catalog.Tree:
			class = snapper.ClassTree
		case catalog.Building:
			class = snapper.ClassBuilding
		}
		newPos, r := snapper.SnapPoint(terr, clearance, class, rs.obj.Position, tol)
		rs.obj.Position = newPos
		if r.Clamped {
			rep.NoteClamp(rs.obj.SourceToken, r.Note)
		}
	}
}

// emit assembles the Scene from a rebased, snapped SourceMap (§4.9). It
// enforces the exactly-two-headquarters invariant (§3, §8) and the
// per-transform orthonormality invariant before returning.
func (p *Pipeline) emit(sm *sourcemap.SourceMap, resolved []resolvedStatic, terr *terrain.TargetTerrain) (*scene.Scene, error) {
	hqs := sm.Headquarters()
	if len(hqs) < 2 {
		return nil, cerrs.ErrTooFewHeadquarters
	}
	if len(hqs) > 2 {
		return nil, cerrs.ErrTooManyHeadquarters
	}

	sc := scene.New(terr.Name)
	nextID := 1
	allocID := func() int {
		id := nextID
		nextID++
		return id
	}

	sc.Append(scene.NewRootNode(terr.Name))

	var gameplayPoints []coords.Vector3

	// Headquarters + their spawn children + capture-area polygon.
	spawnsByOwner := make(map[*sourcemap.ControlPoint][]*sourcemap.SpawnPoint)
	for _, sp := range sm.SpawnPoints {
		spawnsByOwner[sp.Owner] = append(spawnsByOwner[sp.Owner], sp)
	}

	for _, hq := range hqs {
		hqID := allocID()
		hqName := sanitizeName(hq.Name)
		gameplayPoints = append(gameplayPoints, hq.Position)

		spawns := spawnsByOwner[hq]
		var spawnPaths []string
		var spawnNodes []scene.NodeRecord
		for i, sp := range spawns {
			spID := allocID()
			spName := fmt.Sprintf("Spawn_%d", i)
			spawnPaths = append(spawnPaths, hqName+"/"+spName)
			t := coords.Transform{Position: sp.Position, Rotation: sp.Rotation}
			if !t.IsOrthonormal(p.Config.Tolerance.Orthonormality) {
				return nil, cerrs.ErrOrthonormality
			}
			spawnNodes = append(spawnNodes, scene.NewSpawnPointNode(spID, spName, hqName, t))
			gameplayPoints = append(gameplayPoints, sp.Position)
		}

		areaID := allocID()
		areaPath := hqName + "/Area"
		hqTransform := coords.Transform{Position: hq.Position}
		if !hqTransform.IsOrthonormal(p.Config.Tolerance.Orthonormality) {
			return nil, cerrs.ErrOrthonormality
		}
		sc.Append(scene.NewHeadquartersNode(hqID, hqName, int(hq.Team), hqTransform, spawnPaths, areaPath))
		sc.Append(spawnNodes...)
		// the HQ's own capture-area polygon is a small placeholder square
		// around the HQ itself; the playable-area polygon is the separate
		// CombatArea child appended after all gameplay nodes.
		sc.Append(scene.NewPolygonVolumeNode(areaID, "Area", hqName,
			p.Config.Gameplay.CombatAreaHeight, scene.CombatAreaPolygon([]coords.Vector3{hq.Position}, p.Config.Gameplay.BoundsBufferMeters)))
	}

	// Neutral capturable points.
	for _, cp := range sm.ControlPoints {
		if cp.Role.IsHeadquarters() {
			continue
		}
		id := allocID()
		t := coords.Transform{Position: cp.Position}
		if !t.IsOrthonormal(p.Config.Tolerance.Orthonormality) {
			return nil, cerrs.ErrOrthonormality
		}
		sc.Append(scene.NewCapturePointNode(id, sanitizeName(cp.Name), t))
		gameplayPoints = append(gameplayPoints, cp.Position)
	}

	// Vehicle spawners.
	for i, vs := range sm.VehicleSpawners {
		if vs.TargetVehicleIndex < 0 {
			continue
		}
		id := allocID()
		t := coords.Transform{Position: vs.Position, Rotation: vs.Rotation}
		if !t.IsOrthonormal(p.Config.Tolerance.Orthonormality) {
			return nil, cerrs.ErrOrthonormality
		}
		sc.Append(scene.NewVehicleSpawnerNode(id, fmt.Sprintf("VehicleSpawner_%d", i), int(vs.Team), vs.TargetVehicleIndex, t))
		gameplayPoints = append(gameplayPoints, vs.Position)
	}

	// Resolved statics (props/buildings/trees/stationary weapons) are part
	// of the playable area too — scenario 5's bounds-clamped static must
	// land inside the combat-area polygon, which means the polygon's hull
	// has to be expanded to include it (§8 scenario 5).
	for _, rs := range resolved {
		gameplayPoints = append(gameplayPoints, rs.obj.Position)
	}

	// Combat area: the XZ hull of every gameplay point, inflated (§4.9,
	// §9 "ceiling Y is a function of max terrain height + a fixed
	// headroom").
	combatAreaID := allocID()
	polygonID := allocID()
	polygon := scene.CombatAreaPolygon(gameplayPoints, p.Config.Gameplay.CombatAreaBufferMeters)
	ceilingY := maxTerrainHeight(terr) + p.Config.Gameplay.CombatAreaHeadroom
	combatNode := scene.NewCombatAreaNode(combatAreaID, coords.Transform{}, "CombatArea/Poly")
	combatNode.Properties = append(combatNode.Properties, scene.Property{Key: "ceiling_y", Value: scene.FormatNumber(ceilingY)})
	sc.Append(combatNode)
	sc.Append(scene.NewPolygonVolumeNode(polygonID, "Poly", "CombatArea", p.Config.Gameplay.CombatAreaHeight, polygon))

	// Static container: resolved props/buildings/trees, stationary-weapon
	// emplacements emitted as spawner nodes instead (§3 AssetRef category
	// StationaryWeapon).
	containerID := allocID()
	sc.Append(scene.NewStaticContainerNode(containerID, terr.Name))

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].obj.ID < resolved[j].obj.ID })
	for _, rs := range resolved {
		id := allocID()
		t := coords.Transform{Position: rs.obj.Position, Rotation: rs.obj.Rotation}
		if !t.IsOrthonormal(p.Config.Tolerance.Orthonormality) {
			return nil, cerrs.ErrOrthonormality
		}
		name := rs.obj.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", rs.obj.SourceToken, rs.obj.ID)
		}
		if rs.target.Category == catalog.StationaryWeapon {
			sc.Append(scene.NewStationarySpawnerNode(id, sanitizeName(name), int(rs.obj.Team), t))
		} else {
			sc.Append(scene.NewStaticNode(id, sanitizeName(name), rs.target.TargetType, int(rs.obj.Team), t))
		}
	}

	return sc, nil
}

func maxTerrainHeight(terr *terrain.TargetTerrain) float64 {
	return terr.Bounds().Max.Y
}

func sanitizeName(name string) string {
	if name == "" {
		return "Unnamed"
	}
	return strings.ReplaceAll(name, "/", "_")
}
