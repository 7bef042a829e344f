// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runners

import (
	"testing"

	"github.com/portalconv/portalconv/internal/catalog"
	"github.com/portalconv/portalconv/internal/config"
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/mapper"
	"github.com/portalconv/portalconv/internal/scene"
	"github.com/portalconv/portalconv/internal/sourceengine"
	"github.com/portalconv/portalconv/internal/sourcemap"
	"github.com/portalconv/portalconv/internal/terrain"
)

// stubEngine returns a fixed SourceMap regardless of directory, modeling
// the §8 "tiny synthetic map" seed scenario: 2 HQs, 4 spawns each, one
// neutral capture point, no statics.
type stubEngine struct {
	sm *sourcemap.SourceMap
}

func (s *stubEngine) Name() string            { return "stub" }
func (s *stubEngine) CanParse(dir string) bool { return true }
func (s *stubEngine) Parse(dir string) (*sourcemap.SourceMap, error) {
	return s.sm, nil
}

var _ sourceengine.Engine = (*stubEngine)(nil)

func tinySyntheticMap() *sourcemap.SourceMap {
	axis := &sourcemap.ControlPoint{Name: "HQ_Axis", Position: coords.Vector3{X: -100, Y: 80, Z: 0}, Team: sourcemap.Team1, Role: sourcemap.HeadquartersAxis}
	allies := &sourcemap.ControlPoint{Name: "HQ_Allies", Position: coords.Vector3{X: 100, Y: 80, Z: 0}, Team: sourcemap.Team2, Role: sourcemap.HeadquartersAllies}
	mill := &sourcemap.ControlPoint{Name: "CP_Mill", Position: coords.Vector3{X: 0, Y: 80, Z: 0}, Team: sourcemap.Neutral, Role: sourcemap.NeutralCapturable}

	var spawns []*sourcemap.SpawnPoint
	for i := 0; i < 4; i++ {
		spawns = append(spawns,
			&sourcemap.SpawnPoint{Position: coords.Vector3{X: -100 + float64(i), Y: 80, Z: float64(i)}, Owner: axis},
			&sourcemap.SpawnPoint{Position: coords.Vector3{X: 100 + float64(i), Y: 80, Z: float64(i)}, Owner: allies},
		)
	}

	controlPoints := []*sourcemap.ControlPoint{axis, allies, mill}
	bounds := sourcemap.ComputeBounds(controlPoints, nil, 50)

	return &sourcemap.SourceMap{
		Name:          "TinyMap",
		Bounds:        bounds,
		ControlPoints: controlPoints,
		SpawnPoints:   spawns,
	}
}

func flatTerrain(t *testing.T, y float64) *terrain.TargetTerrain {
	t.Helper()
	mesh := terrain.Mesh{
		Vertices: []coords.Vector3{
			{X: -100, Y: y, Z: -100},
			{X: 100, Y: y, Z: -100},
			{X: 100, Y: y, Z: 100},
			{X: -100, Y: y, Z: 100},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	tr, err := terrain.New("FlatField", mesh, nil)
	if err != nil {
		t.Fatalf("unexpected terrain error: %v", err)
	}
	return tr
}

func emptyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load([]byte(`{"AssetTypes":[]}`))
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestConvertTinySyntheticMapProducesExpectedScene(t *testing.T) {
	cfg := config.Default()
	terr := flatTerrain(t, 50)
	p := New(cfg, emptyCatalog(t), mapper.Table{}, &stubEngine{sm: tinySyntheticMap()})

	sc, rep, err := p.Convert("ignored", "TinyMap", terr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Headquarters != 2 {
		t.Fatalf("want 2 headquarters in report, got %d", rep.Headquarters)
	}

	var hqCount, spawnCount, captureCount int
	for _, n := range sc.Nodes {
		switch n.Kind {
		case scene.KindHeadquarters:
			hqCount++
		case scene.KindSpawnPoint:
			spawnCount++
		case scene.KindCapturePoint:
			captureCount++
		}
	}
	if hqCount != 2 {
		t.Fatalf("want 2 HQ nodes, got %d", hqCount)
	}
	if spawnCount != 8 {
		t.Fatalf("want 8 spawn nodes, got %d", spawnCount)
	}
	if captureCount != 1 {
		t.Fatalf("want 1 capture point node, got %d", captureCount)
	}
}

func TestConvertSnapsSpawnsToGroundPlusClearance(t *testing.T) {
	cfg := config.Default()
	terr := flatTerrain(t, 50)
	p := New(cfg, emptyCatalog(t), mapper.Table{}, &stubEngine{sm: tinySyntheticMap()})

	sc, _, err := p.Convert("ignored", "TinyMap", terr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range sc.Nodes {
		if n.Kind != scene.KindSpawnPoint || n.Transform == nil {
			continue
		}
		if got := n.Transform.Position.Y; got != 51.0 {
			t.Fatalf("want spawn y=51.0 (ground 50 + clearance 1.0), got %v", got)
		}
	}
}

func TestConvertFailsWithFewerThanTwoHeadquarters(t *testing.T) {
	cfg := config.Default()
	terr := flatTerrain(t, 50)
	sm := tinySyntheticMap()
	sm.ControlPoints = sm.ControlPoints[:1] // drop the Allies HQ
	p := New(cfg, emptyCatalog(t), mapper.Table{}, &stubEngine{sm: sm})

	_, _, err := p.Convert("ignored", "TinyMap", terr)
	if err == nil {
		t.Fatalf("want an error for a map with fewer than two headquarters")
	}
}

func TestConvertManyPreservesJobOrder(t *testing.T) {
	cfg := config.Default()
	terr := flatTerrain(t, 50)
	p := New(cfg, emptyCatalog(t), mapper.Table{}, &stubEngine{sm: tinySyntheticMap()})

	jobs := []MapJob{
		{SourceDir: "a", MapName: "Alpha", Terrain: terr},
		{SourceDir: "b", MapName: "Bravo", Terrain: terr},
		{SourceDir: "c", MapName: "Charlie", Terrain: terr},
	}
	results := p.ConvertMany(jobs, 2)
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d", len(results))
	}
	for i, want := range []string{"Alpha", "Bravo", "Charlie"} {
		if results[i].Job.MapName != want {
			t.Fatalf("result %d: want map %q, got %q", i, want, results[i].Job.MapName)
		}
		if results[i].Err != nil {
			t.Fatalf("result %d: unexpected error: %v", i, results[i].Err)
		}
	}
}
