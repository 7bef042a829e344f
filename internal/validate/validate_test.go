// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"testing"

	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/scene"
)

// buildValidScene mirrors the emitter's own fixture shape: two
// headquarters on distinct teams, four spawns each, one capture point, and
// a combat-area polygon large enough to contain everything.
func buildValidScene() *scene.Scene {
	s := scene.New("DesertValley")
	s.Append(scene.NewRootNode("DesertValley"))

	axisSpawnPaths := []string{"HQ_Axis/Spawn_0", "HQ_Axis/Spawn_1", "HQ_Axis/Spawn_2", "HQ_Axis/Spawn_3"}
	s.Append(scene.NewHeadquartersNode(1, "HQ_Axis", 1,
		coords.Transform{Position: coords.Vector3{X: -80, Z: 0}}, axisSpawnPaths, "HQ_Axis/Area"))
	for i, name := range []string{"Spawn_0", "Spawn_1", "Spawn_2", "Spawn_3"} {
		s.Append(scene.NewSpawnPointNode(2+i, name, "HQ_Axis",
			coords.Transform{Position: coords.Vector3{X: -80 + float64(i), Z: float64(i)}}))
	}
	s.Append(scene.NewPolygonVolumeNode(6, "Area", "HQ_Axis", 20,
		[]coords.Vector3{{X: -90, Z: -10}, {X: -70, Z: -10}, {X: -70, Z: 10}}))

	alliesSpawnPaths := []string{"HQ_Allies/Spawn_0", "HQ_Allies/Spawn_1", "HQ_Allies/Spawn_2", "HQ_Allies/Spawn_3"}
	s.Append(scene.NewHeadquartersNode(7, "HQ_Allies", 2,
		coords.Transform{Position: coords.Vector3{X: 80, Z: 0}}, alliesSpawnPaths, "HQ_Allies/Area"))
	for i, name := range []string{"Spawn_0", "Spawn_1", "Spawn_2", "Spawn_3"} {
		s.Append(scene.NewSpawnPointNode(8+i, name, "HQ_Allies",
			coords.Transform{Position: coords.Vector3{X: 80 + float64(i), Z: float64(i)}}))
	}
	s.Append(scene.NewPolygonVolumeNode(12, "Area", "HQ_Allies", 20,
		[]coords.Vector3{{X: 70, Z: -10}, {X: 90, Z: -10}, {X: 90, Z: 10}}))

	s.Append(scene.NewCapturePointNode(13, "CP_Mill", coords.Transform{Position: coords.Vector3{X: 0, Z: 0}}))
	s.Append(scene.NewCombatAreaNode(14, coords.Transform{}, "CombatArea/Poly"))
	s.Append(scene.NewPolygonVolumeNode(15, "Poly", "CombatArea", 100,
		[]coords.Vector3{{X: -200, Z: -200}, {X: 200, Z: -200}, {X: 200, Z: 200}, {X: -200, Z: 200}}))

	return s
}

func parseEmitted(t *testing.T, s *scene.Scene) *Scene {
	t.Helper()
	sc, err := Parse([]byte(scene.Emit(s)))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return sc
}

func TestValidateAcceptsAWellFormedScene(t *testing.T) {
	res := Validate(parseEmitted(t, buildValidScene()))
	if !res.OK() {
		t.Fatalf("want no issues, got %v", res.Issues)
	}
}

func TestValidateRejectsTooFewHeadquarters(t *testing.T) {
	s := scene.New("DesertValley")
	s.Append(scene.NewRootNode("DesertValley"))
	s.Append(scene.NewHeadquartersNode(1, "HQ_Axis", 1, coords.Transform{}, nil, "HQ_Axis/Area"))
	s.Append(scene.NewPolygonVolumeNode(2, "Area", "HQ_Axis", 10, []coords.Vector3{{X: 0}, {X: 1}, {X: 1, Z: 1}}))

	res := Validate(parseEmitted(t, s))
	if res.OK() {
		t.Fatalf("want issues for a scene with only one headquarters")
	}
	found := false
	for _, iss := range res.Issues {
		if iss.Rule == "headquarters-count" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a headquarters-count issue, got %v", res.Issues)
	}
}

func TestValidateRejectsSpawnCountBelowMinimum(t *testing.T) {
	s := buildValidScene()
	// Remove every spawn node but leave one, by re-slicing the known
	// fixture layout: node 0 is Root, node 1 is HQ_Axis, nodes 2-5 are its
	// spawns.
	trimmed := append([]scene.NodeRecord{}, s.Nodes[:3]...)
	trimmed = append(trimmed, s.Nodes[6:]...)
	s.Nodes = trimmed

	res := Validate(parseEmitted(t, s))
	found := false
	for _, iss := range res.Issues {
		if iss.Rule == "minimum-spawns" && iss.Node == "HQ_Axis" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a minimum-spawns issue for HQ_Axis, got %v", res.Issues)
	}
}

func TestValidateRejectsDuplicateObjIds(t *testing.T) {
	s := buildValidScene()
	for i := range s.Nodes {
		if s.Nodes[i].Name == "CP_Mill" {
			s.Nodes[i].ObjId = 1 // collide with HQ_Axis
		}
	}

	res := Validate(parseEmitted(t, s))
	found := false
	for _, iss := range res.Issues {
		if iss.Rule == "unique-objid" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a unique-objid issue, got %v", res.Issues)
	}
}

func TestValidateRejectsNodeOutsideCombatArea(t *testing.T) {
	s := buildValidScene()
	s.Append(scene.NewCapturePointNode(99, "CP_Stray", coords.Transform{Position: coords.Vector3{X: 9000, Z: 9000}}))

	res := Validate(parseEmitted(t, s))
	found := false
	for _, iss := range res.Issues {
		if iss.Rule == "combat-area-containment" && iss.Node == "CP_Stray" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a combat-area-containment issue for CP_Stray, got %v", res.Issues)
	}
}

func TestPointInPolygonBasicSquare(t *testing.T) {
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !pointInPolygon(5, 5, square) {
		t.Fatalf("want center point inside square")
	}
	if pointInPolygon(50, 50, square) {
		t.Fatalf("want far point outside square")
	}
}
