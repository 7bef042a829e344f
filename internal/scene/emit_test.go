// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import (
	"strings"
	"testing"

	"github.com/portalconv/portalconv/internal/coords"
)

func buildFixture() *Scene {
	s := New("DesertValley")

	hqTransform := coords.Transform{Position: coords.Vector3{X: 1, Y: 2, Z: 3}}
	s.Append(NewRootNode("DesertValley"))
	s.Append(NewHeadquartersNode(1, "HQ_Axis", 1, hqTransform,
		[]string{"HQ_Axis/Spawn_0", "HQ_Axis/Spawn_1"}, "HQ_Axis/Area"))
	s.Append(NewSpawnPointNode(2, "Spawn_0", "HQ_Axis", coords.Transform{Position: coords.Vector3{X: 1, Z: 4}}))
	s.Append(NewSpawnPointNode(3, "Spawn_1", "HQ_Axis", coords.Transform{Position: coords.Vector3{X: 2, Z: 4}}))
	s.Append(NewPolygonVolumeNode(4, "Area", "HQ_Axis", 100, []coords.Vector3{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 10, Z: 10}}))
	s.Append(NewCapturePointNode(5, "CP_Mill", coords.Transform{Position: coords.Vector3{X: 5, Z: 5}}))
	s.Append(NewVehicleSpawnerNode(6, "Spawner_0", 1, 0, coords.Transform{Position: coords.Vector3{X: 6, Z: 6}}))
	s.Append(NewCombatAreaNode(7, coords.Transform{}, "CombatArea/Poly"))
	s.Append(NewPolygonVolumeNode(8, "Poly", "CombatArea", 100, []coords.Vector3{{X: -50, Z: -50}, {X: 50, Z: -50}, {X: 50, Z: 50}}))
	s.Append(NewStaticContainerNode(9, "DesertValley"))
	s.Append(NewStaticNode(10, "Tree_001", "Desert_Palm_01", 0, coords.Transform{Position: coords.Vector3{X: 8, Z: 8}}))

	return s
}

func TestEmitIsByteStableAcrossRuns(t *testing.T) {
	a := Emit(buildFixture())
	b := Emit(buildFixture())
	if a != b {
		t.Fatalf("Emit is not stable across identical inputs")
	}
}

func TestEmitUsesLFLineEndingsOnly(t *testing.T) {
	out := Emit(buildFixture())
	if strings.Contains(out, "\r") {
		t.Fatalf("output contains CR, want LF-only line endings")
	}
	if strings.HasPrefix(out, "\xef\xbb\xbf") {
		t.Fatalf("output has a BOM")
	}
}

func TestEmitHeaderDeclaresResourceCount(t *testing.T) {
	out := Emit(buildFixture())
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "load_steps=8") {
		t.Fatalf("want load_steps=8 in header, got %q", lines[0])
	}
}

func TestEmitExactlyOneTransformPropertyPerTransformNode(t *testing.T) {
	s := buildFixture()
	for _, n := range s.Nodes {
		if n.Transform == nil {
			continue
		}
		count := 0
		for _, p := range n.Properties {
			if p.Key == "transform" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("node %q: want exactly one transform property, got %d", n.Name, count)
		}
	}
}

func TestEmitObjIdsAreUnique(t *testing.T) {
	s := buildFixture()
	seen := make(map[int]bool)
	for _, n := range s.Nodes {
		if n.Kind == KindRoot {
			continue
		}
		if seen[n.ObjId] {
			t.Fatalf("duplicate ObjId %d", n.ObjId)
		}
		seen[n.ObjId] = true
	}
}

func TestEmitRootHasNoObjId(t *testing.T) {
	out := Emit(buildFixture())
	idx := strings.Index(out, `[node name="Root" type="Node3D"]`)
	if idx < 0 {
		t.Fatalf("root node header not found")
	}
	nextSectionStart := strings.Index(out[idx:], "\n\n")
	rootSection := out[idx : idx+nextSectionStart]
	if strings.Contains(rootSection, "ObjId") {
		t.Fatalf("root node must not declare ObjId, got section %q", rootSection)
	}
}

func TestEmitHeadquartersDeclaresNodePaths(t *testing.T) {
	out := Emit(buildFixture())
	if !strings.Contains(out, `spawn_points = [NodePath("HQ_Axis/Spawn_0"), NodePath("HQ_Axis/Spawn_1")]`) {
		t.Fatalf("headquarters node missing spawn_points node-path array, got:\n%s", out)
	}
	if !strings.Contains(out, `area = [NodePath("HQ_Axis/Area")]`) {
		t.Fatalf("headquarters node missing area node-path, got:\n%s", out)
	}
}
