// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/portalconv/portalconv/internal/script"
)

func writeFixture(t *testing.T, dir string) {
	t.Helper()
	mustWrite := func(rel, content string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	mustWrite("Init.con", "rem generated fixture\n")

	mustWrite("Conquest/ControlPoints.con", ""+
		"Object.create HQBaseTemplate\n"+
		"Object.setName Base_Axis\n"+
		"Object.absolutePosition -100/0/0\n"+
		"Object.setCanBeCaptured 0\n"+
		"Object.create HQBaseTemplate\n"+
		"Object.setName Base_Allies\n"+
		"Object.absolutePosition 100/0/0\n"+
		"Object.setCanBeCaptured 0\n")

	mustWrite("Conquest/SoldierSpawns.con", ""+
		"Object.create SoldierSpawnTemplate\n"+
		"Object.setName AxisSoldierSpawn_01\n"+
		"Object.absolutePosition -90/0/0\n"+
		"Object.rotation 0/0/0\n")

	mustWrite("Conquest/ObjectSpawns.con", ""+
		"Object.create US_Abrams_Template\n"+
		"Object.absolutePosition 0/0/50\n"+
		"Object.rotation 0/90/0\n"+
		"Object.setTeam 2\n")

	mustWrite("StaticObjects.con", ""+
		"rem a tree near the allied base\n"+
		"Object.create Pine_Tree_01\n"+
		"Object.absolutePosition 80/0/10\n")
}

func TestEngineCanParse(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	e := New(50)
	if !e.CanParse(dir) {
		t.Fatalf("expected CanParse to recognize the fixture")
	}
	if e.CanParse(t.TempDir()) {
		t.Fatalf("expected CanParse to reject an empty directory")
	}
}

func TestEngineParseAssemblesSourceMap(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	e := New(50)
	sm, err := e.Parse(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sm.ControlPoints) != 2 {
		t.Fatalf("want 2 control points, got %d", len(sm.ControlPoints))
	}
	hq := sm.Headquarters()
	if len(hq) != 2 {
		t.Fatalf("want 2 headquarters, got %d: %+v", len(hq), sm.ControlPoints)
	}

	if len(sm.SpawnPoints) != 1 {
		t.Fatalf("want 1 spawn point, got %d", len(sm.SpawnPoints))
	}
	if sm.SpawnPoints[0].Owner == nil || sm.SpawnPoints[0].Owner.Name != "Base_Axis" {
		t.Fatalf("expected spawn to be owned by Base_Axis, got %+v", sm.SpawnPoints[0].Owner)
	}

	if len(sm.VehicleSpawners) != 1 {
		t.Fatalf("want 1 vehicle spawner, got %d", len(sm.VehicleSpawners))
	}
	if sm.VehicleSpawners[0].TargetVehicleIndex != 0 {
		t.Fatalf("want Abrams (index 0), got %d", sm.VehicleSpawners[0].TargetVehicleIndex)
	}

	if len(sm.StaticObjects) != 1 {
		t.Fatalf("want 1 static object, got %d", len(sm.StaticObjects))
	}
	if sm.StaticObjects[0].SourceToken != "Pine_Tree_01" {
		t.Fatalf("want Pine_Tree_01, got %q", sm.StaticObjects[0].SourceToken)
	}

	if sm.Bounds.IsEmpty() {
		t.Fatalf("expected non-empty bounds")
	}
}

func TestEngineParseAbortsOnMalformedVector(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	path := filepath.Join(dir, "StaticObjects.con")
	if err := os.WriteFile(path, []byte(""+
		"Object.create Pine_Tree_01\n"+
		"Object.absolutePosition abc/def/ghi\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	e := New(50)
	sm, err := e.Parse(dir)
	if err == nil {
		t.Fatalf("expected a parse error, got a SourceMap: %+v", sm)
	}
	var perr *script.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *script.ParseError, got %T: %v", err, err)
	}
	if perr.File != path || perr.Line != 2 {
		t.Fatalf("want error at %s:2, got %s:%d", path, perr.File, perr.Line)
	}
}

func TestEngineParseMissingOptionalFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Init.con"), []byte("rem minimal\n"), 0o644); err != nil {
		t.Fatalf("write Init.con: %v", err)
	}

	e := New(50)
	sm, err := e.Parse(dir)
	if err != nil {
		t.Fatalf("unexpected error for minimal map: %v", err)
	}
	if len(sm.ControlPoints) != 0 || len(sm.StaticObjects) != 0 {
		t.Fatalf("expected empty collections, got %+v", sm)
	}
}
