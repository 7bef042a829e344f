// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import (
	"testing"

	"github.com/portalconv/portalconv/internal/coords"
)

func TestAssignOwnerBySubstring(t *testing.T) {
	axis := &ControlPoint{Name: "HQ_Axis", Role: HeadquartersAxis}
	allies := &ControlPoint{Name: "HQ_Allies", Role: HeadquartersAllies}
	cps := []*ControlPoint{axis, allies}

	spawn := &SpawnPoint{Position: coords.Vector3{X: 1000, Z: 1000}}
	got := AssignOwner("AxisSoldierSpawn_01", spawn, cps)
	if got != axis {
		t.Fatalf("want axis owner, got %+v", got)
	}
}

func TestAssignOwnerFallsBackToNearest(t *testing.T) {
	near := &ControlPoint{Name: "Neutral1", Position: coords.Vector3{X: 0, Z: 0}, Role: NeutralCapturable}
	far := &ControlPoint{Name: "Neutral2", Position: coords.Vector3{X: 1000, Z: 1000}, Role: NeutralCapturable}
	cps := []*ControlPoint{near, far}

	spawn := &SpawnPoint{Position: coords.Vector3{X: 5, Z: 5}}
	got := AssignOwner("UnnamedSpawn", spawn, cps)
	if got != near {
		t.Fatalf("want nearest control point, got %+v", got)
	}
}

func TestAssignHeadquartersDemotesExtras(t *testing.T) {
	cps := []*ControlPoint{
		{Name: "BaseA", Position: coords.Vector3{X: 0, Z: 0}},
		{Name: "BaseB", Position: coords.Vector3{X: 1000, Z: 0}},
		{Name: "BaseC", Position: coords.Vector3{X: 10, Z: 0}},
	}
	AssignHeadquarters(cps, map[string]bool{})

	var hqCount int
	for _, cp := range cps {
		if cp.Role.IsHeadquarters() {
			hqCount++
		}
	}
	if hqCount != 2 {
		t.Fatalf("want exactly 2 headquarters, got %d", hqCount)
	}
	if cps[2].Role.IsHeadquarters() {
		t.Fatalf("expected closest base to be demoted, kept roles: %v %v %v", cps[0].Role, cps[1].Role, cps[2].Role)
	}
}

func TestAssignHeadquartersRespectsCanBeCaptured(t *testing.T) {
	cps := []*ControlPoint{
		{Name: "Outpost1"},
		{Name: "Outpost2"},
	}
	AssignHeadquarters(cps, map[string]bool{"Outpost1": false, "Outpost2": true})

	if !cps[0].Role.IsHeadquarters() {
		t.Fatalf("Outpost1 (canBeCaptured=false) should be headquarters")
	}
	if cps[1].Role.IsHeadquarters() {
		t.Fatalf("Outpost2 (canBeCaptured=true, no Base suffix) should not be headquarters")
	}
}
