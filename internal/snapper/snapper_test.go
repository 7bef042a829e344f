// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package snapper

import (
	"testing"

	"github.com/portalconv/portalconv/internal/config"
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/terrain"
)

func flatTerrain(t *testing.T, y float64) *terrain.TargetTerrain {
	t.Helper()
	mesh := terrain.Mesh{
		Vertices: []coords.Vector3{
			{X: 0, Y: y, Z: 0},
			{X: 100, Y: y, Z: 0},
			{X: 100, Y: y, Z: 100},
			{X: 0, Y: y, Z: 100},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	tr, err := terrain.New("Flat", mesh, nil)
	if err != nil {
		t.Fatalf("build terrain: %v", err)
	}
	return tr
}

func TestSnapAddsClassClearanceAboveGround(t *testing.T) {
	tr := flatTerrain(t, 10)
	cfg := config.Default().Clearance

	r := Snap(tr, cfg, ClassSpawnPoint, 50, 50)
	if r.Y != 11 {
		t.Fatalf("want y=11 (ground 10 + clearance 1.0), got %v", r.Y)
	}
	if r.Clamped {
		t.Fatalf("interior point should not be clamped")
	}
}

func TestSnapClampsOutOfBoundsPointAndAnnotates(t *testing.T) {
	tr := flatTerrain(t, 10)
	cfg := config.Default().Clearance

	r := Snap(tr, cfg, ClassBuilding, -500, -500)
	if !r.Clamped {
		t.Fatalf("want clamped=true for out-of-bounds point")
	}
	if r.Note == "" {
		t.Fatalf("want a clamp note")
	}
	if r.Y != 10 {
		t.Fatalf("want clamped y=10 (ground only, building clearance is 0), got %v", r.Y)
	}
}

func TestSnapPointIsIdempotent(t *testing.T) {
	tr := flatTerrain(t, 10)
	cfg := config.Default().Clearance
	tol := 1e-6

	p := coords.Vector3{X: 50, Y: 0, Z: 50}
	first, _ := SnapPoint(tr, cfg, ClassSpawnPoint, p, tol)
	second, _ := SnapPoint(tr, cfg, ClassSpawnPoint, first, tol)

	if first.Y != second.Y {
		t.Fatalf("snapping twice changed y: %v -> %v", first.Y, second.Y)
	}
}

func TestSnapPointLeavesInToleranceYUntouched(t *testing.T) {
	tr := flatTerrain(t, 10)
	cfg := config.Default().Clearance

	// already within 1e-6 of the target (10 + 1.0 clearance = 11).
	p := coords.Vector3{X: 50, Y: 11.0000001, Z: 50}
	out, _ := SnapPoint(tr, cfg, ClassSpawnPoint, p, 1e-6)
	if out.Y != p.Y {
		t.Fatalf("point within tolerance should be left untouched: want %v, got %v", p.Y, out.Y)
	}
}

func TestClearanceLooksUpEachClass(t *testing.T) {
	cfg := config.Default().Clearance
	cases := map[Class_e]float64{
		ClassSpawnPoint:    1.0,
		ClassVehicleGround: 0.5,
		ClassVehicleAir:    2.0,
		ClassBuilding:      0.0,
		ClassProp:          0.0,
		ClassTree:          0.0,
		ClassCapturePoint:  0.5,
		ClassHeadquarters:  0.5,
	}
	for class, want := range cases {
		if got := Clearance(cfg, class); got != want {
			t.Fatalf("class %v: want %v, got %v", class, want, got)
		}
	}
}
