// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import (
	"testing"

	"github.com/portalconv/portalconv/internal/coords"
)

func TestCombatAreaPolygonContainsAllInputsAfterInflation(t *testing.T) {
	pts := []coords.Vector3{
		{X: 0, Z: 0}, {X: 100, Z: 0}, {X: 100, Z: 100}, {X: 0, Z: 100}, {X: 50, Z: 50},
	}
	poly := CombatAreaPolygon(pts, 50)
	if len(poly) < 3 {
		t.Fatalf("want a polygon with at least 3 vertices, got %d", len(poly))
	}

	// every input point must lie strictly inside the inflated hull (§4.9 invariant).
	for _, p := range pts {
		if !pointInPolygon(poly, p.X, p.Z) {
			t.Fatalf("point (%v,%v) not inside inflated combat area polygon", p.X, p.Z)
		}
	}
}

func TestCombatAreaPolygonSinglePointProducesSquare(t *testing.T) {
	poly := CombatAreaPolygon([]coords.Vector3{{X: 10, Z: 10}}, 5)
	if len(poly) != 4 {
		t.Fatalf("want a 4-vertex square for a single point, got %d vertices", len(poly))
	}
}

func TestCombatAreaPolygonEmptyInputProducesSquareAtOrigin(t *testing.T) {
	poly := CombatAreaPolygon(nil, 5)
	if len(poly) != 4 {
		t.Fatalf("want a 4-vertex square for empty input, got %d vertices", len(poly))
	}
}

// pointInPolygon is a standard ray-casting test, local to this test file.
func pointInPolygon(poly []coords.Vector3, x, z float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, zi := poly[i].X, poly[i].Z
		xj, zj := poly[j].X, poly[j].Z
		if (zi > z) != (zj > z) && x < (xj-xi)*(z-zi)/(zj-zi)+xi {
			inside = !inside
		}
	}
	return inside
}
