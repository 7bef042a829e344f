// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import (
	"fmt"
	"strconv"
	"strings"
)

// Transform pairs a Position with a Rotation, the pair the Scene Emitter
// turns into a single Transform3D(...) matrix string (§4.9).
type Transform struct {
	Position Vector3
	Rotation Rotation
}

// Transform3D renders the transform as the engine's 12-value column-major
// matrix string: three basis column vectors followed by the origin.
// Components are formatted to 6 significant digits with trailing zeros
// trimmed, and "-0" is collapsed to "0" so output is stable across runs.
func (t Transform) Transform3D() string {
	xAxis, yAxis, zAxis := t.Rotation.basis()

	vals := []float64{
		xAxis.X, xAxis.Y, xAxis.Z,
		yAxis.X, yAxis.Y, yAxis.Z,
		zAxis.X, zAxis.Y, zAxis.Z,
		t.Position.X, t.Position.Y, t.Position.Z,
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatComponent(v)
	}
	return fmt.Sprintf("Transform3D(%s)", strings.Join(parts, ", "))
}

// IsOrthonormal reports whether the rotation's basis vectors are unit
// length and mutually perpendicular within tol (§8, orthonormality
// invariant). A non-orthonormal basis means the Rebaser or Orientation
// Solver produced a corrupt transform and the run must abort.
func (t Transform) IsOrthonormal(tol float64) bool {
	xAxis, yAxis, zAxis := t.Rotation.basis()

	unit := func(v Vector3) bool {
		return abs(v.Length()-1.0) <= tol
	}
	perp := func(a, b Vector3) bool {
		return abs(a.X*b.X+a.Y*b.Y+a.Z*b.Z) <= tol
	}

	return unit(xAxis) && unit(yAxis) && unit(zAxis) &&
		perp(xAxis, yAxis) && perp(yAxis, zAxis) && perp(xAxis, zAxis)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func formatComponent(v float64) string {
	if v == 0 {
		v = 0 // collapse negative zero
	}
	s := strconv.FormatFloat(v, 'g', 6, 64)
	if s == "-0" {
		s = "0"
	}
	return s
}
