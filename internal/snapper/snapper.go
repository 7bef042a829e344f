// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package snapper

import (
	"github.com/portalconv/portalconv/internal/coords"
	"github.com/portalconv/portalconv/internal/config"
	"github.com/portalconv/portalconv/internal/terrain"
)

// Class_e names the object classes the clearance table is keyed on
// (§4.8).
type Class_e int

const (
	ClassSpawnPoint Class_e = iota
	ClassVehicleGround
	ClassVehicleAir
	ClassBuilding
	ClassProp
	ClassTree
	ClassCapturePoint
	ClassHeadquarters
)

// Clearance returns the named clearance constant for class, in meters
// (§4.8).
func Clearance(cfg config.Clearance_t, class Class_e) float64 {
	switch class {
	case ClassSpawnPoint:
		return cfg.SpawnPoint
	case ClassVehicleGround:
		return cfg.VehicleGround
	case ClassVehicleAir:
		return cfg.VehicleAir
	case ClassBuilding:
		return cfg.Building
	case ClassProp:
		return cfg.Prop
	case ClassTree:
		return cfg.Tree
	case ClassCapturePoint:
		return cfg.CapturePoint
	case ClassHeadquarters:
		return cfg.Headquarters
	default:
		return 0
	}
}

// Result reports what Snap did to one point, so the pipeline can fold it
// into the run report (§4.8: clamp failures are never fatal, only
// annotated).
type Result struct {
	Y      float64
	Clamped bool
	Note   string
}

// Snap computes the target y for a world (x, z) at the given class's
// clearance above ground. If (x, z) falls outside t's mesh bounds, the
// point is clamped to the nearest edge before sampling and the result
// carries a note instead of an error (§4.8).
func Snap(t *terrain.TargetTerrain, cfg config.Clearance_t, class Class_e, x, z float64) Result {
	bounds := t.Bounds()
	cx, cz := x, z
	clamped := false

	if cx < bounds.Min.X {
		cx = bounds.Min.X
		clamped = true
	} else if cx > bounds.Max.X {
		cx = bounds.Max.X
		clamped = true
	}
	if cz < bounds.Min.Z {
		cz = bounds.Min.Z
		clamped = true
	} else if cz > bounds.Max.Z {
		cz = bounds.Max.Z
		clamped = true
	}

	ground := t.HeightAt(cx, cz)
	y := ground + Clearance(cfg, class)

	r := Result{Y: y}
	if clamped {
		r.Clamped = true
		r.Note = "position outside mesh bounds, clamped to nearest edge before sampling"
	}
	return r
}

// Idempotent reports whether current is already within tol of target, so
// that applying Snap again would leave it unchanged (§4.8: "running the snapper twice ...
// produces byte-identical y values"). A point already within tol of its
// target is left untouched by the caller rather than rewritten.
func Idempotent(current, target, tol float64) bool {
	delta := current - target
	if delta < 0 {
		delta = -delta
	}
	return delta <= tol
}

// SnapPoint applies Snap to a Vector3's XZ, replacing Y only when the
// change exceeds tol — this is what makes repeated runs byte-stable
// (§4.8).
func SnapPoint(t *terrain.TargetTerrain, cfg config.Clearance_t, class Class_e, p coords.Vector3, tol float64) (coords.Vector3, Result) {
	r := Snap(t, cfg, class, p.X, p.Z)
	if Idempotent(p.Y, r.Y, tol) {
		return p, r
	}
	return coords.Vector3{X: p.X, Y: r.Y, Z: p.Z}, r
}
