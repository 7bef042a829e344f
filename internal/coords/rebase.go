// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import "math"

// Rebaser translates and remaps points from a source map's local space into
// a target terrain's local space: center the source footprint on the
// origin, apply the chosen AxisRemap, then translate to the target center
// (§4.5).
type Rebaser struct {
	SourceCenter Vector3
	TargetCenter Vector3
	Remap        AxisRemap_e
}

// NewRebaser builds a Rebaser from a source footprint and the target
// terrain's center point.
func NewRebaser(sourceBounds AABB2D, targetCenter Vector3, remap AxisRemap_e) Rebaser {
	cx, cz := sourceBounds.Center()
	return Rebaser{
		SourceCenter: Vector3{X: cx, Z: cz},
		TargetCenter: targetCenter,
		Remap:        remap,
	}
}

// Rebase moves a source-space point into target-space: center, remap, then
// translate to the target's center. Y is unaffected by the remap itself —
// the terrain height grid supplies the final Y once rebasing is done
// (§4.6).
func (r Rebaser) Rebase(p Vector3) Vector3 {
	lx, lz := p.X-r.SourceCenter.X, p.Z-r.SourceCenter.Z
	rx, rz := r.Remap.Apply(lx, lz)
	return Vector3{
		X: rx + r.TargetCenter.X,
		Y: p.Y,
		Z: rz + r.TargetCenter.Z,
	}
}

// RebaseRotation applies the remap's implied basis change to a rotation.
// Identity, NegateX, and NegateZ preserve yaw; the swap variants add a
// quarter turn because they exchange the X and Z axes.
func (r Rebaser) RebaseRotation(rot Rotation) Rotation {
	switch r.Remap {
	case SwapXZ, SwapAndNegateX, SwapAndNegateZ:
		rot.Yaw += 90
	}
	return rot
}

// RebaseBounds maps a source AABB2D into target space, used to re-derive
// the overall bounds after rebasing for the bounds-clamp check (§4.2, §7).
func (r Rebaser) RebaseBounds(b AABB2D) AABB2D {
	if b.IsEmpty() {
		return b
	}
	corners := [][2]float64{
		{b.MinX, b.MinZ}, {b.MinX, b.MaxZ}, {b.MaxX, b.MinZ}, {b.MaxX, b.MaxZ},
	}
	out := NewAABB2D()
	for _, c := range corners {
		p := r.Rebase(Vector3{X: c[0], Z: c[1]})
		out = out.ExpandPoint(p.X, p.Z)
	}
	return out
}

// SolveOrientation enumerates the six AxisRemap candidates and picks the one
// that best fits the source footprint into the target bounds: maximize the
// intersection area between the remapped, centered footprint and the
// target bounds, penalize aspect-ratio mismatch, and break ties by the
// enum's declared order (§4.5, §9). tieTolerance is the fractional margin
// (e.g. 0.01 for 1%, config.Tolerance_t.OrientationTie) within which two
// candidates are considered tied — AllAxisRemaps is walked in its declared
// order, so a tied later candidate never displaces an earlier one.
func SolveOrientation(sourceBounds, targetBounds AABB2D, tieTolerance float64) AxisRemap_e {
	best := Identity
	bestScore := math.Inf(-1)

	targetCenterX, targetCenterZ := targetBounds.Center()
	targetAspect := safeAspect(targetBounds.Width(), targetBounds.Height())

	for _, remap := range AllAxisRemaps {
		rebaser := NewRebaser(sourceBounds, Vector3{X: targetCenterX, Z: targetCenterZ}, remap)
		remapped := rebaser.RebaseBounds(sourceBounds)

		intersection := remapped.Intersection(targetBounds).Area()
		remappedAspect := safeAspect(remapped.Width(), remapped.Height())
		aspectPenalty := math.Abs(remappedAspect - targetAspect)

		score := intersection - aspectPenalty*intersection*0.01
		if math.IsInf(bestScore, -1) {
			bestScore = score
			best = remap
			continue
		}
		margin := tieTolerance * math.Max(math.Abs(bestScore), math.Abs(score))
		if score > bestScore+margin {
			bestScore = score
			best = remap
		}
	}
	return best
}

func safeAspect(w, h float64) float64 {
	if h == 0 {
		return 0
	}
	return w / h
}
