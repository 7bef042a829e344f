// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import (
	"sort"

	"github.com/portalconv/portalconv/internal/coords"
)

// CombatAreaPolygon returns the XZ convex hull of points with each hull
// vertex moved bufferMeters farther from the hull's vertex centroid, for
// the combat area's polygon volume (§4.9: "the XZ hull of all gameplay
// objects inflated by 50 m"). When the hull has fewer than three vertices
// (no points, one distinct point, or only collinear points), it returns
// the XZ bounding rectangle of those points grown by bufferMeters on every
// side; for no points that is a square centered on the origin.
func CombatAreaPolygon(points []coords.Vector3, bufferMeters float64) []coords.Vector3 {
	hull := convexHullXZ(points)

	if len(hull) < 3 {
		if len(hull) == 0 {
			hull = []coords.Vector3{{}}
		}
		b := coords.NewAABB2D()
		for _, p := range hull {
			b = b.ExpandPoint(p.X, p.Z)
		}
		b = b.Buffered(bufferMeters)
		return []coords.Vector3{
			{X: b.MinX, Z: b.MinZ},
			{X: b.MaxX, Z: b.MinZ},
			{X: b.MaxX, Z: b.MaxZ},
			{X: b.MinX, Z: b.MaxZ},
		}
	}

	return inflate(hull, bufferMeters)
}

// convexHullXZ computes the 2D convex hull of points' XZ projections using
// the monotone-chain algorithm, returning vertices in counter-clockwise
// order with no duplicate closing point.
func convexHullXZ(points []coords.Vector3) []coords.Vector3 {
	uniq := dedupeXZ(points)
	if len(uniq) < 3 {
		return uniq
	}

	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Z < uniq[j].Z
	})

	cross := func(o, a, b coords.Vector3) float64 {
		return (a.X-o.X)*(b.Z-o.Z) - (a.Z-o.Z)*(b.X-o.X)
	}

	n := len(uniq)
	hull := make([]coords.Vector3, 0, 2*n)

	for _, p := range uniq {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

func dedupeXZ(points []coords.Vector3) []coords.Vector3 {
	seen := make(map[[2]float64]bool, len(points))
	out := make([]coords.Vector3, 0, len(points))
	for _, p := range points {
		key := [2]float64{p.X, p.Z}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// inflate moves each vertex of a convex polygon meters farther from the
// polygon's vertex centroid, along the line from the centroid through that
// vertex. Each original vertex lies between the centroid and its moved
// copy, so the result contains the original polygon.
func inflate(hull []coords.Vector3, meters float64) []coords.Vector3 {
	var cx, cz float64
	for _, p := range hull {
		cx += p.X
		cz += p.Z
	}
	cx /= float64(len(hull))
	cz /= float64(len(hull))

	out := make([]coords.Vector3, len(hull))
	for i, p := range hull {
		dx, dz := p.X-cx, p.Z-cz
		length := vecLen(dx, dz)
		if length == 0 {
			out[i] = p
			continue
		}
		out[i] = coords.Vector3{X: p.X + dx/length*meters, Y: p.Y, Z: p.Z + dz/length*meters}
	}
	return out
}

func vecLen(x, z float64) float64 {
	return coords.Vector3{X: x, Z: z}.Length()
}
