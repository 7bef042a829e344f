// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import "github.com/portalconv/portalconv/internal/coords"

// SourceMap is the result of parsing one map's directory tree (§3, §4.2).
// Later pipeline stages update its objects in place.
type SourceMap struct {
	Name            string
	Bounds          coords.AABB2D
	ControlPoints   []*ControlPoint
	SpawnPoints     []*SpawnPoint
	VehicleSpawners []*VehicleSpawner
	StaticObjects   []*PlacedObject
	RawHeightmap    []byte
}

// ComputeBounds returns the XZ bounding box of every control point and
// vehicle spawner, inflated by bufferMeters (§4.2: a 50 m buffer in
// production use via internal/config's Gameplay_t.BoundsBufferMeters).
func ComputeBounds(controlPoints []*ControlPoint, vehicleSpawners []*VehicleSpawner, bufferMeters float64) coords.AABB2D {
	b := coords.NewAABB2D()
	for _, cp := range controlPoints {
		b = b.ExpandPoint(cp.Position.X, cp.Position.Z)
	}
	for _, vs := range vehicleSpawners {
		b = b.ExpandPoint(vs.Position.X, vs.Position.Z)
	}
	if b.IsEmpty() {
		return b
	}
	return b.Buffered(bufferMeters)
}

// Headquarters returns the control points whose role is one of the two
// headquarters roles, in the order they appear in ControlPoints.
func (m *SourceMap) Headquarters() []*ControlPoint {
	var out []*ControlPoint
	for _, cp := range m.ControlPoints {
		if cp.Role.IsHeadquarters() {
			out = append(out, cp)
		}
	}
	return out
}
