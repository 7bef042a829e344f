// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import "math"

// AABB2D is an axis-aligned bounding box in the XZ ground plane, used for
// the source map's overall footprint and the combat-area polygon (§4.2,
// §4.8).
type AABB2D struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func NewAABB2D() AABB2D {
	return AABB2D{
		MinX: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxZ: math.Inf(-1),
	}
}

func (b AABB2D) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinZ > b.MaxZ
}

func (b AABB2D) ExpandPoint(x, z float64) AABB2D {
	return AABB2D{
		MinX: math.Min(b.MinX, x), MinZ: math.Min(b.MinZ, z),
		MaxX: math.Max(b.MaxX, x), MaxZ: math.Max(b.MaxZ, z),
	}
}

func (b AABB2D) Expand(o AABB2D) AABB2D {
	if o.IsEmpty() {
		return b
	}
	return b.ExpandPoint(o.MinX, o.MinZ).ExpandPoint(o.MaxX, o.MaxZ)
}

// Buffered returns the box grown by meters on every side.
func (b AABB2D) Buffered(meters float64) AABB2D {
	return AABB2D{
		MinX: b.MinX - meters, MinZ: b.MinZ - meters,
		MaxX: b.MaxX + meters, MaxZ: b.MaxZ + meters,
	}
}

func (b AABB2D) Width() float64  { return b.MaxX - b.MinX }
func (b AABB2D) Height() float64 { return b.MaxZ - b.MinZ }

func (b AABB2D) Center() (x, z float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinZ + b.MaxZ) / 2
}

// Contains reports whether the point lies within the box, inclusive.
func (b AABB2D) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Intersection returns the overlapping region of two boxes. The result
// IsEmpty if the boxes do not overlap.
func (b AABB2D) Intersection(o AABB2D) AABB2D {
	r := AABB2D{
		MinX: math.Max(b.MinX, o.MinX), MinZ: math.Max(b.MinZ, o.MinZ),
		MaxX: math.Min(b.MaxX, o.MaxX), MaxZ: math.Min(b.MaxZ, o.MaxZ),
	}
	return r
}

// Area returns 0 for an empty or degenerate box.
func (b AABB2D) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// AABB3D is an axis-aligned bounding box in full 3D, used for the terrain
// mesh bounds (§4.4).
type AABB3D struct {
	Min, Max Vector3
}

func NewAABB3D() AABB3D {
	inf := math.Inf(1)
	return AABB3D{
		Min: Vector3{X: inf, Y: inf, Z: inf},
		Max: Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b AABB3D) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b AABB3D) ExpandPoint(p Vector3) AABB3D {
	return AABB3D{
		Min: Vector3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Vector3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

func (b AABB3D) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

func (b AABB3D) To2D() AABB2D {
	return AABB2D{MinX: b.Min.X, MinZ: b.Min.Z, MaxX: b.Max.X, MaxZ: b.Max.Z}
}
