// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package coords

import "math"

// Vector3 is a point or displacement in right-handed, Y-up meters — the
// common space both the Refractor source map and the target scene share
// once a SourceMap has been parsed (§3).
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Lerp returns the point t of the way from v to o, t in [0, 1].
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return Vector3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Rotation is an intrinsic Y (yaw) then X (pitch) then Z (roll) Euler
// rotation in degrees, matching the order the Refractor engine writes
// Object.rotation triples in (§4.1, §9).
type Rotation struct {
	Pitch, Yaw, Roll float64
}

// basis returns the rotation's three orthonormal column vectors in the
// order Transform3D expects them: X axis, Y axis, Z axis.
func (r Rotation) basis() (xAxis, yAxis, zAxis Vector3) {
	p, y, roll := radians(r.Pitch), radians(r.Yaw), radians(r.Roll)

	sy, cy := math.Sin(y), math.Cos(y)
	sp, cp := math.Sin(p), math.Cos(p)
	sr, cr := math.Sin(roll), math.Cos(roll)

	// Ry (yaw) * Rx (pitch) * Rz (roll), column-major.
	xAxis = Vector3{
		X: cy*cr + sy*sp*sr,
		Y: cp * sr,
		Z: -sy*cr + cy*sp*sr,
	}
	yAxis = Vector3{
		X: -cy*sr + sy*sp*cr,
		Y: cp * cr,
		Z: sy*sr + cy*sp*cr,
	}
	zAxis = Vector3{
		X: sy * cp,
		Y: -sp,
		Z: cy * cp,
	}
	return xAxis, yAxis, zAxis
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
