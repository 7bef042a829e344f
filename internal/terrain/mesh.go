// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package terrain

import "github.com/portalconv/portalconv/internal/coords"

// Mesh is the minimal terrain description the Terrain Provider needs to
// bake a height grid: vertex positions and triangle indices into that
// list. The mesh's own source format (an editor-specific binary or glTF
// export) is out of scope here — something upstream of this package
// decodes it into this shape.
type Mesh struct {
	Vertices  []coords.Vector3
	Triangles [][3]int
}

// Bounds computes the mesh's axis-aligned bounding box.
func (m Mesh) Bounds() coords.AABB3D {
	b := coords.NewAABB3D()
	for _, v := range m.Vertices {
		b = b.ExpandPoint(v)
	}
	return b
}

// triangleXZContains reports whether point (x,z) lies within the triangle's
// XZ projection, returning the barycentric weights when it does.
func triangleXZContains(a, b, c coords.Vector3, x, z float64) (u, v, w float64, ok bool) {
	denom := (b.Z-c.Z)*(a.X-c.X) + (c.X-b.X)*(a.Z-c.Z)
	if denom == 0 {
		return 0, 0, 0, false
	}
	u = ((b.Z-c.Z)*(x-c.X) + (c.X-b.X)*(z-c.Z)) / denom
	v = ((c.Z-a.Z)*(x-c.X) + (a.X-c.X)*(z-c.Z)) / denom
	w = 1 - u - v

	const eps = -1e-9
	if u < eps || v < eps || w < eps {
		return 0, 0, 0, false
	}
	return u, v, w, true
}

// heightAtTriangle returns the barycentric-interpolated Y of point (x,z)
// inside the given triangle.
func heightAtTriangle(a, b, c coords.Vector3, u, v, w float64) float64 {
	return u*a.Y + v*b.Y + w*c.Y
}
