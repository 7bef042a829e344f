// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package terrain

import (
	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/coords"
)

// GridSize is the fixed resolution of a TargetTerrain's baked height grid
// (§3, TargetTerrain).
const GridSize = 256

// TargetTerrain supplies ground height, bounds, and an asset allow-list for
// one base terrain (§4.5). The height grid is computed once at load and is
// read-only afterward, so a TargetTerrain is safe to share across the
// worker pool that converts multiple maps concurrently (§5).
type TargetTerrain struct {
	Name               string
	MeshBounds         coords.AABB3D
	MeshCenter         coords.Vector3
	AllowedAssetNames  map[string]bool
	heightGrid         [GridSize][GridSize]float32
	cellWidth, cellDepth float64
}

// New bakes a TargetTerrain from a raw mesh. It fails if the mesh has no
// triangles whose XZ projection covers any grid cell, or if the mesh
// bounds are degenerate (zero width or depth) — both are TerrainError per
// §4.5, §7.
func New(name string, mesh Mesh, allowedAssetNames map[string]bool) (*TargetTerrain, error) {
	bounds := mesh.Bounds()
	if bounds.IsEmpty() {
		return nil, cerrs.ErrDegenerateBounds
	}
	width, depth := bounds.Max.X-bounds.Min.X, bounds.Max.Z-bounds.Min.Z
	if width <= 0 || depth <= 0 {
		return nil, cerrs.ErrDegenerateBounds
	}
	if len(mesh.Triangles) == 0 {
		return nil, cerrs.ErrNoTrianglesInXZ
	}

	t := &TargetTerrain{
		Name:              name,
		MeshBounds:        bounds,
		MeshCenter:        bounds.Center(),
		AllowedAssetNames: allowedAssetNames,
		cellWidth:         width / GridSize,
		cellDepth:         depth / GridSize,
	}

	minY := bounds.Min.Y
	anyHit := false
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cx := bounds.Min.X + (float64(col)+0.5)*t.cellWidth
			cz := bounds.Min.Z + (float64(row)+0.5)*t.cellDepth
			y, hit := sampleMesh(mesh, cx, cz)
			if hit {
				anyHit = true
				t.heightGrid[row][col] = float32(y)
			} else {
				t.heightGrid[row][col] = float32(minY)
			}
		}
	}
	if !anyHit {
		return nil, cerrs.ErrNoTrianglesInXZ
	}

	return t, nil
}

func sampleMesh(mesh Mesh, x, z float64) (y float64, ok bool) {
	for _, tri := range mesh.Triangles {
		a, b, c := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		if u, v, w, contains := triangleXZContains(a, b, c, x, z); contains {
			return heightAtTriangle(a, b, c, u, v, w), true
		}
	}
	return 0, false
}

// Center returns the mesh's bounding-box center.
func (t *TargetTerrain) Center() coords.Vector3 {
	return t.MeshCenter
}

// Bounds returns the mesh's 3D bounding box.
func (t *TargetTerrain) Bounds() coords.AABB3D {
	return t.MeshBounds
}

// IsAllowed reports whether the given asset name may be placed on this
// terrain. An empty allow-list means no restriction.
func (t *TargetTerrain) IsAllowed(assetName string) bool {
	if len(t.AllowedAssetNames) == 0 {
		return true
	}
	return t.AllowedAssetNames[assetName]
}

// HeightAt returns the ground height at world (x, z), clamping to the
// nearest edge cell outside mesh_bounds and bilinearly interpolating the
// four surrounding grid cells otherwise (§4.5).
func (t *TargetTerrain) HeightAt(x, z float64) float64 {
	fcol := (x - t.MeshBounds.Min.X) / t.cellWidth - 0.5
	frow := (z - t.MeshBounds.Min.Z) / t.cellDepth - 0.5

	fcol = clamp(fcol, 0, GridSize-1)
	frow = clamp(frow, 0, GridSize-1)

	col0 := int(fcol)
	row0 := int(frow)
	col1 := min(col0+1, GridSize-1)
	row1 := min(row0+1, GridSize-1)

	tx := fcol - float64(col0)
	tz := frow - float64(row0)

	h00 := float64(t.heightGrid[row0][col0])
	h10 := float64(t.heightGrid[row0][col1])
	h01 := float64(t.heightGrid[row1][col0])
	h11 := float64(t.heightGrid[row1][col1])

	h0 := h00 + (h10-h00)*tx
	h1 := h01 + (h11-h01)*tx
	return h0 + (h1-h0)*tz
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
