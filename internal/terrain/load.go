// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package terrain

import (
	"encoding/json"
	"os"

	"github.com/portalconv/portalconv/internal/coords"
)

// rawMesh mirrors a base terrain's mesh description document on disk: a
// flat vertex list and index triples into it (§4.5).
type rawMesh struct {
	Vertices  []coords.Vector3 `json:"vertices"`
	Triangles [][3]int         `json:"triangles"`
}

// LoadMeshFile reads a base terrain's mesh description JSON document and
// bakes it into a TargetTerrain (§4.5). allowedAssetNames is the set of
// asset type names the chosen editor allows on this terrain; an empty or
// nil set means unrestricted.
func LoadMeshFile(name, path string, allowedAssetNames map[string]bool) (*TargetTerrain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadMesh(name, data, allowedAssetNames)
}

// LoadMesh parses a mesh document already read into memory.
func LoadMesh(name string, data []byte, allowedAssetNames map[string]bool) (*TargetTerrain, error) {
	var raw rawMesh
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	mesh := Mesh{Vertices: raw.Vertices, Triangles: raw.Triangles}
	return New(name, mesh, allowedAssetNames)
}
