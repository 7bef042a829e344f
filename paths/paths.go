// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package paths centralizes every filesystem path the conversion pipeline
// touches. Per §9's note on ad-hoc path lookups scattered across call sites,
// every component asks this package instead of hard-coding a path.
package paths

import (
	"os"
	"path/filepath"
)

// ProjectRoot returns the absolute path of the working directory, or the
// value of the PORTALCONV_ROOT environment variable when set.
func ProjectRoot() (string, error) {
	if root := os.Getenv("PORTALCONV_ROOT"); root != "" {
		return filepath.Abs(root)
	}
	return os.Getwd()
}

// SourceMapDir returns the conventional directory for a named source map.
func SourceMapDir(root, mapName string) string {
	return filepath.Join(root, "data", "maps", mapName)
}

// CatalogPath returns the path of the target-editor asset catalog document.
func CatalogPath(root string) string {
	return filepath.Join(root, "data", "input", "catalog.json")
}

// MappingPath returns the path of the explicit source-to-target mapping table.
func MappingPath(root string) string {
	return filepath.Join(root, "data", "input", "mapping.json")
}

// TerrainMeshPath returns the path of a base terrain's mesh description.
func TerrainMeshPath(root, terrainName string) string {
	return filepath.Join(root, "data", "terrains", terrainName+".mesh.json")
}

// ScenePath returns the output path of the emitted scene for a map.
func ScenePath(root, mapName string) string {
	return filepath.Join(root, "data", "output", mapName+".tscn")
}

// ExperiencePath returns the output path of the packaged experience for a map.
func ExperiencePath(root, mapName string) string {
	return filepath.Join(root, "data", "output", mapName+".experience.json")
}

// ReportPath returns the output path of the run report for a map.
func ReportPath(root, mapName string) string {
	return filepath.Join(root, "data", "output", mapName+".report.json")
}

// WriteFileAtomic writes data to path through a temp-file-plus-rename so a
// crashed run never leaves a half-written artifact (§5).
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
