// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sourceengine defines the plugin boundary between the Source Map
// Parser and a specific game engine's on-disk script conventions (§4.2,
// §9). The Refractor-engine implementation lives in the refractor
// subpackage; additional engines register their own Engine values without
// touching the core pipeline.
package sourceengine

import "github.com/portalconv/portalconv/internal/sourcemap"

// Engine recognizes and parses one game engine's source-map directory
// layout into a sourcemap.SourceMap.
type Engine interface {
	// Name identifies the engine for logging and run reports.
	Name() string
	// CanParse reports whether dir looks like this engine's map layout.
	CanParse(dir string) bool
	// Parse consumes dir's directive files and assembles a SourceMap.
	Parse(dir string) (*sourcemap.SourceMap, error)
}
