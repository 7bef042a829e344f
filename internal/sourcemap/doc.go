// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sourcemap defines the SourceMap data model (§3) and the types
// the Source Map Parser assembles: control points, spawn points, vehicle
// spawners, and static placed objects. A SourceMap is not immutable once
// the parser returns it: runners.Pipeline.Convert rebases and snaps its
// objects in place, and ResetSpawnsCircular replaces its spawn points.
package sourcemap
