// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package coords implements the 3D geometry used to move objects from a
// Refractor-engine source map into a target terrain's local space: vectors,
// Euler rotations, the engine's column-major Transform3D string form, axis-
// aligned bounding boxes, the axis-remap enumeration used by the Orientation
// Solver, and the Coordinate Rebaser that composes them.
package coords
