// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package runners drives one map's conversion through the §4 pipeline
// states Parsing -> Mapping -> Rebasing -> Snapping -> Emitting (a fatal
// error comes back as a *StageError naming the state it occurred in) and,
// for multi-map bundles, fans that driver out across a bounded worker pool
// (§5). Packaging an emitted scene into an experience is done by
// internal/packager, outside this package.
package runners
