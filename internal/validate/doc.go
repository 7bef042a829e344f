// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package validate implements the `validate <scene-path>` CLI verb (§6,
// §8): it re-reads an emitted scene file and checks the invariants that
// must hold for any scene this tool produces — exactly two headquarters
// with distinct teams, a minimum spawn count per team, every gameplay
// node's XZ projection strictly inside the combat-area polygon, and
// unique ObjIds. It parses only the fixed subset of the format this
// package's own Scene Emitter writes (§4.9); it is not a general Godot
// scene parser.
package validate
