// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package scene builds a Scene's in-memory node list and serializes it to
// the editor's .tscn-shaped text format (§4.9): a header, an ordered
// external-resource table, and node records with Transform3D-formatted
// properties.
package scene
