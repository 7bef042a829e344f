// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package terrain implements the Terrain Provider (§4.5): a 256x256 height
// grid baked from a target terrain mesh at load time, exposing bilinear
// ground-height queries, mesh bounds and center, and an allow-list for
// asset placement.
package terrain
