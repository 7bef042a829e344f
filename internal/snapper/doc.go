// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package snapper implements the Height Snapper (§4.8): it sets a placed
// object's y to the target terrain's ground height at (x, z) plus a
// class-dependent clearance, clamping and annotating points that fall
// outside the terrain's mesh bounds rather than failing.
package snapper
