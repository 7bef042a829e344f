// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package refractor implements the sourceengine.Engine for the Refractor
// engine's conventional map directory layout (§4.2): Init.con,
// Conquest/ControlPoints.con, Conquest/SoldierSpawns.con,
// Conquest/ObjectSpawns.con, StaticObjects.con, and Heightdata/HeightMap.raw.
package refractor
