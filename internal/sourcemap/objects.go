// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import "github.com/portalconv/portalconv/internal/coords"

// ControlPoint is a capturable point on the source map (§3).
type ControlPoint struct {
	Name     string
	Position coords.Vector3
	Team     Team_e
	Role     Role_e
}

// SpawnPoint is a soldier spawn, linked to the control point that owns it
// by the name-convention policy in §4.2.
type SpawnPoint struct {
	Position coords.Vector3
	Rotation coords.Rotation
	Owner    *ControlPoint
}

// VehicleSpawner places a vehicle of a fixed target class at a point
// (§3). SourceClass is the raw Refractor template name; TargetVehicleIndex
// is resolved against the fixed 16-entry target-vehicle enum (§6).
type VehicleSpawner struct {
	SourceClass       string
	TargetVehicleIndex int
	Position           coords.Vector3
	Rotation           coords.Rotation
	Team               Team_e
}

// PlacedObject is a static building, prop, or tree (§3, §4.2). SourceToken
// is the raw Object.create template name; asset resolution happens later,
// in internal/mapper, against the chosen base terrain.
type PlacedObject struct {
	ID          int
	SourceToken string
	Position    coords.Vector3
	Rotation    coords.Rotation
	Team        Team_e
	Name        string
	Extra       map[string]string
}
