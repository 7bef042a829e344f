// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import "fmt"

// ExtResource is one row of the scene's external-resource table (§4.9).
type ExtResource struct {
	ID     int
	Symbol string
	Path   string
}

// fixedResourcePaths maps the editor's fixed symbolic resource names to
// their resource paths (§4.9). Base-terrain-specific entries are appended
// per run by NewExtResourceTable.
var fixedResourcePaths = map[string]string{
	"HQ_PlayerSpawner": "res://gameplay/hq_player_spawner.tscn",
	"SpawnPoint":       "res://gameplay/spawn_point.tscn",
	"CapturePoint":     "res://gameplay/capture_point.tscn",
	"VehicleSpawner":   "res://gameplay/vehicle_spawner.tscn",
	"CombatArea":       "res://gameplay/combat_area.tscn",
	"PolygonVolume":    "res://gameplay/polygon_volume.tscn",
}

// NewExtResourceTable builds the numbered, stable external-resource table
// for one base terrain: the fixed gameplay entries in declared order,
// followed by the terrain's mesh and asset-pack entries (§4.9).
func NewExtResourceTable(baseTerrain string) []ExtResource {
	order := []string{
		"HQ_PlayerSpawner", "SpawnPoint", "CapturePoint",
		"VehicleSpawner", "CombatArea", "PolygonVolume",
	}
	table := make([]ExtResource, 0, len(order)+2)
	id := 1
	for _, symbol := range order {
		table = append(table, ExtResource{ID: id, Symbol: symbol, Path: fixedResourcePaths[symbol]})
		id++
	}
	table = append(table,
		ExtResource{ID: id, Symbol: fmt.Sprintf("%s_Terrain", baseTerrain), Path: fmt.Sprintf("res://terrains/%s/terrain.tscn", baseTerrain)},
		ExtResource{ID: id + 1, Symbol: fmt.Sprintf("%s_Assets", baseTerrain), Path: fmt.Sprintf("res://terrains/%s/assets.tscn", baseTerrain)},
	)
	return table
}
