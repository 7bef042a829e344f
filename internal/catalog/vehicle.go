// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import "strings"

// TargetVehicles is the fixed, 16-entry target-vehicle enum (§6). Mapping
// tables and the Asset Mapper's vehicle resolution must use exclusively
// these indices.
var TargetVehicles = [16]string{
	"Abrams", "Leopard", "Cheetah", "CV90",
	"Gepard", "UH60", "Eurocopter", "AH64",
	"Vector", "Quadbike", "Flyer60", "JAS39",
	"F22", "F16", "M2Bradley", "SU57",
}

// TargetVehicleIndex returns the index of name in TargetVehicles, or -1 if
// name is not one of the fixed 16 (case-insensitive).
func TargetVehicleIndex(name string) int {
	lower := strings.ToLower(name)
	for i, v := range TargetVehicles {
		if strings.ToLower(v) == lower {
			return i
		}
	}
	return -1
}

// GuessVehicleIndex resolves a raw Refractor source class name to a
// target-vehicle index by substring match against TargetVehicles (e.g. a
// source class "T90_Tank" matching no entry falls through to -1, leaving
// the caller to record a MappingMiss).
func GuessVehicleIndex(sourceClass string) int {
	lower := strings.ToLower(sourceClass)
	for i, v := range TargetVehicles {
		if strings.Contains(lower, strings.ToLower(v)) {
			return i
		}
	}
	return -1
}
