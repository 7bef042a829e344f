// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category_e classifies an AssetRef (§3).
type Category_e int

const (
	Other Category_e = iota
	Tree
	Building
	Prop
	Vehicle
	StationaryWeapon
	Spawner
	Gameplay
	Terrain
	Water
)

var (
	// EnumToString is a helper map for marshalling the enum
	EnumToString = map[Category_e]string{
		Other:             "Other",
		Tree:              "Tree",
		Building:          "Building",
		Prop:              "Prop",
		Vehicle:           "Vehicle",
		StationaryWeapon:  "StationaryWeapon",
		Spawner:           "Spawner",
		Gameplay:          "Gameplay",
		Terrain:           "Terrain",
		Water:             "Water",
	}
	// StringToEnum is a helper map for unmarshalling the enum
	StringToEnum = map[string]Category_e{
		"Other":            Other,
		"Tree":             Tree,
		"Building":         Building,
		"Prop":             Prop,
		"Vehicle":          Vehicle,
		"StationaryWeapon": StationaryWeapon,
		"Spawner":          Spawner,
		"Gameplay":         Gameplay,
		"Terrain":          Terrain,
		"Water":            Water,
	}
)

// MarshalJSON implements the json.Marshaler interface.
func (e Category_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[e])
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Category_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *e, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Category %q", s)
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (e Category_e) String() string {
	if str, ok := EnumToString[e]; ok {
		return str
	}
	return fmt.Sprintf("Category(%d)", int(e))
}

// ClassifyDirectory derives a category from an asset's directory path
// prefix (§4.3): "Nature/Trees*" -> Tree, "Architecture/*" -> Building,
// "Props/*" -> Prop, "Gameplay/*" -> Gameplay, "Nature/Water*" -> Water,
// else Other.
func ClassifyDirectory(directory string) Category_e {
	lower := strings.ToLower(directory)
	switch {
	case strings.HasPrefix(lower, "nature/trees"):
		return Tree
	case strings.HasPrefix(lower, "architecture/"):
		return Building
	case strings.HasPrefix(lower, "props/"):
		return Prop
	case strings.HasPrefix(lower, "gameplay/"):
		return Gameplay
	case strings.HasPrefix(lower, "nature/water"):
		return Water
	default:
		return Other
	}
}

// ClassifyKeyword derives a category from a source token's own name via
// the §4.4 step-2 keyword rules, used by the category-fallback mapper
// tier.
func ClassifyKeyword(sourceToken string) Category_e {
	lower := strings.ToLower(sourceToken)
	switch {
	case containsAny(lower, "tree", "forest", "pine", "oak", "bush", "vegetation"):
		return Tree
	case containsAny(lower, "tank", "vehicle", "spawner"):
		return Vehicle
	case containsAny(lower, "wall", "bunker", "house", "barn", "building"):
		return Building
	case containsAny(lower, "lake", "pond", "water"):
		return Water
	default:
		return Prop
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
