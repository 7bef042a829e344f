// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	data := []byte(`{
		"AssetTypes": [
			{"type": "Pine_Tree_01", "directory": "Nature/Trees/Pine", "levelRestrictions": []},
			{"type": "Oak_Tree_02", "directory": "Nature/Trees/Oak", "levelRestrictions": ["Desert"]},
			{"type": "Barn_House_01", "directory": "Architecture/Barns", "levelRestrictions": []},
			{"type": "Sand_Rock_01", "directory": "Props/Rocks", "levelRestrictions": ["Desert"]}
		]
	}`)
	c, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestByNameExactMatch(t *testing.T) {
	c := testCatalog(t)
	ref, ok := c.ByName("Pine_Tree_01")
	if !ok {
		t.Fatalf("expected Pine_Tree_01 to be found")
	}
	if ref.Category != Tree {
		t.Fatalf("want category Tree, got %v", ref.Category)
	}
}

func TestIsAllowedRespectsRestrictions(t *testing.T) {
	c := testCatalog(t)
	if !c.IsAllowed("Pine_Tree_01", "Forest") {
		t.Fatalf("unrestricted asset should be allowed anywhere")
	}
	if !c.IsAllowed("Oak_Tree_02", "Desert") {
		t.Fatalf("Oak_Tree_02 should be allowed on Desert")
	}
	if c.IsAllowed("Oak_Tree_02", "Forest") {
		t.Fatalf("Oak_Tree_02 should not be allowed on Forest")
	}
}

func TestClassifyByDirectory(t *testing.T) {
	c := testCatalog(t)
	if got := c.Classify("Barn_House_01"); got != Building {
		t.Fatalf("want Building, got %v", got)
	}
	if got := c.Classify("Sand_Rock_01"); got != Prop {
		t.Fatalf("want Prop, got %v", got)
	}
	if got := c.Classify("Unknown_Name"); got != Other {
		t.Fatalf("want Other for unknown name, got %v", got)
	}
}

func TestSearchExcludesAssetRestrictedToOtherTerrain(t *testing.T) {
	c := testCatalog(t)
	got := c.Search(Tree, []string{"tree", "pine"}, "Forest")
	if len(got) != 1 {
		t.Fatalf("want 1 match (Oak restricted to Desert), got %d: %+v", len(got), got)
	}
	if got[0].TargetType != "Pine_Tree_01" {
		t.Fatalf("want Pine_Tree_01, got %v", got[0].TargetType)
	}
}

func TestSearchFiltersByAllowedTerrain(t *testing.T) {
	c := testCatalog(t)
	got := c.Search(Tree, []string{"tree"}, "Desert")
	if len(got) != 2 {
		t.Fatalf("want 2 matches on Desert, got %d: %+v", len(got), got)
	}
}
