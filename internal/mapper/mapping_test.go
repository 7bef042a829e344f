// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mapper

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMappingFileMissingIsNotError(t *testing.T) {
	got, err := LoadMappingFile(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty table, got %v", got)
	}
}

func TestTableResolvePerTerrainOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	content := `{"SourceToken": {"default": "Generic_Rock", "perTerrain": {"Desert": "Desert_Rock"}}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := LoadMappingFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := table.Resolve("SourceToken", "Desert")
	if !ok || got != "Desert_Rock" {
		t.Fatalf("want Desert_Rock override, got %q (ok=%v)", got, ok)
	}

	got, ok = table.Resolve("SourceToken", "Forest")
	if !ok || got != "Generic_Rock" {
		t.Fatalf("want Generic_Rock default, got %q (ok=%v)", got, ok)
	}
}
