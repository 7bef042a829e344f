// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package packager

import (
	"encoding/json"
	"testing"

	"github.com/portalconv/portalconv/internal/config"
)

func TestBuildSingleMapEnvelope(t *testing.T) {
	pkg := config.Default().Packager
	env, err := Build([]MapInput{{MapName: "Valley", BaseTerrain: "DesertValley", SceneBytes: []byte("scene-bytes")}}, pkg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.MapRotation) != 1 || len(env.Attachments) != 1 {
		t.Fatalf("want 1 rotation entry and 1 attachment, got %d/%d", len(env.MapRotation), len(env.Attachments))
	}
	if env.MapRotation[0].ID != "DesertValley-conversion" {
		t.Fatalf("want id DesertValley-conversion, got %q", env.MapRotation[0].ID)
	}
	if env.MapRotation[0].SpatialAttachment != env.Attachments[0].ID {
		t.Fatalf("rotation's spatialAttachment must match the attachment id")
	}
	if env.Attachments[0].MapIdx != 0 {
		t.Fatalf("want mapIdx 0, got %d", env.Attachments[0].MapIdx)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(raw, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := round["assetRestrictions"]; !ok {
		t.Fatalf("want assetRestrictions key present")
	}
}

func TestBuildMultiMapBundleIndexesAttachments(t *testing.T) {
	pkg := config.Default().Packager
	maps := []MapInput{
		{MapName: "Valley", BaseTerrain: "DesertValley", SceneBytes: []byte("a")},
		{MapName: "Port", BaseTerrain: "CoastalPort", SceneBytes: []byte("b")},
	}
	env, err := Build(maps, pkg, "custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range env.Attachments {
		if a.MapIdx != i {
			t.Fatalf("attachment %d: want MapIdx %d, got %d", i, i, a.MapIdx)
		}
	}
	if env.MapRotation[1].ID != "CoastalPort-custom" {
		t.Fatalf("want CoastalPort-custom, got %q", env.MapRotation[1].ID)
	}
}

func TestBuildRejectsInvalidMaxPlayers(t *testing.T) {
	pkg := config.Default().Packager
	pkg.MaxPlayersPerTeam = 48
	_, err := Build([]MapInput{{MapName: "Valley", BaseTerrain: "DesertValley"}}, pkg, "")
	if err != ErrInvalidMaxPlayers {
		t.Fatalf("want ErrInvalidMaxPlayers, got %v", err)
	}
}

func TestBuildRejectsInvalidGameMode(t *testing.T) {
	pkg := config.Default().Packager
	pkg.GameMode = "DeathRace"
	_, err := Build([]MapInput{{MapName: "Valley", BaseTerrain: "DesertValley"}}, pkg, "")
	if err != ErrInvalidGameMode {
		t.Fatalf("want ErrInvalidGameMode, got %v", err)
	}
}

func TestBuildRejectsEmptyMapList(t *testing.T) {
	pkg := config.Default().Packager
	_, err := Build(nil, pkg, "")
	if err != ErrNoMaps {
		t.Fatalf("want ErrNoMaps, got %v", err)
	}
}

func TestBuildIsDeterministicAcrossRuns(t *testing.T) {
	pkg := config.Default().Packager
	maps := []MapInput{{MapName: "Valley", BaseTerrain: "DesertValley", SceneBytes: []byte("hello")}}

	first, err := Build(maps, pkg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(maps, pkg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("want byte-identical envelopes across runs, got:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestBuildEncodesSceneBytesAsBase64(t *testing.T) {
	pkg := config.Default().Packager
	env, err := Build([]MapInput{{MapName: "Valley", BaseTerrain: "DesertValley", SceneBytes: []byte("hello")}}, pkg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Attachments[0].AttachmentData.Original != "aGVsbG8=" {
		t.Fatalf("want base64(\"hello\")=aGVsbG8=, got %q", env.Attachments[0].AttachmentData.Original)
	}
}
