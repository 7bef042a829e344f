// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package packager

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/portalconv/portalconv/cerrs"
	"github.com/portalconv/portalconv/internal/config"
)

const (
	ErrInvalidMaxPlayers = cerrs.Error("max players per team must be 16, 32, or 64")
	ErrInvalidGameMode   = cerrs.Error("game mode must be Conquest, Rush, TeamDeathmatch, or Breakthrough")
	ErrNoMaps            = cerrs.Error("experience bundle requires at least one map")
)

var validMaxPlayers = map[int]bool{16: true, 32: true, 64: true}
var validGameModes = map[string]bool{"Conquest": true, "Rush": true, "TeamDeathmatch": true, "Breakthrough": true}

// attachmentNamespace seeds the deterministic attachment ids below. Fixed
// so that two runs over the same inputs produce byte-identical envelopes
// (§5, §8) instead of a fresh random id every time.
var attachmentNamespace = uuid.MustParse("c6e9f0a2-3b8d-4e7f-9c1a-7f2d6b5e4a10")

// Envelope is the fixed experience-JSON shape (§4.10). Field order here
// drives json.Marshal's output order.
type Envelope struct {
	Mutators          Mutators           `json:"mutators"`
	AssetRestrictions map[string]any     `json:"assetRestrictions"`
	GameMode          string             `json:"gameMode"`
	MapRotation       []MapRotationEntry `json:"mapRotation"`
	Attachments       []Attachment       `json:"attachments"`
}

// Mutators holds the overridable knobs §4.10 requires: max players per team
// and game mode.
type Mutators struct {
	MaxPlayersPerTeam int    `json:"maxPlayersPerTeam"`
	GameMode          string `json:"gameMode"`
}

// MapRotationEntry is one rotation slot, pointing at its scene attachment
// by id.
type MapRotationEntry struct {
	ID                string `json:"id"`
	SpatialAttachment string `json:"spatialAttachment"`
}

// Attachment carries one base64-encoded scene payload (§4.10). MapIdx ties
// the attachment back to its MapRotation slot in a multi-map bundle.
type Attachment struct {
	ID               string         `json:"id"`
	Filename         string         `json:"filename"`
	AttachmentData   AttachmentData `json:"attachmentData"`
	AttachmentType   int            `json:"attachmentType"`
	Version          string         `json:"version"`
	IsProcessable    bool           `json:"isProcessable"`
	ProcessingStatus int            `json:"processingStatus"`
	MapIdx           int            `json:"mapIdx"`
}

type AttachmentData struct {
	Original string `json:"original"`
}

// MapInput is one map's scene ready for packaging.
type MapInput struct {
	MapName     string
	BaseTerrain string
	SceneBytes  []byte
}

// Build assembles the experience envelope for one or more maps (§4.10).
// customModeSuffix becomes the map-rotation id suffix
// ("<base_terrain>-<suffix>"); an empty suffix defaults to "conversion".
func Build(maps []MapInput, pkg config.Packager_t, customModeSuffix string) (*Envelope, error) {
	if len(maps) == 0 {
		return nil, ErrNoMaps
	}
	if !validMaxPlayers[pkg.MaxPlayersPerTeam] {
		return nil, ErrInvalidMaxPlayers
	}
	if !validGameModes[pkg.GameMode] {
		return nil, ErrInvalidGameMode
	}
	if customModeSuffix == "" {
		customModeSuffix = "conversion"
	}

	env := &Envelope{
		Mutators: Mutators{
			MaxPlayersPerTeam: pkg.MaxPlayersPerTeam,
			GameMode:          pkg.GameMode,
		},
		AssetRestrictions: map[string]any{},
		GameMode:          pkg.GameMode,
		MapRotation:       make([]MapRotationEntry, 0, len(maps)),
		Attachments:       make([]Attachment, 0, len(maps)),
	}

	for idx, m := range maps {
		attachmentID := uuid.NewSHA1(attachmentNamespace, []byte(fmt.Sprintf("%s-%d", m.MapName, idx))).String()
		rotationID := fmt.Sprintf("%s-%s", m.BaseTerrain, customModeSuffix)

		env.MapRotation = append(env.MapRotation, MapRotationEntry{
			ID:                rotationID,
			SpatialAttachment: attachmentID,
		})
		env.Attachments = append(env.Attachments, Attachment{
			ID:               attachmentID,
			Filename:         fmt.Sprintf("%s.spatial.json", m.MapName),
			AttachmentData:   AttachmentData{Original: encodeSceneBytes(m.SceneBytes)},
			AttachmentType:   1,
			Version:          "123",
			IsProcessable:    true,
			ProcessingStatus: 2,
			MapIdx:           idx,
		})
	}

	return env, nil
}
