// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"os"
	"path/filepath"

	"github.com/portalconv/portalconv/internal/script"
	"github.com/portalconv/portalconv/internal/sourcemap"
)

// parseSoldierSpawns reads Conquest/SoldierSpawns.con and links each spawn
// to its owning control point via the §4.2 owner-linkage policy.
func parseSoldierSpawns(dir string, controlPoints []*sourcemap.ControlPoint) ([]*sourcemap.SpawnPoint, error) {
	path := filepath.Join(dir, "Conquest", "SoldierSpawns.con")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	directives, err := script.Tokenize(path, data)
	if err != nil {
		return nil, err
	}

	var spawns []*sourcemap.SpawnPoint
	err = walkObjects(path, directives, func(p pendingObject) {
		name := p.Name
		if name == "" {
			name = p.Template
		}
		sp := &sourcemap.SpawnPoint{
			Position: p.Position,
			Rotation: p.Rotation,
		}
		sp.Owner = sourcemap.AssignOwner(name, sp, controlPoints)
		spawns = append(spawns, sp)
	})
	if err != nil {
		return nil, err
	}

	return spawns, nil
}
