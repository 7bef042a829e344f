// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"os"
	"path/filepath"

	"github.com/portalconv/portalconv/internal/catalog"
	"github.com/portalconv/portalconv/internal/script"
	"github.com/portalconv/portalconv/internal/sourcemap"
)

// parseObjectSpawns reads Conquest/ObjectSpawns.con and resolves each
// vehicle template to the fixed 16-entry target-vehicle enum (§6). A
// template that matches none of the 16 is kept with index -1 rather than
// aborting the parse; if the explicit mapping table does not resolve it
// either, runners.Pipeline notes it in the run report and emits no node.
func parseObjectSpawns(dir string) ([]*sourcemap.VehicleSpawner, error) {
	path := filepath.Join(dir, "Conquest", "ObjectSpawns.con")
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

	var spawners []*sourcemap.VehicleSpawner
	err = walkObjects(path, directives, func(p pendingObject) {
		spawners = append(spawners, &sourcemap.VehicleSpawner{
			SourceClass:        p.Template,
			TargetVehicleIndex: catalog.GuessVehicleIndex(p.Template),
			Position:           p.Position,
			Rotation:           p.Rotation,
			Team:               sourcemap.TeamFromSetTeam(p.Team),
		})
	})
	if err != nil {
		return nil, err
	}

	return spawners, nil
}
