// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"os"
	"path/filepath"

	"github.com/portalconv/portalconv/internal/script"
	"github.com/portalconv/portalconv/internal/sourcemap"
)

// parseStaticObjects reads StaticObjects.con: buildings, props, and trees
// (§4.2). IDs are assigned in file order starting at 1.
func parseStaticObjects(dir string) ([]*sourcemap.PlacedObject, error) {
	path := filepath.Join(dir, "StaticObjects.con")
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

	var objects []*sourcemap.PlacedObject
	nextID := 1
	err = walkObjects(path, directives, func(p pendingObject) {
		objects = append(objects, &sourcemap.PlacedObject{
			ID:          nextID,
			SourceToken: p.Template,
			Position:    p.Position,
			Rotation:    p.Rotation,
			Team:        sourcemap.TeamFromSetTeam(p.Team),
			Name:        p.Name,
			Extra:       p.Extra,
		})
		nextID++
	})
	if err != nil {
		return nil, err
	}

	return objects, nil
}
