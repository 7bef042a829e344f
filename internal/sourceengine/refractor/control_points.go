// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package refractor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/portalconv/portalconv/internal/script"
	"github.com/portalconv/portalconv/internal/sourcemap"
)

// parseControlPoints reads Conquest/ControlPoints.con and builds one
// ControlPoint per Object.create block, recording each point's
// canBeCaptured flag for the later headquarters-assignment pass (§4.2).
func parseControlPoints(dir string) ([]*sourcemap.ControlPoint, map[string]bool, error) {
	path := filepath.Join(dir, "Conquest", "ControlPoints.con")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, map[string]bool{}, nil
		}
		return nil, nil, err
	}

	directives, err := script.Tokenize(path, data)
	if err != nil {
		return nil, nil, err
	}

	var controlPoints []*sourcemap.ControlPoint
	canBeCaptured := map[string]bool{}

	err = walkObjects(path, directives, func(p pendingObject) {
		name := p.Name
		if name == "" {
			name = p.Template
		}
		cp := &sourcemap.ControlPoint{
			Name:     name,
			Position: p.Position,
			Team:     sourcemap.TeamFromSetTeam(p.Team),
		}
		controlPoints = append(controlPoints, cp)

		cbc := true
		if p.CanBeCaptured != nil {
			cbc = *p.CanBeCaptured
		} else if strings.HasSuffix(name, "Base") {
			cbc = false
		}
		canBeCaptured[name] = cbc
	})
	if err != nil {
		return nil, nil, err
	}

	return controlPoints, canBeCaptured, nil
}
