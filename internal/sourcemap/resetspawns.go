// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import (
	"math"

	"github.com/portalconv/portalconv/internal/coords"
)

// ResetSpawnsCircular replaces every headquarters' spawn points with a new
// set evenly distributed around a circle of radiusMeters centered on that
// headquarters' own position, facing inward. Spawn points whose owner is
// not a headquarters, or that have no owner, are dropped. This is an explicit opt-in
// transform (the `reset-spawns` CLI verb): the default conversion pipeline
// always carries a map's spawn points through verbatim.
func ResetSpawnsCircular(m *SourceMap, radiusMeters float64) {
	byOwner := make(map[*ControlPoint]int)
	for _, sp := range m.SpawnPoints {
		byOwner[sp.Owner]++
	}

	var rebuilt []*SpawnPoint
	for _, cp := range m.ControlPoints {
		if !cp.Role.IsHeadquarters() {
			continue
		}
		n := byOwner[cp]
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			pos := cp.Position
			pos.X += radiusMeters * math.Cos(angle)
			pos.Z += radiusMeters * math.Sin(angle)
			// Face the spawn back toward its headquarters.
			facingDegrees := angle*180/math.Pi + 180
			rebuilt = append(rebuilt, &SpawnPoint{
				Position: pos,
				Rotation: coords.Rotation{Yaw: facingDegrees},
				Owner:    cp,
			})
		}
	}
	m.SpawnPoints = rebuilt
}
