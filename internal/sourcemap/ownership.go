// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package sourcemap

import (
	"math"
	"strconv"
	"strings"
)

// AssignOwner implements the §4.2 owner-linkage policy for a spawn point
// name: a case-insensitive substring match against "axis", "allies", or
// "neutral", tie-broken by a numeric HQ id embedded in the name; if
// nothing matches, the spawn attaches to the nearest control point by
// Euclidean XZ distance.
func AssignOwner(spawnName string, spawn *SpawnPoint, controlPoints []*ControlPoint) *ControlPoint {
	lower := strings.ToLower(spawnName)
	id, hasID := embeddedID(lower)

	var candidates []*ControlPoint
	switch {
	case strings.Contains(lower, "axis"):
		candidates = filterRole(controlPoints, HeadquartersAxis)
	case strings.Contains(lower, "allies"):
		candidates = filterRole(controlPoints, HeadquartersAllies)
	case strings.Contains(lower, "neutral"):
		candidates = filterRole(controlPoints, NeutralCapturable)
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	if len(candidates) > 1 && hasID && id < len(candidates) {
		return candidates[id]
	}
	if len(candidates) > 0 {
		return candidates[0]
	}

	return nearest(spawn.Position.X, spawn.Position.Z, controlPoints)
}

func filterRole(cps []*ControlPoint, role Role_e) []*ControlPoint {
	var out []*ControlPoint
	for _, cp := range cps {
		if cp.Role == role {
			out = append(out, cp)
		}
	}
	return out
}

// embeddedID extracts the first run of digits in the name, treating it as
// a 1-based HQ id and converting to 0-based.
func embeddedID(lower string) (int, bool) {
	start := -1
	for i, r := range lower {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
		} else if start != -1 {
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(lower) && lower[end] >= '0' && lower[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(lower[start:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n - 1, true
}

func nearest(x, z float64, controlPoints []*ControlPoint) *ControlPoint {
	var best *ControlPoint
	bestDist := math.Inf(1)
	for _, cp := range controlPoints {
		dx, dz := cp.Position.X-x, cp.Position.Z-z
		d := dx*dx + dz*dz
		if d < bestDist {
			bestDist = d
			best = cp
		}
	}
	return best
}

// AssignHeadquarters implements the §4.2 control-point role policy: a
// control point already marked canBeCaptured=false, or whose name ends in
// "Base", is a headquarters candidate. If more than two qualify, the two
// with the greatest XZ separation are kept as headquarters and the rest
// demoted to NeutralCapturable. The first two keep Axis/Allies order as
// encountered.
func AssignHeadquarters(controlPoints []*ControlPoint, canBeCaptured map[string]bool) {
	var hqCandidates []*ControlPoint
	for _, cp := range controlPoints {
		if canBeCaptured[cp.Name] == false || strings.HasSuffix(cp.Name, "Base") {
			hqCandidates = append(hqCandidates, cp)
		} else {
			cp.Role = NeutralCapturable
		}
	}

	if len(hqCandidates) <= 2 {
		assignAxisAllies(hqCandidates)
		return
	}

	// keep the pair with greatest XZ separation; demote the rest
	var bestA, bestB *ControlPoint
	bestDist := -1.0
	for i := 0; i < len(hqCandidates); i++ {
		for j := i + 1; j < len(hqCandidates); j++ {
			a, b := hqCandidates[i], hqCandidates[j]
			dx, dz := a.Position.X-b.Position.X, a.Position.Z-b.Position.Z
			d := dx*dx + dz*dz
			if d > bestDist {
				bestDist = d
				bestA, bestB = a, b
			}
		}
	}
	for _, cp := range hqCandidates {
		if cp == bestA || cp == bestB {
			continue
		}
		cp.Role = NeutralCapturable
	}
	assignAxisAllies([]*ControlPoint{bestA, bestB})
}

func assignAxisAllies(hq []*ControlPoint) {
	roles := []Role_e{HeadquartersAxis, HeadquartersAllies}
	for i, cp := range hq {
		if i < len(roles) {
			cp.Role = roles[i]
		}
	}
}
