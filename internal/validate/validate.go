// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"fmt"
	"sort"
	"strconv"
)

// Issue is one failed invariant, reported with enough context (node name,
// line number when known) that a level author can find and fix it.
type Issue struct {
	Rule    string
	Detail  string
	Node    string
	LineNo  int
}

func (i Issue) String() string {
	if i.Node != "" {
		return fmt.Sprintf("%s: %s (node %q, line %d)", i.Rule, i.Detail, i.Node, i.LineNo)
	}
	return fmt.Sprintf("%s: %s", i.Rule, i.Detail)
}

// Result is the outcome of validating one scene.
type Result struct {
	Issues []Issue
}

// OK reports whether the scene passed every invariant.
func (r Result) OK() bool { return len(r.Issues) == 0 }

const minSpawnsPerTeam = 4

// Validate checks sc against the invariants every emitted scene must
// satisfy (§8): exactly two headquarters on distinct teams, at least
// minSpawnsPerTeam spawn points per headquarters, every gameplay node's XZ
// projection strictly inside the combat-area polygon, and unique ObjIds.
func Validate(sc *Scene) Result {
	var res Result

	headquarters := make(map[string]Node) // name -> node
	var hqOrder []string
	spawnsByParent := map[string]int{}
	objIDs := map[int][]Node{}
	var combatPolygon [][2]float64
	var haveCombatArea bool
	var gameplayNodes []Node

	for _, n := range sc.Nodes {
		if n.HasObjId {
			objIDs[n.ObjId] = append(objIDs[n.ObjId], n)
		}

		switch n.Resource {
		case "HQ_PlayerSpawner":
			headquarters[n.Name] = n
			hqOrder = append(hqOrder, n.Name)
			gameplayNodes = append(gameplayNodes, n)
		case "SpawnPoint":
			spawnsByParent[n.ParentPath]++
			gameplayNodes = append(gameplayNodes, n)
		case "CapturePoint", "VehicleSpawner":
			gameplayNodes = append(gameplayNodes, n)
		case "PolygonVolume":
			if n.ParentPath == "CombatArea" {
				if pts, ok := n.FindPolygon(); ok {
					combatPolygon = pts
					haveCombatArea = true
				}
			}
		}
	}

	if len(headquarters) != 2 {
		res.Issues = append(res.Issues, Issue{
			Rule:   "headquarters-count",
			Detail: fmt.Sprintf("want exactly 2 headquarters, found %d", len(headquarters)),
		})
	}

	seenTeams := map[int]bool{}
	for _, name := range hqOrder {
		hq := headquarters[name]
		teamRaw, ok := hq.Properties["team"]
		if !ok {
			res.Issues = append(res.Issues, Issue{Rule: "headquarters-team", Detail: "missing team property", Node: name, LineNo: hq.LineNo})
			continue
		}
		team, err := strconv.Atoi(teamRaw)
		if err != nil {
			res.Issues = append(res.Issues, Issue{Rule: "headquarters-team", Detail: "unparsable team property: " + teamRaw, Node: name, LineNo: hq.LineNo})
			continue
		}
		if seenTeams[team] {
			res.Issues = append(res.Issues, Issue{Rule: "headquarters-distinct-teams", Detail: fmt.Sprintf("team %d claimed by more than one headquarters", team), Node: name, LineNo: hq.LineNo})
		}
		seenTeams[team] = true

		if got := spawnsByParent[name]; got < minSpawnsPerTeam {
			res.Issues = append(res.Issues, Issue{
				Rule:   "minimum-spawns",
				Detail: fmt.Sprintf("want at least %d spawn points, found %d", minSpawnsPerTeam, got),
				Node:   name,
				LineNo: hq.LineNo,
			})
		}
	}

	for id, nodes := range objIDs {
		if len(nodes) > 1 {
			names := make([]string, len(nodes))
			for i, n := range nodes {
				names[i] = n.Name
			}
			sort.Strings(names)
			res.Issues = append(res.Issues, Issue{
				Rule:   "unique-objid",
				Detail: fmt.Sprintf("ObjId %d reused by nodes %v", id, names),
			})
		}
	}

	if !haveCombatArea {
		res.Issues = append(res.Issues, Issue{Rule: "combat-area-missing", Detail: "no CombatArea polygon volume found"})
	} else {
		for _, n := range gameplayNodes {
			_, pos, ok := n.FindTransform()
			if !ok {
				continue
			}
			if !pointInPolygon(pos[0], pos[2], combatPolygon) {
				res.Issues = append(res.Issues, Issue{
					Rule:   "combat-area-containment",
					Detail: fmt.Sprintf("position (%.3f, %.3f) falls outside the combat area", pos[0], pos[2]),
					Node:   n.Name,
					LineNo: n.LineNo,
				})
			}
		}
	}

	sort.Slice(res.Issues, func(i, j int) bool {
		if res.Issues[i].Rule != res.Issues[j].Rule {
			return res.Issues[i].Rule < res.Issues[j].Rule
		}
		return res.Issues[i].Node < res.Issues[j].Node
	})

	return res
}

// pointInPolygon is a standard even-odd ray-casting test over the XZ plane.
// Points exactly on an edge are treated as outside, matching the "strictly
// inside" wording of §8.
func pointInPolygon(x, z float64, poly [][2]float64) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, zi := poly[i][0], poly[i][1]
		xj, zj := poly[j][0], poly[j][1]
		if (xj-xi)*(z-zi)-(zj-zi)*(x-xi) == 0 && (x-xi)*(x-xj) <= 0 && (z-zi)*(z-zj) <= 0 {
			return false
		}
		if (zi > z) != (zj > z) {
			xCross := xi + (z-zi)/(zj-zi)*(xj-xi)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
