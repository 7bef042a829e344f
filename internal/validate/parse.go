// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package validate

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Node is one parsed `[node ...]` block from an emitted scene file, kept
// only as deeply as the §8 invariants need: its header fields, its ObjId,
// and the raw property values keyed by name.
type Node struct {
	Name       string
	ParentPath string
	Resource   string
	ObjId      int
	HasObjId   bool
	Properties map[string]string
	LineNo     int
}

// Scene is the parsed form of an emitted .tscn-shaped scene file.
type Scene struct {
	LoadSteps int
	Nodes     []Node
}

var (
	headerRe  = regexp.MustCompile(`^\[gd_scene load_steps=(\d+) format=\d+\]$`)
	nodeRe    = regexp.MustCompile(`^\[node name="((?:[^"\\]|\\.)*)" parent="((?:[^"\\]|\\.)*)" instance=ExtResource\("((?:[^"\\]|\\.)*)"\)\]$`)
	rootRe    = regexp.MustCompile(`^\[node name="((?:[^"\\]|\\.)*)" type="Node3D"\]$`)
	objIDRe   = regexp.MustCompile(`^ObjId = (-?\d+)$`)
	propRe    = regexp.MustCompile(`^(\w+) = (.+)$`)
)

// Parse reads raw scene bytes into a Scene. It is forgiving of unknown
// property lines (it keeps them verbatim for FindTransform/FindPolygon to
// interpret) but requires the header and at least the root node to be
// present, matching what scene.Emit writes (§4.9).
func Parse(data []byte) (*Scene, error) {
	sc := &Scene{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	var current *Node

	flush := func() {
		if current != nil {
			sc.Nodes = append(sc.Nodes, *current)
			current = nil
		}
	}

	sawHeader := false
	sawRoot := false
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			sc.LoadSteps = n
			sawHeader = true
			continue
		}
		if m := rootRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Node{Name: m[1], Properties: map[string]string{}, LineNo: lineNo}
			sawRoot = true
			continue
		}
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Node{Name: m[1], ParentPath: m[2], Resource: m[3], Properties: map[string]string{}, LineNo: lineNo}
			continue
		}
		if strings.HasPrefix(line, "[ext_resource") {
			continue
		}
		if m := objIDRe.FindStringSubmatch(line); m != nil && current != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: malformed ObjId: %v", lineNo, err)
			}
			current.ObjId = n
			current.HasObjId = true
			continue
		}
		if m := propRe.FindStringSubmatch(line); m != nil && current != nil {
			current.Properties[m[1]] = m[2]
			continue
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("missing scene header")
	}
	if !sawRoot {
		return nil, fmt.Errorf("missing root node")
	}
	return sc, nil
}

// transformRe pulls the twelve Transform3D components out of a
// `transform = Transform3D(...)` property value.
var transformRe = regexp.MustCompile(`Transform3D\(([^)]*)\)`)

// FindTransform extracts the 3x3 basis and position from a node's
// transform property, if any.
func (n Node) FindTransform() (basis [3][3]float64, position [3]float64, ok bool) {
	raw, exists := n.Properties["transform"]
	if !exists {
		return basis, position, false
	}
	m := transformRe.FindStringSubmatch(raw)
	if m == nil {
		return basis, position, false
	}
	parts := strings.Split(m[1], ",")
	if len(parts) != 12 {
		return basis, position, false
	}
	vals := make([]float64, 12)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return basis, position, false
		}
		vals[i] = v
	}
	basis = [3][3]float64{
		{vals[0], vals[1], vals[2]},
		{vals[3], vals[4], vals[5]},
		{vals[6], vals[7], vals[8]},
	}
	position = [3]float64{vals[9], vals[10], vals[11]}
	return basis, position, true
}

// pointRe matches one "(x, z)" pair inside a points = [...] property.
var pointRe = regexp.MustCompile(`\(\s*([^,]+)\s*,\s*([^)]+)\s*\)`)

// FindPolygon extracts the XZ points from a node's points property, if
// any.
func (n Node) FindPolygon() ([][2]float64, bool) {
	raw, exists := n.Properties["points"]
	if !exists {
		return nil, false
	}
	matches := pointRe.FindAllStringSubmatch(raw, -1)
	if matches == nil {
		return nil, false
	}
	out := make([][2]float64, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if errX != nil || errZ != nil {
			continue
		}
		out = append(out, [2]float64{x, z})
	}
	return out, true
}
