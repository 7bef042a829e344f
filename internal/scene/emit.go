// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import (
	"fmt"
	"strings"
)

// Emit serializes s into the editor's .tscn-shaped text format (§4.9).
// Output uses "\n" line endings only, carries no BOM, and is byte-stable
// for a fixed Scene value: the caller is responsible for having already
// assigned ObjIds and ordered Nodes per the §3 invariant.
func Emit(s *Scene) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[gd_scene load_steps=%d format=3]\n\n", len(s.ExtResources))

	for _, res := range s.ExtResources {
		fmt.Fprintf(&b, "[ext_resource id=%d symbol=%q path=%q]\n", res.ID, res.Symbol, res.Path)
	}
	b.WriteString("\n")

	for i, node := range s.Nodes {
		writeNode(&b, node)
		if i != len(s.Nodes)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeNode(b *strings.Builder, n NodeRecord) {
	switch n.Kind {
	case KindRoot:
		b.WriteString(`[node name="Root" type="Node3D"]` + "\n")
	default:
		fmt.Fprintf(b, "[node name=%q parent=%q instance=ExtResource(%q)]\n", n.Name, n.ParentPath, n.Resource)
	}

	if n.Kind != KindRoot {
		fmt.Fprintf(b, "ObjId = %d\n", n.ObjId)
	}

	for _, prop := range n.Properties {
		fmt.Fprintf(b, "%s = %s\n", prop.Key, prop.Value)
	}

	for _, np := range n.NodePaths {
		fmt.Fprintf(b, "%s = %s\n", np.Key, formatNodePaths(np.Paths))
	}
}

func formatNodePaths(paths []string) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = fmt.Sprintf("NodePath(%q)", p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
