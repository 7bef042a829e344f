// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

// Scene is the emitted artifact's in-memory representation (§3): a
// header's worth of metadata, the ordered external-resource table, and
// the ordered node list. Nodes must already be in the §3 ordering
// invariant (root, then HQs→spawns→capture points→spawners→combat area in
// stable ObjId order, then the static container) before calling Emit.
type Scene struct {
	BaseTerrain  string
	ExtResources []ExtResource
	Nodes        []NodeRecord
}

// New builds an empty Scene with the fixed external-resource table for
// baseTerrain already populated (§4.9).
func New(baseTerrain string) *Scene {
	return &Scene{
		BaseTerrain:  baseTerrain,
		ExtResources: NewExtResourceTable(baseTerrain),
	}
}

// Append adds a node record, preserving caller-supplied order. Callers are
// responsible for assembling nodes in the §3 ordering invariant before
// emission; Append does not re-sort.
func (s *Scene) Append(nodes ...NodeRecord) {
	s.Nodes = append(s.Nodes, nodes...)
}
