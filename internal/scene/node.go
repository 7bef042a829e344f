// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package scene

import "github.com/portalconv/portalconv/internal/coords"

// NodeKind_e distinguishes the handful of node shapes the emitter knows how
// to write (§3, §4.9). It never round-trips to JSON; it only drives the
// emitter's formatting decisions.
type NodeKind_e int

const (
	KindRoot NodeKind_e = iota
	KindHeadquarters
	KindSpawnPoint
	KindCapturePoint
	KindVehicleSpawner
	KindStationarySpawner
	KindCombatArea
	KindPolygonVolume
	KindStaticContainer
	KindStatic
)

// Property is one key=value line under a node header, written in
// declaration order.
type Property struct {
	Key   string
	Value string
}

// NodeRecord is one node of the emitted scene tree (§3 NodeRecord, §4.9).
// ObjId is zero for Root, which carries none.
type NodeRecord struct {
	Kind       NodeKind_e
	ObjId      int
	Name       string
	ParentPath string
	Resource   string // symbolic name into the ext-resource table, "" for a plain Node3D
	Transform  *coords.Transform
	Properties []Property
	NodePaths  []NodePathProperty
}

// NodePathProperty is an array-valued property whose elements are
// NodePath(...) references to sibling/child nodes (§4.9 headquarters
// child references).
type NodePathProperty struct {
	Key   string
	Paths []string
}

func transformProperty(t coords.Transform) []Property {
	return []Property{{Key: "transform", Value: t.Transform3D()}}
}

// NewRootNode returns the scene's sole root: a plain container node with no
// ObjId, parent, or transform (§3 ordering invariant: root first).
func NewRootNode(baseTerrain string) NodeRecord {
	return NodeRecord{
		Kind: KindRoot,
		Name: "Root",
		Properties: []Property{
			{Key: "base_terrain", Value: quote(baseTerrain)},
		},
	}
}

// NewHeadquartersNode places a headquarters control point under Root, with
// node-path arrays referencing its spawn-point children and its own
// capture-area polygon volume (§4.9: "Headquarters nodes declare
// node-path arrays referencing their children ... and a polygon-volume
// area child").
func NewHeadquartersNode(objId int, name string, team int, t coords.Transform, spawnPaths []string, areaPath string) NodeRecord {
	return NodeRecord{
		Kind:       KindHeadquarters,
		ObjId:      objId,
		Name:       name,
		ParentPath: ".",
		Resource:   "HQ_PlayerSpawner",
		Transform:  &t,
		Properties: append(transformProperty(t), Property{Key: "team", Value: itoa(team)}),
		NodePaths: []NodePathProperty{
			{Key: "spawn_points", Paths: spawnPaths},
			{Key: "area", Paths: []string{areaPath}},
		},
	}
}

// NewSpawnPointNode places an infantry spawn as a child of its owning
// headquarters node.
func NewSpawnPointNode(objId int, name, parentPath string, t coords.Transform) NodeRecord {
	return NodeRecord{
		Kind:       KindSpawnPoint,
		ObjId:      objId,
		Name:       name,
		ParentPath: parentPath,
		Resource:   "SpawnPoint",
		Transform:  &t,
		Properties: transformProperty(t),
	}
}

// NewCapturePointNode places a neutral capturable point under Root.
func NewCapturePointNode(objId int, name string, t coords.Transform) NodeRecord {
	return NodeRecord{
		Kind:       KindCapturePoint,
		ObjId:      objId,
		Name:       name,
		ParentPath: ".",
		Resource:   "CapturePoint",
		Transform:  &t,
		Properties: transformProperty(t),
	}
}

// NewVehicleSpawnerNode places a resolved vehicle spawner under Root.
func NewVehicleSpawnerNode(objId int, name string, team, vehicleIndex int, t coords.Transform) NodeRecord {
	return NodeRecord{
		Kind:       KindVehicleSpawner,
		ObjId:      objId,
		Name:       name,
		ParentPath: ".",
		Resource:   "VehicleSpawner",
		Transform:  &t,
		Properties: append(transformProperty(t),
			Property{Key: "team", Value: itoa(team)},
			Property{Key: "vehicle_index", Value: itoa(vehicleIndex)},
		),
	}
}

// NewStationarySpawnerNode places a fixed weapon emplacement under Root.
func NewStationarySpawnerNode(objId int, name string, team int, t coords.Transform) NodeRecord {
	return NodeRecord{
		Kind:       KindStationarySpawner,
		ObjId:      objId,
		Name:       name,
		ParentPath: ".",
		Resource:   "VehicleSpawner",
		Transform:  &t,
		Properties: append(transformProperty(t), Property{Key: "team", Value: itoa(team)}),
	}
}

// NewCombatAreaNode is the playable-area container; its polygon volume
// child is appended separately via NewPolygonVolumeNode (§4.9).
func NewCombatAreaNode(objId int, t coords.Transform, polygonPath string) NodeRecord {
	return NodeRecord{
		Kind:       KindCombatArea,
		ObjId:      objId,
		Name:       "CombatArea",
		ParentPath: ".",
		Resource:   "CombatArea",
		Transform:  &t,
		Properties: transformProperty(t),
		NodePaths:  []NodePathProperty{{Key: "area", Paths: []string{polygonPath}}},
	}
}

// NewPolygonVolumeNode writes a 2D XZ polygon (already a closed hull) as a
// flat list of "x,z" pairs under a single "points" property.
func NewPolygonVolumeNode(objId int, name, parentPath string, height float64, points []coords.Vector3) NodeRecord {
	return NodeRecord{
		Kind:       KindPolygonVolume,
		ObjId:      objId,
		Name:       name,
		ParentPath: parentPath,
		Resource:   "PolygonVolume",
		Properties: []Property{
			{Key: "height", Value: formatComponent(height)},
			{Key: "points", Value: formatPolygon(points)},
		},
	}
}

// NewStaticContainerNode is the single container holding every resolved
// static prop/building/tree (§3: "a list of Prop/Building/Tree entries").
func NewStaticContainerNode(objId int, baseTerrain string) NodeRecord {
	return NodeRecord{
		Kind:       KindStaticContainer,
		ObjId:      objId,
		Name:       "StaticObjects",
		ParentPath: ".",
		Resource:   baseTerrain + "_Assets",
	}
}

// NewStaticNode places one resolved prop/building/tree under the static
// container.
func NewStaticNode(objId int, name, targetType string, team int, t coords.Transform) NodeRecord {
	return NodeRecord{
		Kind:       KindStatic,
		ObjId:      objId,
		Name:       name,
		ParentPath: "StaticObjects",
		Resource:   targetType,
		Transform:  &t,
		Properties: append(transformProperty(t), Property{Key: "team", Value: itoa(team)}),
	}
}
