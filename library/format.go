// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/math32"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// File is the decoded form of an asset library file. A library holds
// named groups, each a tree of node definitions. Files are authored in
// JSON, TOML, or YAML, selected by extension.
type File struct {
	// Groups are the exportable groups in this library, in authored order.
	Groups []*NodeDef `json:"groups"`
}

// NodeDef describes one node in an asset library group.
type NodeDef struct {
	// Kind is the node kind: "group", "solid", or "marker".
	// Top-level entries in [File.Groups] must be groups.
	Kind string `json:"kind"`

	// Name is the node name. Names should be unique within a group;
	// duplicates elsewhere in a file get de-duplication suffixes when
	// built into the same scene.
	Name string `json:"name"`

	// Pos is the local translation in millimeters.
	Pos math32.Vector3 `json:"pos"`

	// Rot is the local rotation in degrees. One element rotates about
	// Z only; three elements are intrinsic XYZ Euler angles.
	Rot []float32 `json:"rot,omitempty"`

	// Scale is the local scale. One element scales uniformly; three
	// elements scale per axis. Empty means unit scale.
	Scale []float32 `json:"scale,omitempty"`

	// Mesh is the mesh name, for solids.
	Mesh string `json:"mesh,omitempty"`

	// BBoxMin and BBoxMax are the local bounding box corners, for solids.
	BBoxMin math32.Vector3 `json:"bboxMin"`
	BBoxMax math32.Vector3 `json:"bboxMax"`

	// Style is the display style, for markers.
	Style string `json:"style,omitempty"`

	// Groupings are logical container tags applied to the node.
	Groupings []string `json:"groupings,omitempty"`

	// Children are the nodes nested under this one.
	Children []*NodeDef `json:"children,omitempty"`
}

// OpenFile reads and decodes the asset library file at the given path,
// using the extension to select the format.
func OpenFile(path string) (*File, error) {
	f := &File{}
	var err error
	switch filepath.Ext(path) {
	case ".json":
		err = jsonx.Open(f, path)
	case ".toml":
		err = tomlx.Open(f, path)
	case ".yaml", ".yml":
		err = yamlx.Open(f, path)
	default:
		err = fmt.Errorf("library: unsupported asset file extension in %q", path)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GroupNames returns the names of the groups in the file, in authored order.
func (f *File) GroupNames() []string {
	names := make([]string, len(f.Groups))
	for i, g := range f.Groups {
		names[i] = g.Name
	}
	return names
}

// Group returns the group definition with the given name, or nil.
func (f *File) Group(name string) *NodeDef {
	for _, g := range f.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Build constructs the scene node tree described by the definition.
// The returned group is a free-standing root with no parent.
func (d *NodeDef) Build() (*scene.Group, error) {
	if d.Kind != "" && d.Kind != "group" {
		return nil, fmt.Errorf("library: top-level node %q has kind %q, not group", d.Name, d.Kind)
	}
	gp := scene.NewGroup()
	gp.SetName(d.Name)
	d.apply(&gp.NodeBase)
	for _, cd := range d.Children {
		if err := cd.build(gp); err != nil {
			return nil, err
		}
	}
	return gp, nil
}

func (d *NodeDef) build(parent *scene.Group) error {
	var nb *scene.NodeBase
	var gp *scene.Group
	switch d.Kind {
	case "group", "":
		gp = scene.NewGroup(parent)
		nb = &gp.NodeBase
	case "solid":
		sld := scene.NewSolid(parent)
		sld.Mesh = d.Mesh
		sld.BBox.Set(&d.BBoxMin, &d.BBoxMax)
		nb = &sld.NodeBase
	case "marker":
		mk := scene.NewMarker(parent)
		mk.Style = d.Style
		nb = &mk.NodeBase
	default:
		return fmt.Errorf("library: node %q has unknown kind %q", d.Name, d.Kind)
	}
	nb.SetName(d.Name)
	d.apply(nb)
	if len(d.Children) > 0 {
		if gp == nil {
			return fmt.Errorf("library: node %q of kind %q cannot have children", d.Name, d.Kind)
		}
		for _, cd := range d.Children {
			if err := cd.build(gp); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply sets the pose and grouping tags from the definition.
func (d *NodeDef) apply(nb *scene.NodeBase) {
	nb.Pose.Pos = d.Pos
	switch len(d.Rot) {
	case 1:
		nb.Pose.SetEulerRotation(0, 0, d.Rot[0])
	case 3:
		nb.Pose.SetEulerRotation(d.Rot[0], d.Rot[1], d.Rot[2])
	}
	switch len(d.Scale) {
	case 1:
		nb.Pose.Scale.SetScalar(d.Scale[0])
	case 3:
		nb.Pose.Scale.Set(d.Scale[0], d.Scale[1], d.Scale[2])
	}
	nb.Groupings = append(nb.Groupings, d.Groupings...)
}
