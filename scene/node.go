// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the batch scene graph that the poster build
// compiler assembles: a tree of transform nodes with positions in
// millimeters, a pure world-transform evaluation pass, and a scoped
// evaluation context for reading world-space geometry of asset groups
// that are not (yet) part of the composed scene.
package scene

//go:generate core generate

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the interface for all scene nodes.
type Node interface {
	tree.Node

	// AsSceneNode returns the [NodeBase] for this node,
	// with the core scene functionality.
	AsSceneNode() *NodeBase

	// IsRenderable returns whether this node contributes renderable
	// geometry (true only for [Solid]). Markers, groups, and instancers
	// are transform-only and are excluded from bounding-box computation.
	IsRenderable() bool

	// LocalBBox returns the local-space axis-aligned bounding box of this
	// node's own geometry. Non-renderable nodes return an empty box.
	LocalBBox() math32.Box3
}

// NodeBase is the base type for all scene nodes, providing the
// transform [Pose] and display-grouping membership.
type NodeBase struct {
	tree.NodeBase

	// Pose is the complete position, rotation, and scale transform
	// of this node relative to its parent.
	Pose Pose

	// Hidden excludes this node (and everything under it) from display
	// and render output. The evaluation scratch container is hidden so
	// that temporary attachments never perturb the visible scene.
	Hidden bool `json:",omitempty"`

	// Groupings is the set of display groupings this node belongs to,
	// as authored in the source library (zero or more). Grouping
	// membership participates in anchor heuristics alongside the
	// names of ancestor container groups.
	Groupings []string `json:",omitempty"`
}

// AsNode converts the given tree node to a scene [Node] and [NodeBase],
// returning nil, nil if not possible.
func AsNode(n tree.Node) (Node, *NodeBase) {
	ni, ok := n.(Node)
	if !ok {
		return nil, nil
	}
	return ni, ni.AsSceneNode()
}

func (nb *NodeBase) AsSceneNode() *NodeBase {
	return nb
}

func (nb *NodeBase) IsRenderable() bool {
	return false
}

func (nb *NodeBase) LocalBBox() math32.Box3 {
	return math32.B3Empty()
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

// UpdateWorldMatrix updates this node's local and world matrices
// from its pose and the given parent world matrix.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
}

// WorldPos returns the node's world position from the last
// evaluation pass (see [UpdateWorldMatrix] and [Scene.WithEvaluatedGroup]).
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}

// SetPos sets the [Pose.Pos] position of the node.
func (nb *NodeBase) SetPos(x, y, z float32) *NodeBase {
	nb.Pose.Pos.Set(x, y, z)
	return nb
}

// SetScale sets the [Pose.Scale] scale of the node.
func (nb *NodeBase) SetScale(x, y, z float32) *NodeBase {
	nb.Pose.Scale.Set(x, y, z)
	return nb
}

// SetEulerRotation sets the [Pose.Quat] rotation of the node
// from Euler angles in degrees, intrinsic X, Y, Z order.
func (nb *NodeBase) SetEulerRotation(x, y, z float32) *NodeBase {
	nb.Pose.SetEulerRotation(x, y, z)
	return nb
}

// InGroupingPrefix returns whether this node belongs to a display grouping,
// or is nested under a container group, whose name starts with the given
// prefix. The node's own name is not considered.
func (nb *NodeBase) InGroupingPrefix(prefix string) bool {
	for _, g := range nb.Groupings {
		if len(g) >= len(prefix) && g[:len(prefix)] == prefix {
			return true
		}
	}
	in := false
	nb.WalkUpParent(func(p tree.Node) bool {
		_, pb := AsNode(p)
		if pb == nil {
			return tree.Break
		}
		if _, isGp := p.(*Group); !isGp {
			return tree.Continue
		}
		if nm := BaseName(pb.Name); len(nm) >= len(prefix) && nm[:len(prefix)] == prefix {
			in = true
			return tree.Break
		}
		return tree.Continue
	})
	return in
}
