// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose places asset groups into a scene through
// pivot-compensated instancing. Each placed slot gets a four-node
// chain so that the slot's location, rotation, and scale all act about
// the group's resolved anchor point:
//
//	world = T(location) * R(rotation) * S(scale) * T(-anchorOffset)
//
//	PIV_<slot>            location
//	  └── ROT_<slot>      rotation and scale
//	        └── OFF_<slot> translate by -anchorOffset
//	              └── INST_<slot> instancer at identity
//
// Placement is idempotent: re-placing a slot reuses its chain by name
// and overwrites the poses, never stacking a second chain.
package compose

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/peterpolidoro/science-mechatronics-poster/anchor"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// Chain node name prefixes, joined with the slot name.
const (
	PivotPrefix    = "PIV_"
	RotatePrefix   = "ROT_"
	OffsetPrefix   = "OFF_"
	InstancePrefix = "INST_"
)

// PlacementSpec describes where and how one slot is placed.
type PlacementSpec struct {
	// Location is the world-space position of the anchor point, in
	// millimeters, relative to the slot's parent.
	Location math32.Vector3 `json:"location"`

	// Rotation is the rotation about the anchor, intrinsic XYZ Euler
	// angles in degrees.
	Rotation math32.Vector3 `json:"rotation"`

	// Scale is the scale about the anchor. The zero value means unit scale.
	Scale math32.Vector3 `json:"scale"`

	// Anchor selects how the group's anchor offset is resolved.
	Anchor anchor.Spec `json:"anchor"`

	// Library is the path of the library file the group came from,
	// recorded on the instancer for provenance.
	Library string `json:"library,omitempty"`
}

// Composer places asset groups into one scene.
type Composer struct {
	// Scene is the scene being composed.
	Scene *scene.Scene

	// Anchors records the anchor resolution of each placed slot.
	Anchors map[string]anchor.Resolution

	// nodes maps stable chain-node names to their nodes, so repeated
	// placements of a slot reuse the chain instead of stacking another.
	nodes map[string]scene.Node
}

// NewComposer returns a Composer for the given scene.
func NewComposer(sc *scene.Scene) *Composer {
	return &Composer{
		Scene:   sc,
		Anchors: map[string]anchor.Resolution{},
		nodes:   map[string]scene.Node{},
	}
}

// Place places the group into the scene as the named slot, under the
// given parent (the scene root when parent is nil). The group's anchor
// is resolved first, then the slot's chain is ensured and its poses
// set. It returns the slot's instancer; [Composer.Pivot] gives the
// pivot group other slots parent to.
//
// A nil group logs a warning and returns nil without error, so a
// missing asset skips one slot instead of failing a whole build.
func (c *Composer) Place(gp *scene.Group, parent tree.Node, slot string, spec PlacementSpec) (*scene.Instancer, error) {
	if gp == nil {
		slog.Warn("compose: no group for slot, skipping", "slot", slot)
		return nil, nil
	}
	if parent == nil {
		parent = c.Scene.This
	}

	res, err := anchor.Resolve(c.Scene, gp, spec.Anchor)
	if err != nil {
		return nil, fmt.Errorf("compose: slot %q: %w", slot, err)
	}
	c.Anchors[slot] = res
	slog.Info("compose: anchor resolved", "slot", slot,
		"offset", res.Offset, "reason", res.Reason)

	piv := ensureGroup(c.nodes, parent, PivotPrefix+slot)
	rot := ensureGroup(c.nodes, piv, RotatePrefix+slot)
	off := ensureGroup(c.nodes, rot, OffsetPrefix+slot)
	inst := ensureInstancer(c.nodes, off, InstancePrefix+slot)

	piv.Pose.SetIdentity()
	piv.Pose.Pos = spec.Location

	rot.Pose.SetIdentity()
	rot.Pose.SetEulerRotation(spec.Rotation.X, spec.Rotation.Y, spec.Rotation.Z)
	rot.Pose.Scale = scaleOrUnit(spec.Scale)

	off.Pose.SetIdentity()
	off.Pose.Pos = res.Offset.Negate()

	inst.Pose.SetIdentity()
	inst.SetTemplate(gp, spec.Library)

	return inst, nil
}

// Finalize re-evaluates world matrices for the whole composed scene.
func (c *Composer) Finalize() {
	scene.UpdateWorldMatrix(c.Scene.This)
}

// Pivot returns the pivot group of a previously placed slot, or nil.
func (c *Composer) Pivot(slot string) *scene.Group {
	n, ok := c.nodes[PivotPrefix+slot]
	if !ok {
		n = scene.FindByBaseName(c.Scene.This, PivotPrefix+slot)
	}
	if gp, ok := n.(*scene.Group); ok {
		return gp
	}
	return nil
}

// Instancer returns the instancer of a previously placed slot, or nil.
func (c *Composer) Instancer(slot string) *scene.Instancer {
	n, ok := c.nodes[InstancePrefix+slot]
	if !ok {
		n = scene.FindByBaseName(c.Scene.This, InstancePrefix+slot)
	}
	if it, ok := n.(*scene.Instancer); ok {
		return it
	}
	return nil
}

func scaleOrUnit(s math32.Vector3) math32.Vector3 {
	if s == (math32.Vector3{}) {
		return math32.Vec3(1, 1, 1)
	}
	return s
}

// ensureGroup returns the group with the given stable name, creating
// it under parent if missing. The stable-key map is the source of
// truth; an existing same-named scene child is adopted so rebuilding
// over a previously composed scene also converges. A stale node of
// another type is replaced.
func ensureGroup(nodes map[string]scene.Node, parent tree.Node, name string) *scene.Group {
	if n, ok := nodes[name]; ok {
		if gp, ok := n.(*scene.Group); ok {
			return gp
		}
	}
	if cn := parent.AsTree().ChildByName(name); cn != nil {
		if gp, ok := cn.(*scene.Group); ok {
			nodes[name] = gp
			return gp
		}
		parent.AsTree().DeleteChild(cn)
	}
	gp := scene.NewGroup(parent)
	gp.SetName(name)
	nodes[name] = gp
	return gp
}

// ensureInstancer is [ensureGroup] for the instancer link.
func ensureInstancer(nodes map[string]scene.Node, parent tree.Node, name string) *scene.Instancer {
	if n, ok := nodes[name]; ok {
		if it, ok := n.(*scene.Instancer); ok {
			return it
		}
	}
	if cn := parent.AsTree().ChildByName(name); cn != nil {
		if it, ok := cn.(*scene.Instancer); ok {
			nodes[name] = it
			return it
		}
		parent.AsTree().DeleteChild(cn)
	}
	it := scene.NewInstancer(parent)
	it.SetName(name)
	nodes[name] = it
	return it
}
