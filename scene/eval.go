// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// ScratchName is the reserved name of the hidden scratch container
// that [Scene.WithEvaluatedGroup] attaches to the scene root while a
// group is being evaluated. No other node may use this name.
const ScratchName = "__eval_scratch"

// UpdateWorldMatrix updates the world matrix for node and everything inside it,
// in depth-first order. Nodes whose parent is outside the scene graph start
// from the identity.
func UpdateWorldMatrix(n tree.Node) {
	idmtx := math32.Identity4()
	n.AsTree().WalkDown(func(cn tree.Node) bool {
		ni, _ := AsNode(cn)
		if ni == nil {
			return tree.Continue
		}
		_, pd := AsNode(cn.AsTree().Parent)
		if pd == nil {
			ni.AsSceneNode().UpdateWorldMatrix(idmtx)
		} else {
			ni.AsSceneNode().UpdateWorldMatrix(&pd.Pose.WorldMatrix)
		}
		return tree.Continue
	})
}

// Evaluated is the handle passed to the callback of
// [Scene.WithEvaluatedGroup]. World matrices for the entire scene,
// including the temporarily attached group, are current for the
// lifetime of the callback.
type Evaluated struct {
	Scene *Scene
	Group *Group

	// InPlace is set when the group was already attached somewhere in
	// the scene and was evaluated where it stands instead of under the
	// scratch container. World coordinates then include the ancestor
	// transforms of that existing attachment point.
	InPlace bool
}

// WorldTranslation returns the evaluated world translation of the given node.
func (ev *Evaluated) WorldTranslation(n Node) math32.Vector3 {
	return n.AsSceneNode().Pose.WorldPos()
}

// BBox returns the world-space bounding box of the renderable content of
// the evaluated group. The box is empty if the group has no renderable
// content with geometry.
func (ev *Evaluated) BBox() math32.Box3 {
	bb := math32.B3Empty()
	ev.Group.WalkDown(func(cn tree.Node) bool {
		ni, nb := AsNode(cn)
		if ni == nil {
			return tree.Break
		}
		if !ni.IsRenderable() {
			return tree.Continue
		}
		lb := ni.LocalBBox()
		if lb.IsEmpty() {
			return tree.Continue
		}
		bb.ExpandByBox(lb.MulMatrix4(&nb.Pose.WorldMatrix))
		return tree.Continue
	})
	return bb
}

// Find looks up a node by name, first within the evaluated group and
// then across the whole scene, tolerating de-duplication suffixes as
// described in [FindByBaseName]. It returns nil if no node matches.
func (ev *Evaluated) Find(name string) Node {
	if n := FindByBaseName(ev.Group.This, name); n != nil {
		return n
	}
	return FindByBaseName(ev.Scene.This, name)
}

// WithEvaluatedGroup temporarily attaches the given group to the scene
// under a hidden scratch container, evaluates world matrices for the
// whole scene, and invokes fn with an [Evaluated] handle. The scratch
// container and the temporary attachment are removed on every exit
// path, including a panic in fn, leaving the scene as it was found.
//
// A group that is already attached somewhere in the scene is evaluated
// in place rather than re-attached; [Evaluated.InPlace] reports this.
// Cleanup is best-effort: a failure in one step is logged and does not
// prevent the remaining steps.
func (sc *Scene) WithEvaluatedGroup(gp *Group, fn func(ev *Evaluated) error) error {
	if gp == nil {
		return fmt.Errorf("scene: nil group for evaluation")
	}
	scratch := NewGroup(sc)
	scratch.SetName(ScratchName)
	scratch.Hidden = true

	inPlace := gp.Parent != nil
	if !inPlace {
		scratch.AddChild(gp)
	} else {
		slog.Warn("scene: group already attached; evaluating in place",
			"group", gp.Name, "parent", gp.Parent.AsTree().Name)
	}

	defer func() {
		if !inPlace {
			if err := detach(gp); err != nil {
				slog.Error("scene: group detach failed during cleanup",
					"group", gp.Name, "err", err)
			}
		}
		if err := detach(scratch); err != nil {
			slog.Error("scene: scratch container detach failed during cleanup",
				"scene", sc.Name, "err", err)
		}
		if !scratch.HasChildren() {
			scratch.Destroy()
		}
	}()

	UpdateWorldMatrix(sc.This)
	return fn(&Evaluated{Scene: sc, Group: gp, InPlace: inPlace})
}

// detach removes child from its parent's children list without
// destroying it, so shared templates survive scratch cleanup.
func detach(child tree.Node) error {
	cb := child.AsTree()
	if cb.Parent == nil {
		return fmt.Errorf("scene: %q has no parent", cb.Name)
	}
	pb := cb.Parent.AsTree()
	idx := tree.IndexOf(pb.Children, child)
	if idx < 0 {
		cb.Parent = nil
		return fmt.Errorf("scene: %q not found in children of %q", cb.Name, pb.Name)
	}
	pb.Children = slices.Delete(pb.Children, idx, idx+1)
	cb.Parent = nil
	return nil
}
