// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor resolves the anchor offset of an asset group: the
// point, in the group's own evaluated space, that placement should
// treat as the group's handle. Resolution never mutates the group or
// the scene it is evaluated in.
package anchor

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// Mode selects how the anchor offset of a group is determined.
type Mode int32

const (
	// Auto tries, in order: the named node if a name is given and
	// found, the best heuristic root candidate scoring at least
	// [AutoRootScore], the bounding-box center, and the group origin.
	Auto Mode = iota

	// Explicit uses the world translation of the named node, falling
	// back to the group origin with a warning when the node is missing.
	Explicit

	// Origin anchors at the group origin, offset zero.
	Origin

	// BBoxCenter anchors at the center of the evaluated bounding box.
	BBoxCenter

	// BBoxMin anchors at the minimum corner of the evaluated bounding box.
	BBoxMin

	// HeuristicRoot uses the best candidate with a positive heuristic
	// score, falling back to the group origin.
	HeuristicRoot
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "Auto"
	case Explicit:
		return "Explicit"
	case Origin:
		return "Origin"
	case BBoxCenter:
		return "BBoxCenter"
	case BBoxMin:
		return "BBoxMin"
	case HeuristicRoot:
		return "HeuristicRoot"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// Spec specifies how to resolve a group's anchor. Name is the node to
// anchor at for [Explicit], and an optional first preference for [Auto].
type Spec struct {
	Mode Mode   `json:"mode"`
	Name string `json:"name,omitempty"`
}

// Resolution is a resolved anchor: the offset in the group's evaluated
// space and a human-readable account of which rung produced it.
type Resolution struct {
	Offset math32.Vector3 `json:"offset"`
	Reason string         `json:"reason"`
}

// Resolve evaluates the group within the scene and resolves its anchor
// per the spec. A group that cannot be evaluated resolves to the origin
// with an error.
func Resolve(sc *scene.Scene, gp *scene.Group, spec Spec) (Resolution, error) {
	var res Resolution
	err := sc.WithEvaluatedGroup(gp, func(ev *scene.Evaluated) error {
		res = resolve(ev, spec)
		return nil
	})
	if err != nil {
		return Resolution{Reason: "origin: evaluation failed"}, err
	}
	return res, nil
}

func resolve(ev *scene.Evaluated, spec Spec) Resolution {
	switch spec.Mode {
	case Explicit:
		if r, ok := explicit(ev, spec.Name); ok {
			return r
		}
		slog.Warn("anchor: explicit anchor node not found, using origin",
			"group", ev.Group.Name, "name", spec.Name)
		return Resolution{Reason: fmt.Sprintf("origin: explicit anchor %q not found", spec.Name)}
	case Origin:
		return Resolution{Reason: "origin"}
	case BBoxCenter:
		if bb := ev.BBox(); !bb.IsEmpty() {
			return Resolution{Offset: bb.Center(), Reason: "bbox center"}
		}
		return Resolution{Reason: "origin: bounding box empty"}
	case BBoxMin:
		if bb := ev.BBox(); !bb.IsEmpty() {
			return Resolution{Offset: bb.Min, Reason: "bbox min"}
		}
		return Resolution{Reason: "origin: bounding box empty"}
	case HeuristicRoot:
		if n, score := bestCandidate(ev.Group); score > 0 {
			return Resolution{
				Offset: ev.WorldTranslation(n),
				Reason: fmt.Sprintf("heuristic root %q (score %d)", n.AsSceneNode().Name, score),
			}
		}
		return Resolution{Reason: "origin: no heuristic root candidate"}
	case Auto:
		if spec.Name != "" {
			if r, ok := explicit(ev, spec.Name); ok {
				return r
			}
			slog.Warn("anchor: preferred anchor node not found, continuing auto resolution",
				"group", ev.Group.Name, "name", spec.Name)
		}
		if n, score := bestCandidate(ev.Group); score >= AutoRootScore {
			return Resolution{
				Offset: ev.WorldTranslation(n),
				Reason: fmt.Sprintf("heuristic root %q (score %d)", n.AsSceneNode().Name, score),
			}
		}
		if bb := ev.BBox(); !bb.IsEmpty() {
			return Resolution{Offset: bb.Center(), Reason: "bbox center"}
		}
		return Resolution{Reason: "origin: group has no anchor candidates or geometry"}
	}
	return Resolution{Reason: fmt.Sprintf("origin: unknown anchor mode %v", spec.Mode)}
}

// explicit resolves a named anchor node, searching the group first and
// then the whole scene, tolerating de-duplication suffixes.
func explicit(ev *scene.Evaluated, name string) (Resolution, bool) {
	n := ev.Find(name)
	if n == nil {
		return Resolution{}, false
	}
	return Resolution{
		Offset: ev.WorldTranslation(n),
		Reason: fmt.Sprintf("explicit anchor %q", n.AsSceneNode().Name),
	}, true
}

// bestCandidate returns the highest-scoring marker node within the
// group, preferring the first seen in depth-first order on ties. Only
// markers are root candidates; solids and container groups are not.
func bestCandidate(gp *scene.Group) (scene.Node, int) {
	var best scene.Node
	bestScore := 0
	gp.WalkDown(func(cn tree.Node) bool {
		mk, ok := cn.(*scene.Marker)
		if !ok {
			return tree.Continue
		}
		if s := Score(mk); s > bestScore {
			best, bestScore = mk, s
		}
		return tree.Continue
	})
	return best, bestScore
}
