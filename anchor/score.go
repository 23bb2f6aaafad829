// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"strings"

	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// RigPrefix is the naming convention for rig containers and rig nodes.
// Nodes inside rig containers are strong anchor candidates.
const RigPrefix = "RIG_"

// AutoRootScore is the minimum heuristic score a candidate must reach
// before [Auto] resolution trusts it over the bounding-box fallback.
const AutoRootScore = 100

// RuleKind selects what a scoring [Rule] matches against.
type RuleKind int32

const (
	// IsMarker matches marker nodes.
	IsMarker RuleKind = iota

	// InContainerPrefix matches nodes inside a grouping whose name
	// starts with the rule pattern.
	InContainerPrefix

	// NamePrefix matches node names starting with the rule pattern.
	NamePrefix

	// NameSuffix matches node names ending with the rule pattern.
	NameSuffix

	// NameContains matches node names containing the rule pattern.
	NameContains

	// NameExact matches node names equal to the rule pattern.
	NameExact
)

// Rule is one additive scoring rule for anchor root candidates.
type Rule struct {
	Kind  RuleKind
	Match string
	Score int
}

// Rules is the scoring table for anchor root candidates. Scores from
// all matching rules are summed. Names are compared with any
// de-duplication suffix stripped.
var Rules = []Rule{
	{IsMarker, "", 5},
	{InContainerPrefix, RigPrefix, 100},
	{NamePrefix, RigPrefix, 20},
	{NameSuffix, "_ROOT", 60},
	{NameContains, "ROOT", 30},
	{NameExact, "RIG_STAGE_ROOT", 200},
	{NameExact, "RIG_JOYSTICK_ROOT", 180},
	{NamePrefix, "RIG_PCB_G_", 150},
	{NamePrefix, "RIG_PCB_ROOT", 160},
}

// Score returns the summed heuristic anchor score of the given node
// over all matching entries of [Rules].
func Score(n scene.Node) int {
	nb := n.AsSceneNode()
	name := scene.BaseName(nb.Name)
	total := 0
	for _, r := range Rules {
		match := false
		switch r.Kind {
		case IsMarker:
			_, match = n.(*scene.Marker)
		case InContainerPrefix:
			match = nb.InGroupingPrefix(r.Match)
		case NamePrefix:
			match = strings.HasPrefix(name, r.Match)
		case NameSuffix:
			match = strings.HasSuffix(name, r.Match)
		case NameContains:
			match = strings.Contains(name, r.Match)
		case NameExact:
			match = name == r.Match
		}
		if match {
			total += r.Score
		}
	}
	return total
}
