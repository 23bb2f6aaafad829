// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// AnchorReport is the result of verifying one placed slot: where the
// placement says the anchor should land and where the instanced anchor
// node actually lands.
type AnchorReport struct {
	Slot   string `json:"slot"`
	Anchor string `json:"anchor"`

	// Expected is the world translation of the slot's pivot.
	Expected math32.Vector3 `json:"expected"`

	// Actual is the world translation of the instanced anchor node.
	Actual math32.Vector3 `json:"actual"`

	// Delta is Actual minus Expected. A correct placement has a delta
	// of zero up to float precision, at any rotation and scale.
	Delta math32.Vector3 `json:"delta"`
}

// VerifyAnchor checks that the named anchor node of a placed instancer
// lands exactly on the pivot of its placement chain. It re-evaluates
// world matrices but never changes the scene structure or any pose.
func (c *Composer) VerifyAnchor(inst *scene.Instancer, anchorName string) (*AnchorReport, error) {
	if inst == nil {
		return nil, fmt.Errorf("compose: nil instancer")
	}
	piv := pivotOf(inst)
	if piv == nil {
		return nil, fmt.Errorf("compose: instancer %q is not on a placement chain", inst.Name)
	}
	n := inst.FindInstanced(anchorName)
	if n == nil {
		return nil, fmt.Errorf("compose: instancer %q: anchor node %q not found in template %q",
			inst.Name, anchorName, inst.GroupName)
	}

	scene.UpdateWorldMatrix(c.Scene.This)
	m, err := inst.InstancedWorldMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("compose: instancer %q: %w", inst.Name, err)
	}
	var actual math32.Vector3
	actual.SetFromMatrixPos(&m)
	expected := piv.Pose.WorldPos()
	return &AnchorReport{
		Slot:     strings.TrimPrefix(scene.BaseName(inst.Name), InstancePrefix),
		Anchor:   anchorName,
		Expected: expected,
		Actual:   actual,
		Delta:    actual.Sub(expected),
	}, nil
}

// pivotOf walks three links up the placement chain from the instancer.
func pivotOf(inst *scene.Instancer) *scene.Group {
	n := tree.Node(inst)
	for i := 0; i < 3; i++ {
		p := n.AsTree().Parent
		if p == nil {
			return nil
		}
		n = p
	}
	gp, _ := n.(*scene.Group)
	return gp
}
