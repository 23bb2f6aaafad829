// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/peterpolidoro/science-mechatronics-poster/anchor"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3)
	assert.InDelta(t, want.Y, got.Y, 1e-3)
	assert.InDelta(t, want.Z, got.Z, 1e-3)
}

// widget is a 10x10x10 box with an anchor marker centered on its lid.
func widget() *scene.Group {
	gp := scene.NewGroup()
	gp.SetName("EXPORT_widget")
	sld := scene.NewSolid(gp)
	sld.SetName("Body")
	sld.SetBBox(math32.Vec3(0, 0, 0), math32.Vec3(10, 10, 10))
	mk := scene.NewMarker(gp)
	mk.SetName("ANCHOR_PT")
	mk.SetPos(5, 5, 10)
	return gp
}

func TestPlaceChain(t *testing.T) {
	sc := scene.NewScene()
	c := NewComposer(sc)

	inst, err := c.Place(widget(), nil, "stage", PlacementSpec{
		Location: math32.Vec3(100, 0, 0),
		Anchor:   anchor.Spec{Mode: anchor.Explicit, Name: "ANCHOR_PT"},
		Library:  "parts.json",
	})
	require.NoError(t, err)
	require.NotNil(t, inst)
	assert.Equal(t, "INST_stage", inst.Name)
	assert.Equal(t, "EXPORT_widget", inst.GroupName)
	assert.Equal(t, "parts.json", inst.Library)

	piv := c.Pivot("stage")
	require.NotNil(t, piv)
	assert.Equal(t, "PIV_stage", piv.Name)
	rot := piv.ChildByName("ROT_stage")
	require.NotNil(t, rot)
	off := rot.AsTree().ChildByName("OFF_stage")
	require.NotNil(t, off)
	assert.Equal(t, tree.Node(inst), off.AsTree().ChildByName("INST_stage"))

	// the offset link compensates the anchor
	_, offNB := scene.AsNode(off)
	assertVec3(t, math32.Vec3(-5, -5, -10), offNB.Pose.Pos)
	assertVec3(t, math32.Vec3(5, 5, 10), c.Anchors["stage"].Offset)
}

func TestPlaceAnchorLandsOnPivot(t *testing.T) {
	// the anchor node of the instanced content must land exactly at the
	// slot location: rotating or scaling the slot pivots about the
	// anchor instead of swinging the content around the group origin
	rotations := []math32.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 90},
		{X: 0, Y: 0, Z: 180},
		{X: 0, Y: 0, Z: 270},
		{X: 30, Y: 45, Z: 60},
	}
	scales := []math32.Vector3{
		{X: 1, Y: 1, Z: 1},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: 2, Y: 2, Z: 2},
		{X: 1, Y: 2, Z: 3},
	}
	loc := math32.Vec3(100, 0, 0)
	for _, rot := range rotations {
		for _, scl := range scales {
			t.Run(fmt.Sprintf("rot%v_scale%v", rot, scl), func(t *testing.T) {
				sc := scene.NewScene()
				c := NewComposer(sc)
				inst, err := c.Place(widget(), nil, "stage", PlacementSpec{
					Location: loc,
					Rotation: rot,
					Scale:    scl,
					Anchor:   anchor.Spec{Mode: anchor.Explicit, Name: "ANCHOR_PT"},
				})
				require.NoError(t, err)

				rep, err := c.VerifyAnchor(inst, "ANCHOR_PT")
				require.NoError(t, err)
				assertVec3(t, loc, rep.Expected)
				assertVec3(t, loc, rep.Actual)
				assert.Less(t, rep.Delta.Length(), float32(1e-3))
			})
		}
	}
}

func TestPlaceRotationMovesBody(t *testing.T) {
	// sanity check that rotation actually moves non-anchor content:
	// with the anchor on the lid center, a Z180 spin keeps the lid
	// center fixed and carries the box origin to the opposite corner
	sc := scene.NewScene()
	c := NewComposer(sc)
	_, err := c.Place(widget(), nil, "stage", PlacementSpec{
		Location: math32.Vec3(100, 0, 0),
		Rotation: math32.Vec3(0, 0, 180),
		Anchor:   anchor.Spec{Mode: anchor.Explicit, Name: "ANCHOR_PT"},
	})
	require.NoError(t, err)
	scene.UpdateWorldMatrix(sc.This)

	inst := c.Instancer("stage")
	require.NotNil(t, inst)
	body := inst.FindInstanced("Body")
	require.NotNil(t, body)
	m, err := inst.InstancedWorldMatrix(body)
	require.NoError(t, err)
	var pos math32.Vector3
	pos.SetFromMatrixPos(&m)
	// group origin was at anchor - (5,5,10); Z180 flips x and y
	assertVec3(t, math32.Vec3(105, 5, -10), pos)
}

func TestPlaceIdempotent(t *testing.T) {
	sc := scene.NewScene()
	c := NewComposer(sc)
	gp := widget()
	spec := PlacementSpec{
		Location: math32.Vec3(100, 0, 0),
		Anchor:   anchor.Spec{Mode: anchor.Explicit, Name: "ANCHOR_PT"},
	}
	inst1, err := c.Place(gp, nil, "stage", spec)
	require.NoError(t, err)

	spec.Location = math32.Vec3(0, 50, 0)
	spec.Rotation = math32.Vec3(0, 0, 90)
	inst2, err := c.Place(gp, nil, "stage", spec)
	require.NoError(t, err)

	// same chain reused, poses overwritten, no second chain stacked
	assert.Same(t, inst1, inst2)
	assert.Equal(t, 1, sc.NumChildren())
	piv := c.Pivot("stage")
	require.NotNil(t, piv)
	assert.Equal(t, 1, piv.NumChildren())
	assertVec3(t, math32.Vec3(0, 50, 0), piv.Pose.Pos)

	rep, err := c.VerifyAnchor(inst2, "ANCHOR_PT")
	require.NoError(t, err)
	assertVec3(t, math32.Vec3(0, 50, 0), rep.Actual)
}

func TestPlaceNilGroup(t *testing.T) {
	sc := scene.NewScene()
	c := NewComposer(sc)
	inst, err := c.Place(nil, nil, "ghost", PlacementSpec{})
	assert.NoError(t, err)
	assert.Nil(t, inst)
	assert.Equal(t, 0, sc.NumChildren())
}

func TestPlaceParenting(t *testing.T) {
	sc := scene.NewScene()
	c := NewComposer(sc)
	_, err := c.Place(widget(), nil, "base", PlacementSpec{
		Location: math32.Vec3(100, 0, 0),
		Anchor:   anchor.Spec{Mode: anchor.Origin},
	})
	require.NoError(t, err)
	base := c.Pivot("base")
	require.NotNil(t, base)

	_, err = c.Place(widget(), base, "knob", PlacementSpec{
		Location: math32.Vec3(0, 0, 20),
		Anchor:   anchor.Spec{Mode: anchor.Origin},
	})
	require.NoError(t, err)
	c.Finalize()

	knob := c.Pivot("knob")
	require.NotNil(t, knob)
	assertVec3(t, math32.Vec3(100, 0, 20), knob.WorldPos())

	// shared templates stay free of the scene
	assert.Nil(t, c.Instancer("base").Template.Parent)
}

func TestVerifyAnchorErrors(t *testing.T) {
	sc := scene.NewScene()
	c := NewComposer(sc)
	_, err := c.VerifyAnchor(nil, "ANCHOR_PT")
	assert.Error(t, err)

	inst, err := c.Place(widget(), nil, "stage", PlacementSpec{
		Anchor: anchor.Spec{Mode: anchor.Origin},
	})
	require.NoError(t, err)
	_, err = c.VerifyAnchor(inst, "NOPE")
	assert.Error(t, err)

	// an instancer outside a placement chain cannot be verified
	stray := scene.NewInstancer(sc)
	stray.SetTemplate(widget(), "")
	_, err = c.VerifyAnchor(stray, "ANCHOR_PT")
	assert.Error(t, err)
}
