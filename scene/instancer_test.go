// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstancedWorldMatrix(t *testing.T) {
	sc := NewScene()
	inst := NewInstancer(sc)
	inst.SetName("INST_widget")
	inst.SetPos(100, 0, 0)

	gp := widget()
	inst.SetTemplate(gp, "testdata/parts.json")
	assert.Equal(t, "EXPORT_widget", inst.GroupName)

	UpdateWorldMatrix(sc.This)

	mk := inst.FindInstanced("ANCHOR_PT")
	require.NotNil(t, mk)
	m, err := inst.InstancedWorldMatrix(mk)
	require.NoError(t, err)
	var pos math32.Vector3
	pos.SetFromMatrixPos(&m)
	assertVec3(t, math32.Vec3(105, 5, 10), pos)

	// the template group's own pose participates in the instanced frame
	gp.SetPos(0, 0, 7)
	m, err = inst.InstancedWorldMatrix(mk)
	require.NoError(t, err)
	pos.SetFromMatrixPos(&m)
	assertVec3(t, math32.Vec3(105, 5, 17), pos)
}

func TestInstancedWorldMatrixErrors(t *testing.T) {
	sc := NewScene()
	inst := NewInstancer(sc)
	inst.SetName("INST_widget")

	_, err := inst.InstancedWorldMatrix(inst)
	assert.Error(t, err)

	inst.SetTemplate(widget(), "")
	outside := NewSolid(sc)
	outside.SetName("outside")
	_, err = inst.InstancedWorldMatrix(outside)
	assert.Error(t, err)
}

func TestFindInstancedDedupSuffix(t *testing.T) {
	gp := widget()
	mk2 := NewMarker(gp)
	mk2.SetName("ANCHOR_PT.001")
	mk2.SetPos(0, 0, 0)

	inst := NewInstancer()
	inst.SetTemplate(gp, "")
	n := inst.FindInstanced("ANCHOR_PT")
	require.NotNil(t, n)
	assert.Equal(t, "ANCHOR_PT", n.AsTree().Name)

	n = inst.FindInstanced("ANCHOR_PT.001")
	require.NotNil(t, n)
	assert.Equal(t, "ANCHOR_PT.001", n.AsTree().Name)
}

func TestInstancerClonePreservesTemplate(t *testing.T) {
	gp := widget()
	inst := NewInstancer()
	inst.SetName("INST_widget")
	inst.SetTemplate(gp, "lib")

	cp := inst.Clone().(*Instancer)
	assert.Same(t, gp, cp.Template)
	assert.Equal(t, "lib", cp.Library)
	assert.Equal(t, "EXPORT_widget", cp.GroupName)
}
