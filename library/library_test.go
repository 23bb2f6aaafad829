// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"testing"

	"github.com/peterpolidoro/science-mechatronics-poster/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGroupRequested(t *testing.T) {
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/parts.json", "EXPORT_widget", nil, Linked)
	require.NoError(t, err)
	assert.Equal(t, "EXPORT_widget", gp.Name)
	assert.Equal(t, 2, gp.NumChildren())

	sld, ok := gp.Child(0).(*scene.Solid)
	require.True(t, ok)
	assert.Equal(t, "Body", sld.Name)
	assert.Equal(t, "box", sld.Mesh)
	assert.Equal(t, float32(10), sld.BBox.Max.Z)

	mk, ok := gp.Child(1).(*scene.Marker)
	require.True(t, ok)
	assert.Equal(t, "ANCHOR_PT", mk.Name)
	assert.Equal(t, float32(10), mk.Pose.Pos.Z)
}

func TestLoadGroupFallbacks(t *testing.T) {
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/parts.json", "Missing", []string{"AlsoMissing", "EXPORT_alpha"}, Linked)
	require.NoError(t, err)
	assert.Equal(t, "EXPORT_alpha", gp.Name)
}

func TestLoadGroupExportLadder(t *testing.T) {
	// no requested or fallback match: first EXPORT_ group in sorted
	// order with content
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/parts.json", "Missing", nil, Linked)
	require.NoError(t, err)
	assert.Equal(t, "EXPORT_alpha", gp.Name)
}

func TestLoadGroupDefaultCollection(t *testing.T) {
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/collection.json", "Missing", nil, Linked)
	require.NoError(t, err)
	assert.Equal(t, "Collection", gp.Name)
}

func TestLoadGroupEmptyRequested(t *testing.T) {
	// an empty requested group yields to a non-empty fallback
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/parts.json", "Empty_G", []string{"EXPORT_widget"}, Linked)
	require.NoError(t, err)
	assert.Equal(t, "EXPORT_widget", gp.Name)

	// without fallbacks, the export ladder still beats it
	gp, err = ld.LoadGroup("testdata/parts.json", "Empty_G", nil, Linked)
	require.NoError(t, err)
	assert.Equal(t, "EXPORT_alpha", gp.Name)
}

func TestLoadGroupFirstNonEmpty(t *testing.T) {
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/unnamed.json", "Missing", nil, Linked)
	require.NoError(t, err)
	assert.Equal(t, "Final", gp.Name)
}

func TestLoadGroupMissingFile(t *testing.T) {
	ld := NewLoader()
	_, err := ld.LoadGroup("testdata/nonexistent.json", "Any", nil, Linked)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ld.LoadGroup("testdata/parts.blend", "Any", nil, Linked)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadGroupCache(t *testing.T) {
	ld := NewLoader()
	a, err := ld.LoadGroup("testdata/parts.json", "EXPORT_widget", nil, Linked)
	require.NoError(t, err)
	b, err := ld.LoadGroup("testdata/parts.json", "EXPORT_widget", nil, Linked)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := ld.LoadGroup("testdata/parts.json", "EXPORT_widget", nil, Copied)
	require.NoError(t, err)
	d, err := ld.LoadGroup("testdata/parts.json", "EXPORT_widget", nil, Copied)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.NotSame(t, c, d)
	assert.Equal(t, "EXPORT_widget", c.Name)
	assert.Equal(t, 2, c.NumChildren())
}

func TestLoadGroupYAML(t *testing.T) {
	ld := NewLoader()
	gp, err := ld.LoadGroup("testdata/widget.yaml", "EXPORT_widget", nil, Linked)
	require.NoError(t, err)
	require.Equal(t, 2, gp.NumChildren())
	mk, ok := gp.Child(1).(*scene.Marker)
	require.True(t, ok)
	assert.Equal(t, "RIG_STAGE_ROOT", mk.Name)
	assert.Equal(t, []string{"RIG_widget"}, mk.Groupings)
	assert.Equal(t, float32(2), mk.Pose.Pos.X)
}

func TestListGroups(t *testing.T) {
	ld := NewLoader()
	names, err := ld.ListGroups("testdata/parts.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Empty_G", "EXPORT_widget", "EXPORT_alpha", "Collection"}, names)
}
