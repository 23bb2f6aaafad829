// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Solid represents an individual renderable element, with its own
// spatial transform and a local-space bounding box of its mesh geometry.
// The batch compiler never deforms or re-authors meshes, so the bounding
// box and the mesh name are the only geometry properties it carries.
type Solid struct {
	NodeBase

	// Mesh is the name of the mesh shape in the source library.
	Mesh string `json:",omitempty"`

	// BBox is the local-space axis-aligned bounding box of the mesh.
	BBox math32.Box3
}

func (sld *Solid) IsRenderable() bool {
	return true
}

func (sld *Solid) LocalBBox() math32.Box3 {
	return sld.BBox
}

// SetBBox sets the local bounding box from min and max corners.
func (sld *Solid) SetBBox(min, max math32.Vector3) *Solid {
	sld.BBox.Set(&min, &max)
	return sld
}
