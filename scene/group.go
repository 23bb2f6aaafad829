// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Group collects individual elements in a scene but has no geometry of
// its own. It does have a transform that applies to all nodes under it.
// Asset groups loaded from a library are Groups, serving as read-only
// templates referenced by any number of [Instancer] nodes.
type Group struct {
	NodeBase
}

// IsEmpty returns whether the group contains no nodes at all.
func (gp *Group) IsEmpty() bool {
	return !gp.HasChildren()
}
