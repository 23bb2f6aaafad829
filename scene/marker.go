// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Marker is a non-renderable axis-indicator node, used in asset groups
// to mark rig roots and other points of interest. Markers contribute no
// geometry; their value is their name and their evaluated world position.
type Marker struct {
	NodeBase

	// Style is the display style of the marker axes (e.g. "plain-axes").
	Style string `json:",omitempty"`
}
