// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/base/iox/jsonx"
)

// Scene is the root of a composed scene graph. One build process
// assembles one Scene from a declarative description and saves it
// as the single output artifact. Scene units are millimeters.
type Scene struct {
	Group
}

// SaveJSON saves the composed scene tree as a JSON document
// at the given path.
func (sc *Scene) SaveJSON(filename string) error {
	return jsonx.Save(sc.This, filename)
}
