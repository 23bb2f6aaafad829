// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Foo", BaseName("Foo"))
	assert.Equal(t, "Foo", BaseName("Foo.001"))
	assert.Equal(t, "Foo", BaseName("Foo.12"))
	assert.Equal(t, "Foo.bar", BaseName("Foo.bar"))
	assert.Equal(t, "RIG_STAGE_ROOT", BaseName("RIG_STAGE_ROOT.003"))
	assert.Equal(t, "", BaseName(""))
}

func TestFindByBaseName(t *testing.T) {
	root := NewGroup()
	root.SetName("root")
	a := NewSolid(root)
	a.SetName("Foo.001")
	b := NewSolid(root)
	b.SetName("Foo")
	c := NewSolid(root)
	c.SetName("bar.002")

	// exact name wins over an earlier suffixed sibling
	assert.Equal(t, Node(b), FindByBaseName(root, "Foo"))
	assert.Equal(t, Node(a), FindByBaseName(root, "Foo.001"))

	// suffix-stripped match
	assert.Equal(t, Node(c), FindByBaseName(root, "bar"))

	// case-insensitive as a last resort
	assert.Equal(t, Node(c), FindByBaseName(root, "BAR"))

	assert.Nil(t, FindByBaseName(root, "missing"))
	assert.Nil(t, FindByBaseName(root, ""))
	assert.Nil(t, FindByBaseName(nil, "Foo"))
}
