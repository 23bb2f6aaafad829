// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Instancer is a node that references exactly one asset [Group] and
// displays the group's content as if it were nested at the instancer's
// world transform. The referenced group is a read-only template owned
// by its library; it is never a child of the instancer.
type Instancer struct {
	NodeBase

	// Template is the asset group this instancer displays.
	Template *Group `json:"-" copier:"-"`

	// Library is the file path of the asset library the template came
	// from, for serialization of the composed scene.
	Library string `json:",omitempty"`

	// GroupName is the name of the template group within the library.
	GroupName string `json:",omitempty"`
}

// SetTemplate sets the referenced asset group along with its
// library provenance.
func (it *Instancer) SetTemplate(gp *Group, library string) *Instancer {
	it.Template = gp
	it.Library = library
	if gp != nil {
		it.GroupName = gp.Name
	}
	return it
}

// CopyFieldsFrom preserves the shared template reference on copy;
// instancers reference templates, they never own deep copies of them.
func (it *Instancer) CopyFieldsFrom(from tree.Node) {
	it.NodeBase.CopyFieldsFrom(from)
	if fit, ok := from.(*Instancer); ok {
		it.Template = fit.Template
	}
}

// InstancedWorldMatrix returns the evaluated world matrix of the given
// template node as duplicated by this instancer: the instancer's own
// world matrix times the node's local matrix chain relative to the
// template group, with the group's own local matrix included. This is
// the same frame the evaluation context resolves anchors in, so an
// anchor offset measured there lands where this function says it does.
// The instancer's world matrix must be current (see [UpdateWorldMatrix]).
func (it *Instancer) InstancedWorldMatrix(n Node) (math32.Matrix4, error) {
	if it.Template == nil {
		return *math32.Identity4(), fmt.Errorf("instancer %q: no template group", it.Name)
	}
	var chain []*NodeBase
	cur := tree.Node(n)
	for {
		ni, nb := AsNode(cur)
		if ni == nil {
			return *math32.Identity4(), fmt.Errorf("instancer %q: node %q is not inside template %q", it.Name, n.AsTree().Name, it.Template.Name)
		}
		chain = append(chain, nb)
		if nb == &it.Template.NodeBase {
			break
		}
		if nb.Parent == nil {
			return *math32.Identity4(), fmt.Errorf("instancer %q: node %q is not inside template %q", it.Name, n.AsTree().Name, it.Template.Name)
		}
		cur = nb.Parent
	}
	m := it.Pose.WorldMatrix
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].Pose.UpdateMatrix()
		m.MulMatrices(&m, &chain[i].Pose.Matrix)
	}
	return m, nil
}

// FindInstanced locates the instanced copy of the named node inside
// this instancer's duplicated content, tolerating de-duplication
// suffixes. Returns nil if the template has no such node.
func (it *Instancer) FindInstanced(name string) Node {
	if it.Template == nil {
		return nil
	}
	return FindByBaseName(it.Template, name)
}
