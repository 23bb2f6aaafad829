// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"regexp"
	"strings"

	"cogentcore.org/core/tree"
)

// dedupSuffix matches the trailing .<digits> suffix a host scene system
// appends to disambiguate multiple nodes sharing a base name (Foo.001).
var dedupSuffix = regexp.MustCompile(`\.\d+$`)

// BaseName returns the node name with any de-duplication suffix
// of the form .<digits> stripped.
func BaseName(name string) string {
	return dedupSuffix.ReplaceAllString(name, "")
}

// FindByBaseName returns the first node under root (inclusive) matching
// the desired name, trying exact match first, then de-duplication-suffix
// stripped exact match, then case-insensitive base match, so that a node
// literally named Foo always wins over Foo.001. Returns nil if not found.
func FindByBaseName(root tree.Node, desired string) Node {
	if desired == "" || root == nil {
		return nil
	}
	desiredBase := BaseName(desired)
	desiredLower := strings.ToLower(desiredBase)

	var exact, base, insens Node
	root.AsTree().WalkDown(func(n tree.Node) bool {
		ni, nb := AsNode(n)
		if ni == nil {
			return tree.Break
		}
		switch {
		case exact == nil && nb.Name == desired:
			exact = ni
		case base == nil && BaseName(nb.Name) == desiredBase:
			base = ni
		case insens == nil && strings.ToLower(BaseName(nb.Name)) == desiredLower:
			insens = ni
		}
		return tree.Continue
	})
	if exact != nil {
		return exact
	}
	if base != nil {
		return base
	}
	return insens
}
