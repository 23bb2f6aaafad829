// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/tree"
	"github.com/peterpolidoro/science-mechatronics-poster/compose"
	"github.com/peterpolidoro/science-mechatronics-poster/library"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// Build composes the manifest into the given scene, loading assets
// through the given loader. Slots are placed in manifest order. A slot
// whose asset cannot be loaded or placed is logged and skipped; only a
// bad manifest fails the build. Returns the composer with the per-slot
// anchor resolutions.
func (m *Manifest) Build(sc *scene.Scene, ld *library.Loader) (*compose.Composer, error) {
	if m.Units != "" && m.Units != "mm" {
		return nil, fmt.Errorf("manifest: unsupported units %q, only mm is supported", m.Units)
	}
	c := compose.NewComposer(sc)
	pivots := map[string]*scene.Group{}
	for _, s := range m.Slots {
		if s.Disabled {
			slog.Info("manifest: slot disabled, skipping", "slot", s.Name)
			continue
		}
		mode, err := s.LoadMode()
		if err != nil {
			return nil, err
		}
		libPath := m.ResolvePath(s.Library)
		gp, err := ld.LoadGroup(libPath, s.Group, s.Fallbacks, mode)
		if err != nil {
			slog.Warn("manifest: asset load failed, skipping slot",
				"slot", s.Name, "library", libPath, "group", s.Group, "err", err)
			continue
		}

		var parent tree.Node
		if s.Parent != "" {
			pp, ok := pivots[s.Parent]
			if !ok {
				slog.Warn("manifest: parent slot not placed, parenting to scene root",
					"slot", s.Name, "parent", s.Parent)
			} else {
				parent = pp
			}
		}

		inst, err := c.Place(gp, parent, s.Name, s.Placement(libPath))
		if err != nil {
			slog.Warn("manifest: placement failed, skipping slot",
				"slot", s.Name, "err", err)
			continue
		}
		if inst != nil {
			pivots[s.Name] = c.Pivot(s.Name)
		}
	}
	c.Finalize()
	return c, nil
}
