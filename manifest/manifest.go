// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest reads declarative build manifests and drives scene
// composition from them. A manifest names the asset slots to place,
// where their libraries live, and how each slot is positioned and
// anchored. Manifests are authored in JSON, TOML, or YAML.
package manifest

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/math32"
	"github.com/peterpolidoro/science-mechatronics-poster/anchor"
	"github.com/peterpolidoro/science-mechatronics-poster/compose"
	"github.com/peterpolidoro/science-mechatronics-poster/library"
)

// Manifest is one declarative scene build.
type Manifest struct {
	// Name is the name of the composed scene.
	Name string `json:"name"`

	// Output is the default output path of the composed scene document,
	// relative to the manifest.
	Output string `json:"output,omitempty"`

	// Units is the length unit slot values are authored in. Only
	// millimeters are supported; empty means "mm".
	Units string `json:"units,omitempty"`

	// Slots are the asset placements, applied in order so that a slot
	// can parent to any slot before it.
	Slots []*Slot `json:"slots"`

	// dir is the directory of the manifest file, for path resolution.
	dir string
}

// Slot is one asset placement in a manifest.
type Slot struct {
	// Name is the slot name, unique within the manifest. Chain nodes
	// are named from it.
	Name string `json:"name"`

	// Library is the asset library file path, resolved against the
	// manifest directory.
	Library string `json:"library"`

	// Group is the requested group name within the library.
	Group string `json:"group"`

	// Fallbacks are group names tried in order when Group is missing.
	Fallbacks []string `json:"fallbacks,omitempty"`

	// Mode is the sharing mode, "linked" (default) or "copied".
	Mode string `json:"mode,omitempty"`

	// Parent is the name of an earlier slot to parent this one under.
	// Empty parents to the scene root.
	Parent string `json:"parent,omitempty"`

	// Disabled skips the slot entirely.
	Disabled bool `json:"disabled,omitempty"`

	// Location is the anchor position in millimeters, 3 elements.
	Location []float32 `json:"location,omitempty"`

	// Rotation is in degrees: one element rotates about Z only, three
	// elements are intrinsic XYZ Euler angles.
	Rotation []float32 `json:"rotation,omitempty"`

	// Scale is one element for uniform or three per-axis. Empty is unit.
	Scale []float32 `json:"scale,omitempty"`

	// Anchor is the anchor mode: "auto" (default), "explicit",
	// "origin", "bbox_center", "bbox_min", or "heuristic_root".
	Anchor string `json:"anchor,omitempty"`

	// AnchorObject names the anchor node for "explicit", and the first
	// preference for "auto".
	AnchorObject string `json:"anchorObject,omitempty"`
}

// Open reads and decodes the manifest at the given path, using the
// extension to select the format. The manifest remembers its directory
// for [Manifest.ResolvePath].
func Open(path string) (*Manifest, error) {
	m := &Manifest{}
	var err error
	switch filepath.Ext(path) {
	case ".json":
		err = jsonx.Open(m, path)
	case ".toml":
		err = tomlx.Open(m, path)
	case ".yaml", ".yml":
		err = yamlx.Open(m, path)
	default:
		err = fmt.Errorf("manifest: unsupported manifest extension in %q", path)
	}
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// ResolvePath resolves a path from the manifest against the manifest's
// own directory, falling back to the directory above it for manifests
// kept in a build subdirectory next to their assets. Absolute paths are
// returned unchanged.
func (m *Manifest) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	fp := filepath.Join(m.dir, p)
	if errors.Log1(fsx.FileExists(fp)) {
		return fp
	}
	if up := filepath.Join(m.dir, "..", p); errors.Log1(fsx.FileExists(up)) {
		return up
	}
	return fp
}

// Placement converts the slot's transform and anchor fields into a
// [compose.PlacementSpec].
func (s *Slot) Placement(libPath string) compose.PlacementSpec {
	spec := compose.PlacementSpec{
		Location: vec3(s.Location, 0),
		Anchor:   s.anchorSpec(),
		Library:  libPath,
	}
	switch len(s.Rotation) {
	case 1:
		spec.Rotation.Z = s.Rotation[0]
	case 3:
		spec.Rotation.Set(s.Rotation[0], s.Rotation[1], s.Rotation[2])
	}
	switch len(s.Scale) {
	case 1:
		spec.Scale.SetScalar(s.Scale[0])
	case 3:
		spec.Scale.Set(s.Scale[0], s.Scale[1], s.Scale[2])
	}
	return spec
}

// LoadMode parses the slot's sharing mode, defaulting to [library.Linked].
func (s *Slot) LoadMode() (library.Mode, error) {
	switch s.Mode {
	case "", "linked":
		return library.Linked, nil
	case "copied":
		return library.Copied, nil
	}
	return library.Linked, fmt.Errorf("manifest: slot %q has unknown mode %q", s.Name, s.Mode)
}

func (s *Slot) anchorSpec() anchor.Spec {
	as := anchor.Spec{Name: s.AnchorObject}
	switch s.Anchor {
	case "", "auto":
		as.Mode = anchor.Auto
	case "explicit":
		as.Mode = anchor.Explicit
	case "origin":
		as.Mode = anchor.Origin
	case "bbox_center":
		as.Mode = anchor.BBoxCenter
	case "bbox_min":
		as.Mode = anchor.BBoxMin
	case "heuristic_root":
		as.Mode = anchor.HeuristicRoot
	default:
		slog.Warn("manifest: unknown anchor mode, using auto",
			"slot", s.Name, "anchor", s.Anchor)
		as.Mode = anchor.Auto
	}
	return as
}

func vec3(v []float32, def float32) math32.Vector3 {
	switch len(v) {
	case 1:
		return math32.Vec3(v[0], v[0], v[0])
	case 3:
		return math32.Vec3(v[0], v[1], v[2])
	}
	return math32.Vec3(def, def, def)
}
