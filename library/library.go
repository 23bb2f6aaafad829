// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package library loads named asset groups from library files into
// scene node trees, with fallback resolution and per-file caching.
package library

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

// ExportPrefix marks groups intended for export from a library file.
// When a requested group and all its fallbacks are missing, groups with
// this prefix are tried next, in sorted name order.
const ExportPrefix = "EXPORT_"

// defaultGroupName is the conventional name of the catch-all group
// that authoring tools create in otherwise unnamed files.
const defaultGroupName = "Collection"

// ErrNotFound indicates that a library file or group could not be
// resolved. Callers typically treat it as non-fatal for one slot.
var ErrNotFound = errors.New("library: not found")

// Mode selects how a loaded group is shared between load calls.
type Mode int32

const (
	// Linked returns the same shared group for every load of the same
	// key. Callers must not reparent or mutate a linked group.
	Linked Mode = iota

	// Copied returns an independent deep copy on every load.
	Copied
)

func (m Mode) String() string {
	switch m {
	case Linked:
		return "Linked"
	case Copied:
		return "Copied"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// Key identifies one cached group load: the cleaned library path, the
// originally requested group name, and the sharing mode. Fallback
// resolution happens once per key; later loads with the same key reuse
// the first resolution even if the file would now resolve differently.
type Key struct {
	Path  string
	Group string
	Mode  Mode
}

// Loader loads asset groups from library files, caching decoded files
// by path and built groups by [Key]. The zero value is not usable; use
// [NewLoader]. A Loader is not safe for concurrent use.
type Loader struct {
	files  map[string]*File
	groups map[Key]*scene.Group
}

// NewLoader returns a new empty Loader.
func NewLoader() *Loader {
	return &Loader{
		files:  map[string]*File{},
		groups: map[Key]*scene.Group{},
	}
}

// Default is the process-wide shared loader used by the package-level
// load functions.
var Default = NewLoader()

// LoadGroup loads a group through [Default].
func LoadGroup(path, name string, fallbacks []string, mode Mode) (*scene.Group, error) {
	return Default.LoadGroup(path, name, fallbacks, mode)
}

// ListGroups lists group names through [Default].
func ListGroups(path string) ([]string, error) {
	return Default.ListGroups(path)
}

// file returns the decoded library file at path, reading and caching
// it on first use. A missing file wraps [ErrNotFound].
func (ld *Loader) file(path string) (*File, error) {
	if f, ok := ld.files[path]; ok {
		return f, nil
	}
	if !errors.Log1(fsx.FileExists(path)) {
		return nil, fmt.Errorf("library: file %q: %w", path, ErrNotFound)
	}
	f, err := OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("library: file %q: %w", path, err)
	}
	ld.files[path] = f
	return f, nil
}

// ListGroups returns the names of the groups in the library file at
// path, in authored order.
func (ld *Loader) ListGroups(path string) ([]string, error) {
	f, err := ld.file(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return f.GroupNames(), nil
}

// LoadGroup resolves and builds the named group from the library file
// at path. Resolution tries, in order: the requested name, each
// fallback name, groups named with [ExportPrefix] in sorted order, the
// conventional "Collection" group, and finally every group in authored
// order. Among the candidates, a group with content is preferred over
// an empty one, even when the empty one is the requested group; an
// empty group is used only when every candidate is empty.
//
// Results are cached by [Key]. [Linked] returns the same shared group
// every time; [Copied] returns an independent copy built from a cached
// original. A file with no groups at all, or a missing file, returns an
// error wrapping [ErrNotFound].
func (ld *Loader) LoadGroup(path, name string, fallbacks []string, mode Mode) (*scene.Group, error) {
	path = filepath.Clean(path)
	key := Key{Path: path, Group: name, Mode: mode}
	if gp, ok := ld.groups[key]; ok {
		if mode == Copied {
			return gp.Clone().(*scene.Group), nil
		}
		return gp, nil
	}
	f, err := ld.file(path)
	if err != nil {
		return nil, err
	}
	if len(f.Groups) == 0 {
		return nil, fmt.Errorf("library: file %q has no groups: %w", path, ErrNotFound)
	}
	for _, def := range candidates(f, name, fallbacks) {
		gp, err := def.Build()
		if err != nil {
			slog.Warn("library: group candidate failed to build, trying next",
				"path", path, "group", def.Name, "err", err)
			continue
		}
		if def.Name != name {
			slog.Warn("library: requested group missing, using fallback",
				"path", path, "requested", name, "using", def.Name)
		}
		ld.groups[key] = gp
		if mode == Copied {
			return gp.Clone().(*scene.Group), nil
		}
		return gp, nil
	}
	return nil, fmt.Errorf("library: no loadable group in %q for %q: %w", path, name, ErrNotFound)
}

// candidates assembles the fallback ladder in order: the requested
// name, each fallback, export-prefixed groups sorted by name, the
// conventional default group, then every group in authored order.
// Groups with content come before empty ones, so an empty group, even
// the requested one, never shadows a usable candidate; the empty rungs
// only matter when every candidate is empty.
func candidates(f *File, name string, fallbacks []string) []*NodeDef {
	var ladder []*NodeDef
	seen := map[*NodeDef]bool{}
	add := func(d *NodeDef) {
		if d != nil && !seen[d] {
			seen[d] = true
			ladder = append(ladder, d)
		}
	}
	if name != "" {
		add(f.Group(name))
	}
	for _, fb := range fallbacks {
		add(f.Group(fb))
	}
	var exports []*NodeDef
	for _, g := range f.Groups {
		if strings.HasPrefix(g.Name, ExportPrefix) {
			exports = append(exports, g)
		}
	}
	sort.Slice(exports, func(i, j int) bool { return exports[i].Name < exports[j].Name })
	for _, g := range exports {
		add(g)
	}
	add(f.Group(defaultGroupName))
	for _, g := range f.Groups {
		add(g)
	}

	ordered := make([]*NodeDef, 0, len(ladder))
	for _, d := range ladder {
		if len(d.Children) > 0 {
			ordered = append(ordered, d)
		}
	}
	for _, d := range ladder {
		if len(d.Children) == 0 {
			ordered = append(ordered, d)
		}
	}
	return ordered
}
