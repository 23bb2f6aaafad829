// Copyright (c) 2026, Science Mechatronics Poster Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenebuild composes a pivot-compensated 3D scene from a
// declarative asset manifest and saves it as a JSON scene document.
package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/peterpolidoro/science-mechatronics-poster/library"
	"github.com/peterpolidoro/science-mechatronics-poster/manifest"
	"github.com/peterpolidoro/science-mechatronics-poster/scene"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the scenebuild cli.
type Config struct {

	// Manifest is the build manifest file to compose, in JSON, TOML,
	// or YAML.
	Manifest string `posarg:"0"`

	// Output overrides the manifest's output path for the composed
	// scene document.
	Output string `flag:"o,output"`

	// Verify checks, for every placed slot with an explicit anchor
	// object, that the instanced anchor lands on the slot's pivot.
	Verify bool `flag:"verify"`

	// Debug enables debug logging.
	Debug bool `flag:"debug"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("scenebuild", "Scenebuild composes pivot-compensated 3D scenes from declarative asset manifests.")
	cli.Run(opts, &Config{}, Build)
}

// Build composes the scene described by the manifest and saves it.
func Build(c *Config) error { //cli:cmd -root
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	m, err := manifest.Open(c.Manifest)
	if err != nil {
		return err
	}
	sc := scene.NewScene()
	if m.Name != "" {
		sc.SetName(m.Name)
	}
	comp, err := m.Build(sc, library.NewLoader())
	if err != nil {
		return err
	}

	if c.Verify {
		failed := 0
		for _, s := range m.Slots {
			if s.Disabled || s.AnchorObject == "" {
				continue
			}
			inst := comp.Instancer(s.Name)
			if inst == nil {
				continue
			}
			rep, err := comp.VerifyAnchor(inst, s.AnchorObject)
			if err != nil {
				slog.Warn("scenebuild: anchor verification skipped", "slot", s.Name, "err", err)
				continue
			}
			if rep.Delta.Length() > 1e-3 {
				slog.Error("scenebuild: anchor verification failed", "slot", s.Name,
					"expected", rep.Expected, "actual", rep.Actual, "delta", rep.Delta)
				failed++
				continue
			}
			slog.Debug("scenebuild: anchor verified", "slot", s.Name, "delta", rep.Delta)
		}
		if failed > 0 {
			return fmt.Errorf("scenebuild: %d slot(s) failed anchor verification", failed)
		}
	}

	out := c.Output
	if out == "" {
		out = m.ResolvePath(m.Output)
	}
	if out == "" {
		out = "scene.json"
	}
	if err := sc.SaveJSON(out); err != nil {
		return err
	}
	slog.Info("scenebuild: wrote scene", "output", out, "slots", len(comp.Anchors))
	return nil
}
