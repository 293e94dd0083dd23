// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the render and physics settings for a
// simulation, with defaults, loading from TOML or YAML files, and
// hot reloading on file change.
package settings

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/base/iox/tomlx"
	"cogentcore.org/xyzsim/base/iox/yamlx"
	"cogentcore.org/xyzsim/base/reflectx"
	"cogentcore.org/xyzsim/colors"
	"cogentcore.org/xyzsim/math32"
)

// Settings are the full set of simulation settings.
type Settings struct {

	// Render has the settings for frame rendering and ray queries.
	Render RenderSettings `toml:"render" yaml:"render"`

	// Physics has the settings for the rigid-body world and stepping.
	Physics PhysicsSettings `toml:"physics" yaml:"physics"`
}

// RenderSettings are the settings for rendering frames.
type RenderSettings struct {

	// Near is the near clipping distance: ray hits closer than this
	// are ignored.
	Near float32 `default:"0.1" toml:"near" yaml:"near"`

	// Far is the far clipping distance: ray hits farther than this
	// are ignored.
	Far float32 `default:"1000" toml:"far" yaml:"far"`

	// FOV is the vertical field of view of cameras, in degrees.
	FOV float32 `default:"60" toml:"fov" yaml:"fov"`

	// Width is the frame width in pixels.
	Width int `default:"480" toml:"width" yaml:"width"`

	// Height is the frame height in pixels.
	Height int `default:"360" toml:"height" yaml:"height"`

	// Background is the background color, as a color name or hex value.
	Background string `default:"white" toml:"background" yaml:"background"`
}

// PhysicsSettings are the settings for the rigid-body world.
type PhysicsSettings struct {

	// Gravity is the gravity acceleration vector.
	Gravity math32.Vector3 `default:"{'x': 0, 'y': -9.8, 'z': 0}" toml:"gravity" yaml:"gravity"`

	// FixedTick is the duration of one fixed physics sub-step, in seconds.
	FixedTick float32 `default:"0.016666668" toml:"fixed-tick" yaml:"fixed-tick"`

	// MaxSubSteps is the maximum number of fixed sub-steps per step call.
	MaxSubSteps int `default:"10" toml:"max-sub-steps" yaml:"max-sub-steps"`

	// Friction is the default friction of new bodies.
	Friction float32 `default:"0.3" toml:"friction" yaml:"friction"`

	// Restitution is the default bounciness of new bodies.
	Restitution float32 `default:"0" toml:"restitution" yaml:"restitution"`

	// Mass is the default mass of new non-fixed bodies.
	Mass float32 `default:"1" toml:"mass" yaml:"mass"`
}

// New returns new settings with default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets default values for all settings,
// from their default tags.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// BackgroundColor returns the parsed background color,
// logging and falling back to white if it is invalid.
func (rs *RenderSettings) BackgroundColor() color.RGBA {
	c, err := colors.FromString(rs.Background)
	if errors.Log(err) != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// Validate fixes any out-of-range values, resetting them to defaults,
// and returns an error describing what was fixed, if anything.
func (s *Settings) Validate() error {
	var errs []error
	def := New()
	if s.Render.Near < 0 || s.Render.Far <= s.Render.Near {
		errs = append(errs, fmt.Errorf("invalid near / far range [%g, %g]", s.Render.Near, s.Render.Far))
		s.Render.Near, s.Render.Far = def.Render.Near, def.Render.Far
	}
	if s.Render.Width <= 0 || s.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid frame size %dx%d", s.Render.Width, s.Render.Height))
		s.Render.Width, s.Render.Height = def.Render.Width, def.Render.Height
	}
	if s.Physics.FixedTick <= 0 {
		errs = append(errs, fmt.Errorf("invalid fixed tick %g", s.Physics.FixedTick))
		s.Physics.FixedTick = def.Physics.FixedTick
	}
	if s.Physics.MaxSubSteps < 1 {
		errs = append(errs, fmt.Errorf("invalid max sub-steps %d", s.Physics.MaxSubSteps))
		s.Physics.MaxSubSteps = def.Physics.MaxSubSteps
	}
	return errors.Join(errs...)
}

// Open loads settings from the given file, starting from defaults so
// that fields missing in the file keep their default values. The format
// is determined by the file extension: .toml or .yaml / .yml.
// Out-of-range values are reset to defaults, with a non-nil error
// alongside the returned settings; other failures return nil settings.
func Open(filename string) (*Settings, error) {
	s := New()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		return nil, fmt.Errorf("settings.Open: unsupported settings file extension for %q", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("settings.Open: %w", err)
	}
	return s, s.Validate()
}

// Save saves the settings to the given file, in the format
// determined by the file extension.
func (s *Settings) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("settings.Save: unsupported settings file extension for %q", filename)
}
