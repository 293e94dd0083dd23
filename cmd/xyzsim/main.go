// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xyzsim runs a simulation headless: it loads settings and a
// scene file, steps the physics a number of times at a fixed frame
// rate, and saves the resulting scene and a rendered frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/base/iox/imagex"
	"cogentcore.org/xyzsim/base/logx"
	"cogentcore.org/xyzsim/cli"
	"cogentcore.org/xyzsim/settings"
	"cogentcore.org/xyzsim/sim"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of a run.
type Config struct {

	// Settings is the settings file, in TOML or YAML; "" for defaults.
	Settings string `desc:"settings file (.toml, .yaml)"`

	// Scene is the scene JSON file to load.
	Scene string `desc:"scene JSON file to load"`

	// Steps is the number of frames to step.
	Steps int `default:"60" desc:"number of frames to step"`

	// FPS is the frame rate of the steps.
	FPS float64 `default:"60" desc:"frames per second of the steps"`

	// Out is the file to save the final scene JSON to, if any.
	Out string `flag:"o,out" desc:"file to save the final scene JSON to"`

	// Frame is the image file to save the final frame to, if any.
	Frame string `desc:"image file to save the final frame to (.png, .jpg, ...)"`

	// Watch keeps running after the steps, reloading the settings
	// file whenever it changes, until interrupted.
	Watch bool `desc:"keep running, reloading the settings file when it changes"`

	// Log has the logging flags.
	Log LogConfig
}

// LogConfig has the logging level flags.
type LogConfig struct {
	VeryVerbose bool `flag:"vv,very-verbose" desc:"debug logging"`
	Verbose     bool `flag:"v,verbose" desc:"verbose logging"`
	Quiet       bool `flag:"q,quiet" desc:"quiet logging"`
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

func main() {
	cfg := NewConfig()
	errors.Must(cli.AddFlags(flag.CommandLine, cfg))
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(cfg.Log.VeryVerbose, cfg.Log.Verbose, cfg.Log.Quiet)
	logx.SetDefaultLogger()
	if err := Run(context.Background(), cfg); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// expandPaths expands a leading ~ in the file paths to the home directory.
func (cfg *Config) expandPaths() error {
	for _, p := range []*string{&cfg.Settings, &cfg.Scene, &cfg.Out, &cfg.Frame} {
		ex, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("xyzsim: %w", err)
		}
		*p = ex
	}
	return nil
}

// Run does a run with the given configuration.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("xyzsim: invalid frame rate %g", cfg.FPS)
	}
	if err := cfg.expandPaths(); err != nil {
		return err
	}
	ready := sim.NewReady(sim.DefaultInit(cfg.Settings))
	if err := ready.Wait(ctx); err != nil {
		return err
	}
	s := ready.Sim()

	// steps follow a simulated clock, independent of the wall clock
	now := time.Unix(0, 0)
	frame := time.Duration(float64(time.Second) / cfg.FPS)
	s.Clock.Now = func() time.Time { return now }

	if cfg.Scene != "" {
		if err := s.OpenFile(cfg.Scene); err != nil {
			return err
		}
		s.WaitTextures()
	}
	s.Step()
	substeps := 0
	for range cfg.Steps {
		now = now.Add(frame)
		substeps += s.Step()
	}
	s.Render.Request()
	s.Render.Paint()
	slog.Info("xyzsim: stepped", "frames", cfg.Steps, "substeps", substeps, "objects", s.Len())
	if err := save(s, cfg); err != nil {
		return err
	}
	if cfg.Watch && cfg.Settings != "" {
		return watch(ctx, s, cfg)
	}
	return nil
}

// save saves the scene and frame, as configured.
func save(s *sim.Sim, cfg *Config) error {
	if cfg.Out != "" {
		if err := s.SaveFile(cfg.Out); err != nil {
			return fmt.Errorf("xyzsim: saving scene: %w", err)
		}
	}
	if cfg.Frame != "" {
		if err := imagex.Save(s.Frame(), cfg.Frame); err != nil {
			return fmt.Errorf("xyzsim: saving frame: %w", err)
		}
	}
	return nil
}

// watch applies new settings as the settings file changes,
// re-rendering and saving the frame each time.
func watch(ctx context.Context, s *sim.Sim, cfg *Config) error {
	ch, err := settings.Watch(ctx, cfg.Settings)
	if err != nil {
		return err
	}
	slog.Info("xyzsim: watching settings", "file", cfg.Settings)
	for st := range ch {
		s.ApplySettings(st)
		s.Render.Paint()
		errors.Log(save(s, cfg))
	}
	return nil
}
