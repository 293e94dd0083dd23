// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/xyzsim/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(0.1), s.Render.Near)
	assert.Equal(t, float32(1000), s.Render.Far)
	assert.InDelta(t, 1.0/60.0, s.Physics.FixedTick, 1e-7)
	assert.Equal(t, 10, s.Physics.MaxSubSteps)
	assert.Equal(t, math32.Vec3(0, -9.8, 0), s.Physics.Gravity)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, s.Render.BackgroundColor())
	assert.NoError(t, s.Validate())
}

func TestOpenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sim.toml")
	data := `
[render]
far = 50.0
background = "#336699"

[physics]
max-sub-steps = 3
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	s, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(50), s.Render.Far)
	assert.Equal(t, float32(0.1), s.Render.Near)
	assert.Equal(t, 3, s.Physics.MaxSubSteps)
	assert.Equal(t, float32(0.3), s.Physics.Friction)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, s.Render.BackgroundColor())
}

func TestOpenYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sim.yaml")
	data := "physics:\n  gravity:\n    x: 0\n    y: -1.5\n    z: 0\n  mass: 2\n"
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	s, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, -1.5, 0), s.Physics.Gravity)
	assert.Equal(t, float32(2), s.Physics.Mass)
	assert.Equal(t, 480, s.Render.Width)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(dir, "sim"+ext)
		s := New()
		s.Render.FOV = 45
		s.Physics.Restitution = 0.5
		require.NoError(t, s.Save(fn))
		o, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, s, o, ext)
	}
	assert.Error(t, New().Save(filepath.Join(dir, "sim.ini")))
	_, err := Open(filepath.Join(dir, "sim.ini"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	s := New()
	s.Render.Far = 0
	s.Physics.MaxSubSteps = 0
	assert.Error(t, s.Validate())
	assert.Equal(t, New(), s)
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, New().Save(fn))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, fn)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("[render]\nfov = 30.0\n"), 0666))
	// a write can be seen as several events, including a truncated file
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case s := <-ch:
			require.NotNil(t, s)
			done = s.Render.FOV == 30
		case <-timeout:
			t.Fatal("timed out waiting for settings reload")
		}
	}
	cancel()
	for range ch {
	}
}
