// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"
	"time"

	"cogentcore.org/xyzsim/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X: want %v got %v", want, got)
	assert.InDelta(t, want.Y, got.Y, tol, "Y: want %v got %v", want, got)
	assert.InDelta(t, want.Z, got.Z, tol, "Z: want %v got %v", want, got)
}

type fakeClock struct {
	t time.Time
}

func (fc *fakeClock) now() time.Time { return fc.t }

func (fc *fakeClock) advance(d time.Duration) { fc.t = fc.t.Add(d) }

// newTestSim returns a simulation with default settings
// and a clock that only moves when advanced.
func newTestSim() (*Sim, *fakeClock) {
	s := New(nil)
	fc := &fakeClock{t: time.Unix(1000, 0)}
	s.Clock.Now = fc.now
	return s, fc
}

func TestCubeSphereScenario(t *testing.T) {
	s, fc := newTestSim()
	s.Create("A", Box)
	s.Create("B", Sphere)
	s.SetPosition("B", 0, 0, -5)
	assert.Equal(t, "B", s.LookingAt("A"))
	assert.Equal(t, "", s.LookingAt("B"))

	s.SetPosition("B", 0, 0, 5)
	assert.Equal(t, "", s.LookingAt("A"))

	s.EnablePhysics("A", false)
	y0 := s.Position("A").Y
	assert.Equal(t, 0, s.Step())
	assert.Equal(t, y0, s.Position("A").Y)
	fc.advance(100 * time.Millisecond)
	assert.Greater(t, s.Step(), 0)
	y1 := s.Position("A").Y
	assert.Less(t, y1, y0)
	fc.advance(100 * time.Millisecond)
	s.Step()
	assert.Less(t, s.Position("A").Y, y1)
}

func TestUniqueNames(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Box)
	s.SetColor("A", 0xff0000)
	s.EnablePhysics("A", false)
	require.Equal(t, 1, s.World.Len())

	s.Create("A", Sphere)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"A"}, s.Names())
	kind, ok := s.Kind("A")
	assert.True(t, ok)
	assert.Equal(t, Sphere, kind)
	assert.False(t, s.HasPhysics("A"))
	assert.Equal(t, 0, s.World.Len())
	assert.Equal(t, 1, s.Scene.Len())
	assert.Equal(t, 1, s.Scene.LiveMaterials())
	c, ok := s.Color("A")
	assert.True(t, ok)
	assert.Equal(t, 0x808080, c)

	_, ok = s.Kind("none")
	assert.False(t, ok)
}

func TestCreateDefaults(t *testing.T) {
	s, _ := newTestSim()
	for k := Box; k < KindsN; k++ {
		s.Create(k.String(), k)
	}
	assert.Equal(t, int(KindsN), s.Len())
	for _, name := range s.Names() {
		assertVec(t, math32.Vector3{}, s.Position(name))
		assertVec(t, math32.Vector3{}, s.Rotation(name))
		assertVec(t, math32.Vector3Scalar(1), s.Scale(name))
		assert.False(t, s.HasPhysics(name))
		assert.True(t, s.Visible(name))
	}
	s.Create("bad", KindsN)
	assert.False(t, s.Has("bad"))
}

func TestDeleteDisposesPrivate(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Box)
	s.Create("B", Box)
	assert.Equal(t, 1, s.Scene.LiveMaterials())
	assert.Equal(t, 1, s.Scene.LiveMeshes())

	s.SetColor("A", 0x00ff00)
	assert.Equal(t, 2, s.Scene.LiveMaterials())
	c, _ := s.Color("A")
	assert.Equal(t, 0x00ff00, c)
	c, _ = s.Color("B")
	assert.Equal(t, 0x808080, c)

	s.EnablePhysics("A", true)
	s.Delete("A")
	assert.False(t, s.Has("A"))
	assert.Equal(t, 1, s.Scene.LiveMaterials())
	assert.Equal(t, 1, s.Scene.LiveMeshes())
	assert.Equal(t, 0, s.World.Len())

	// unknown names are ignored
	s.Delete("A")
	s.SetPosition("A", 1, 2, 3)
	s.SetColor("A", 0)
	assert.Equal(t, "", s.LookingAt("A"))
	assertVec(t, math32.Vector3{}, s.Position("A"))
	assert.Equal(t, 1, s.Len())
}

func TestDeleteAll(t *testing.T) {
	s, fc := newTestSim()
	s.Create("A", Box)
	s.Create("cam", Camera)
	s.SetActiveCamera("cam")
	s.EnablePhysics("A", false)
	s.Step()
	fc.advance(time.Second)
	s.Step()
	assert.Equal(t, Running, s.Clock.State)
	assert.Equal(t, "cam", s.ActiveCamera())

	s.DeleteAll()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.World.Len())
	assert.Equal(t, 0, s.Scene.Len())
	assert.Equal(t, "", s.ActiveCamera())
	assert.Equal(t, Warming, s.Clock.State)
	assert.Equal(t, 1, s.Scene.LiveMaterials())
}

func TestLightsAndCameras(t *testing.T) {
	s, _ := newTestSim()
	s.Create("sun", Light)
	s.SetColor("sun", 0xffff00)
	c, ok := s.Color("sun")
	assert.True(t, ok)
	assert.Equal(t, 0xffff00, c)
	s.SetLight("sun", 0)
	assert.False(t, s.Scene.Node(s.Object("sun").Node).Light.On)

	s.Create("cam", Camera)
	_, ok = s.Color("cam")
	assert.False(t, ok)
	s.EnablePhysics("cam", false)
	s.EnablePhysics("sun", false)
	assert.False(t, s.HasPhysics("cam"))
	assert.False(t, s.HasPhysics("sun"))

	s.SetActiveCamera("sun")
	assert.Equal(t, "", s.ActiveCamera())
	s.SetActiveCamera("cam")
	assert.Equal(t, "cam", s.ActiveCamera())
	s.SetActiveCamera("")
	assert.Equal(t, "", s.ActiveCamera())
	s.SetActiveCamera("cam")
	s.Delete("cam")
	assert.Equal(t, "", s.ActiveCamera())
}

func TestKinds(t *testing.T) {
	k, err := KindFromString("Cube")
	assert.NoError(t, err)
	assert.Equal(t, Box, k)
	k, err = KindFromString("donut")
	assert.NoError(t, err)
	assert.Equal(t, Torus, k)
	k, err = KindFromString("Torus")
	assert.NoError(t, err)
	assert.Equal(t, Torus, k)
	_, err = KindFromString("Teapot")
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
	_, err = KindFromString("Cylindr")
	assert.ErrorContains(t, err, `did you mean "Cylinder"`)
	assert.Equal(t, "Cube", Box.Type())
	assert.Equal(t, "Donut", Torus.Type())
	assert.True(t, Cone.IsMesh())
	assert.False(t, Camera.IsMesh())
}
