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

func TestTransformSetters(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Box)
	s.SetPosition("A", 1, 2, 3)
	s.ChangePosition("A", 1, 1, 1)
	assertVec(t, math32.Vec3(2, 3, 4), s.Position("A"))

	s.SetRotation("A", 0, 30, 0)
	assertVec(t, math32.Vec3(0, 30, 0), s.Rotation("A"))
	s.ChangeRotation("A", 0, 15, 0)
	assertVec(t, math32.Vec3(0, 45, 0), s.Rotation("A"))

	s.SetScale("A", 2, 2, 2)
	s.ChangeScale("A", 1, 0, 0)
	assertVec(t, math32.Vec3(3, 2, 2), s.Scale("A"))
}

func TestMoveAxes(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Box)
	s.MoveForward("A", 2)
	assertVec(t, math32.Vec3(0, 0, -2), s.Position("A"))
	s.MoveSide("A", 1)
	s.MoveUp("A", 3)
	assertVec(t, math32.Vec3(1, 3, -2), s.Position("A"))

	s.SetPosition("A", 0, 0, 0)
	s.SetYawPitch("A", 90, 0)
	s.MoveForward("A", 1)
	assertVec(t, math32.Vec3(-1, 0, 0), s.Position("A"))
}

func TestPointTowards(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Cone)
	s.Create("B", Sphere)
	s.SetPosition("B", 3, 0, 0)
	s.PointTowards("A", "B")
	assert.Equal(t, "B", s.LookingAt("A"))
	yaw, pitch := s.YawPitch("A")
	assert.InDelta(t, -90, yaw, tol)
	assert.InDelta(t, 0, pitch, tol)

	s.SetPosition("B", 0, 4, -4)
	s.PointTowards("A", "B")
	assert.Equal(t, "B", s.LookingAt("A"))
	_, pitch = s.YawPitch("A")
	assert.InDelta(t, 45, pitch, tol)

	// towards an object under a moved parent
	s.Create("P", Box)
	s.SetPosition("P", 10, 0, 0)
	s.Attach("A", "P")
	s.SetPosition("B", 0, 0, 5)
	s.PointTowards("A", "B")
	assert.Equal(t, "B", s.LookingAt("A"))
}

func TestYawPitch(t *testing.T) {
	s, _ := newTestSim()
	s.Create("A", Box)
	s.SetYawPitch("A", 30, 20)
	yaw, pitch := s.YawPitch("A")
	assert.InDelta(t, 30, yaw, tol)
	assert.InDelta(t, 20, pitch, tol)
	s.TurnYaw("A", 15)
	s.TurnPitch("A", -5)
	yaw, pitch = s.YawPitch("A")
	assert.InDelta(t, 45, yaw, tol)
	assert.InDelta(t, 15, pitch, tol)
	s.TurnPitch("A", 200)
	_, pitch = s.YawPitch("A")
	assert.InDelta(t, 90, pitch, 0.1)
}

func TestDirectEditSyncsBody(t *testing.T) {
	s, fc := newTestSim()
	s.Create("A", Box)
	s.SetPosition("A", 0, 5, 0)
	s.EnablePhysics("A", false)
	s.Step()
	fc.advance(200 * time.Millisecond)
	s.Step()
	bi := s.Body("A")
	require.NotNil(t, bi)
	assert.Less(t, bi.Body.State.LinVel.Y, float32(0))

	bi.Body.Sleep()
	s.SetPosition("A", 1, 2, 3)
	s.SetRotation("A", 0, 90, 0)
	assertVec(t, math32.Vec3(1, 2, 3), bi.Body.State.Pos)
	assertVec(t, math32.Vector3{}, bi.Body.State.LinVel)
	assertVec(t, math32.Vector3{}, bi.Body.State.AngVel)
	assert.False(t, bi.Body.Sleeping)
	assert.True(t, bi.Body.State.Quat.IsEqualTol(s.Scene.WorldQuat(s.Object("A").Node), tol))

	// objects only follow their bodies on step
	bi.Body.State.Pos.Set(9, 9, 9)
	assertVec(t, math32.Vec3(1, 2, 3), s.Position("A"))
}

func TestGrouping(t *testing.T) {
	s, _ := newTestSim()
	s.Create("P", Box)
	s.Create("C", Sphere)
	s.SetPosition("P", 1, 0, 0)
	s.SetRotation("P", 0, 90, 0)
	s.SetPosition("C", 3, 2, 1)
	s.EnablePhysics("C", true)

	s.Attach("C", "P")
	assert.Equal(t, "P", s.Parent("C"))
	assertVec(t, math32.Vec3(3, 2, 1), s.WorldPosition("C"))

	s.ChangePosition("P", 0, 1, 0)
	assertVec(t, math32.Vec3(3, 3, 1), s.WorldPosition("C"))
	assertVec(t, math32.Vec3(3, 3, 1), s.Body("C").Body.State.Pos)

	// cycles are refused
	s.Attach("P", "C")
	assert.Equal(t, "", s.Parent("P"))
	s.Attach("P", "P")
	assert.Equal(t, "", s.Parent("P"))

	s.Detach("C")
	assert.Equal(t, "", s.Parent("C"))
	assertVec(t, math32.Vec3(3, 3, 1), s.WorldPosition("C"))

	s.Attach("C", "P")
	s.Delete("P")
	assert.True(t, s.Has("C"))
	assert.Equal(t, "", s.Parent("C"))
	assertVec(t, math32.Vec3(3, 3, 1), s.WorldPosition("C"))
}
