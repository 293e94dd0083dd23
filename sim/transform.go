// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"log/slog"

	"cogentcore.org/xyzsim/math32"
	"cogentcore.org/xyzsim/xyz"
	"cogentcore.org/xyzsim/xyz/physics/world"
)

// moved pushes the new world pose of the given node and all of its
// descendants to their bodies, and requests a render.
func (s *Sim) moved(nd *xyz.Node) {
	s.syncBodies(nd)
	s.Render.Request()
}

// syncBodies sets the body of the node and of its descendants to the
// world pose of their nodes, stopping their motion and waking them up.
func (s *Sim) syncBodies(nd *xyz.Node) {
	if bi, ok := s.bodies.ValueByKeyTry(nd.Name); ok {
		world.UpdateBody(s.Scene, nd, bi.Body)
	}
	for _, kid := range nd.Children {
		if kn := s.Scene.Node(kid); kn != nil {
			s.syncBodies(kn)
		}
	}
}

// SetPosition sets the position of the object, relative to its parent.
func (s *Sim) SetPosition(name string, x, y, z float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.Pos.Set(x, y, z)
	s.moved(nd)
}

// ChangePosition moves the object by the given amounts,
// in the coordinates of its parent.
func (s *Sim) ChangePosition(name string, dx, dy, dz float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.Pos.SetAdd(math32.Vec3(dx, dy, dz))
	s.moved(nd)
}

// Position returns the position of the object, relative to its parent.
func (s *Sim) Position(name string) math32.Vector3 {
	nd := s.node(name)
	if nd == nil {
		return math32.Vector3{}
	}
	return nd.Pose.Pos
}

// WorldPosition returns the position of the object in world coordinates.
func (s *Sim) WorldPosition(name string) math32.Vector3 {
	nd := s.node(name)
	if nd == nil {
		return math32.Vector3{}
	}
	return s.Scene.WorldPos(nd.ID)
}

// SetRotation sets the rotation of the object from Euler angles
// in degrees, relative to its parent.
func (s *Sim) SetRotation(name string, x, y, z float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.SetEulerRotation(x, y, z)
	s.moved(nd)
}

// ChangeRotation rotates the object by the given Euler angles
// in degrees, in its own local frame.
func (s *Sim) ChangeRotation(name string, dx, dy, dz float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.RotateEuler(dx, dy, dz)
	s.moved(nd)
}

// Rotation returns the rotation of the object as Euler angles in degrees.
func (s *Sim) Rotation(name string) math32.Vector3 {
	nd := s.node(name)
	if nd == nil {
		return math32.Vector3{}
	}
	return nd.Pose.EulerRotation()
}

// SetScale sets the scale of the object. The shape of an existing body
// does not change: use [Sim.RefreshPhysics] to rebuild it.
func (s *Sim) SetScale(name string, x, y, z float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.Scale.Set(x, y, z)
	s.moved(nd)
}

// ChangeScale adds the given amounts to the scale of the object.
func (s *Sim) ChangeScale(name string, dx, dy, dz float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.Scale.SetAdd(math32.Vec3(dx, dy, dz))
	s.moved(nd)
}

// Scale returns the scale of the object.
func (s *Sim) Scale(name string) math32.Vector3 {
	nd := s.node(name)
	if nd == nil {
		return math32.Vector3{}
	}
	return nd.Pose.Scale
}

// Move moves the object the given distance along one of its own axes.
func (s *Sim) Move(name string, axis Axes, dist float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	x, y, z := axis.Vector()
	nd.Pose.MoveOnAxis(x, y, z, dist)
	s.moved(nd)
}

// MoveForward moves the object the given distance along its forward axis.
func (s *Sim) MoveForward(name string, dist float32) { s.Move(name, Forward, dist) }

// MoveSide moves the object the given distance to its right.
func (s *Sim) MoveSide(name string, dist float32) { s.Move(name, Side, dist) }

// MoveUp moves the object the given distance along its up axis.
func (s *Sim) MoveUp(name string, dist float32) { s.Move(name, Up, dist) }

// PointTowards turns the object so that its forward axis faces
// the position of the target object.
func (s *Sim) PointTowards(name, target string) {
	nd := s.node(name)
	tn := s.node(target)
	if nd == nil || tn == nil || nd == tn {
		return
	}
	tpos := s.Scene.WorldPos(tn.ID)
	if nd.Parent != xyz.NoNode {
		tpos = tpos.MulMatrix4(s.Scene.ParentWorldMatrix(nd.ID).Inverse())
	}
	nd.Pose.FaceTowards(tpos)
	s.moved(nd)
}

// SetYawPitch sets the rotation of the object from a heading about the
// vertical axis and an elevation, both in degrees.
func (s *Sim) SetYawPitch(name string, yaw, pitch float32) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Pose.SetYawPitch(yaw, pitch)
	s.moved(nd)
}

// YawPitch returns the heading and elevation of the object's
// forward axis, in degrees.
func (s *Sim) YawPitch(name string) (yaw, pitch float32) {
	nd := s.node(name)
	if nd == nil {
		return 0, 0
	}
	return nd.Pose.YawPitch()
}

// TurnYaw turns the heading of the object by the given degrees,
// keeping its elevation.
func (s *Sim) TurnYaw(name string, deg float32) {
	yaw, pitch := s.YawPitch(name)
	s.SetYawPitch(name, yaw+deg, pitch)
}

// TurnPitch turns the elevation of the object by the given degrees,
// limited to straight up or down, keeping its heading.
func (s *Sim) TurnPitch(name string, deg float32) {
	yaw, pitch := s.YawPitch(name)
	s.SetYawPitch(name, yaw, math32.Clamp(pitch+deg, -90, 90))
}

//////// Grouping

// Attach makes the child object a child of the parent object,
// keeping its world transform. Attaching an object to itself or
// to one of its descendants does nothing.
func (s *Sim) Attach(child, parent string) {
	cn := s.node(child)
	pn := s.node(parent)
	if cn == nil || pn == nil {
		return
	}
	if err := s.Scene.SetParent(cn.ID, pn.ID); err != nil {
		slog.Debug("sim: cannot attach", "child", child, "parent", parent, "err", err)
		return
	}
	s.moved(cn)
}

// Detach moves the object to the scene root, keeping its world transform.
func (s *Sim) Detach(name string) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	s.Scene.SetParent(nd.ID, xyz.NoNode)
	s.moved(nd)
}

// Parent returns the name of the parent of the object,
// or "" if it is at the scene root.
func (s *Sim) Parent(name string) string {
	nd := s.node(name)
	if nd == nil {
		return ""
	}
	if pn := s.Scene.Node(nd.Parent); pn != nil {
		return pn.Name
	}
	return ""
}
