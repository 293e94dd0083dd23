// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/xyzsim/math32"
)

// Pose is the position, rotation, and scale of a node,
// relative to its parent.
type Pose struct {

	// Pos is the position of center of element (relative to parent).
	Pos math32.Vector3

	// Scale is the scale (relative to parent).
	Scale math32.Vector3

	// Quat is the node rotation specified as a Quat (relative to parent).
	Quat math32.Quat
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Matrix returns the local transform matrix based on
// position, quaternion, and scale.
func (ps *Pose) Matrix() *math32.Matrix4 {
	ps.Defaults()
	return math32.NewTransform(ps.Pos, ps.Quat, ps.Scale)
}

// SetMatrix sets Pos, Quat, and Scale from the given local matrix.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	ps.Pos, ps.Quat, ps.Scale = m.Decompose()
}

///////////////////////////////////////////////////////
// 		Moving

// MoveOnAxis moves (translates) the specified distance on the specified local axis,
// relative to the current rotation orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

///////////////////////////////////////////////////////
// 		Rotating

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// EulerRotation returns the current rotation in Euler angles (degrees).
func (ps *Pose) EulerRotation() math32.Vector3 {
	return ps.Quat.ToEuler().MulScalar(math32.RadToDegFactor)
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// RotateOnAxis rotates around the specified local axis the specified angle in degrees.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

// RotateEuler rotates by given Euler angles (in degrees) relative to existing rotation.
func (ps *Pose) RotateEuler(x, y, z float32) {
	ps.Quat.SetMul(math32.NewQuatEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor)))
}

// LookAt points the element's +Z axis at the given target location,
// using the given up direction. The pose faces away from the target
// along its -Z forward axis; see [Pose.FaceTowards].
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(target, ps.Pos, upDir))
}

// FaceTowards rotates the pose so that its forward (-Z) axis
// points at the given target location, with Y up.
// Targets at the current position leave the rotation unchanged.
func (ps *Pose) FaceTowards(target math32.Vector3) {
	if target.DistanceToSquared(ps.Pos) == 0 {
		return
	}
	ps.LookAt(target, math32.Vec3(0, 1, 0))
	ps.RotateOnAxis(0, 1, 0, 180)
}

// Forward returns the forward (-Z) direction of the pose
// in parent coordinates.
func (ps *Pose) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(ps.Quat)
}

// SetYawPitch sets the rotation to the given yaw about Y
// followed by pitch about the local X axis, in degrees.
func (ps *Pose) SetYawPitch(yaw, pitch float32) {
	ps.SetAxisRotation(0, 1, 0, yaw)
	ps.RotateOnAxis(1, 0, 0, pitch)
}

// YawPitch returns the yaw and pitch of the forward direction,
// in degrees, such that [Pose.SetYawPitch] with them reproduces
// the forward direction.
func (ps *Pose) YawPitch() (yaw, pitch float32) {
	f := ps.Forward()
	yaw = math32.RadToDeg(math32.Atan2(-f.X, -f.Z))
	pitch = math32.RadToDeg(math32.Asin(math32.Clamp(f.Y, -1, 1)))
	return
}
