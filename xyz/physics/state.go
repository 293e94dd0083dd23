// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"cogentcore.org/xyzsim/math32"
)

// State contains the basic physical state including position, orientation, velocity.
// These are only the values that can be either relative or absolute -- other physical
// state values such as Mass should go in Rigid.
type State struct {

	// position of center of mass of object
	Pos math32.Vector3

	// rotation specified as a Quat
	Quat math32.Quat

	// linear velocity
	LinVel math32.Vector3

	// angular velocity
	AngVel math32.Vector3
}

// Defaults sets defaults only if current values are nil
func (ps *State) Defaults() {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// SetPose sets the position and rotation, and stops all motion.
func (ps *State) SetPose(pos math32.Vector3, quat math32.Quat) {
	ps.Pos = pos
	ps.Quat = quat
	ps.LinVel.SetZero()
	ps.AngVel.SetZero()
}

//////// 	State updates

// AngMotionMax is maximum angular motion that can be taken per update
const AngMotionMax = math.Pi / 4

// StepByAngVel steps the Quat rotation from the world-frame angular velocity.
// The rotation per step is limited to [AngMotionMax].
func (ps *State) StepByAngVel(step float32) {
	ang := ps.AngVel.Length()
	if ang < 1e-6 {
		return
	}
	angle := math32.Min(ang*step, AngMotionMax)
	dq := math32.NewQuatAxisAngle(ps.AngVel.DivScalar(ang), angle)
	ps.Quat = dq.Mul(ps.Quat)
	ps.Quat.Normalize()
}

// StepByLinVel steps the Pos from the linear velocity
func (ps *State) StepByLinVel(step float32) {
	ps.Pos = ps.Pos.Add(ps.LinVel.MulScalar(step))
}

// EulerRotation returns the current rotation in Euler angles (degrees).
func (ps *State) EulerRotation() math32.Vector3 {
	return ps.Quat.ToEuler().MulScalar(math32.RadToDegFactor)
}
