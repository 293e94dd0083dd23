// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"
	"strconv"

	"cogentcore.org/xyzsim/math32"
)

// Rigid contains the basic mass properties of a body.
type Rigid struct {

	// Mass is the mass of the body; 0 for static bodies.
	Mass float32

	// InvMass is 1/Mass, or 0 for static bodies.
	InvMass float32

	// Fixed bodies never move and have infinite effective mass.
	Fixed bool
}

// Body is a rigid body in a [World], with a collision shape,
// physical state, and surface material.
type Body struct {

	// ID is the handle of the body in its world.
	ID int

	// Name is the name of the body.
	Name string

	// Shape is the collision shape, fixed when the body is made.
	Shape Shape

	// State is the world-coordinate position, rotation, and velocities.
	State State

	// Rigid has the mass properties.
	Rigid Rigid

	// Material is the surface material used for contacts.
	Material *Material

	// BBox is the world bounding box, updated on each step.
	BBox BBox

	// Sleeping bodies are not integrated until woken up.
	Sleeping bool

	// sleepTime is how long the body has been slow enough to sleep.
	sleepTime float32
}

func (bd *Body) String() string {
	return fmt.Sprintf("Body %s (%d) %v", bd.Name, bd.ID, bd.Shape)
}

// MaterialName returns the unique name for a private material of the
// body, which never matches the name of a shared material.
func (bd *Body) MaterialName() string {
	return bd.Name + "#" + strconv.Itoa(bd.ID)
}

// IsDynamic returns whether the body is moved by the simulation.
func (bd *Body) IsDynamic() bool {
	return !bd.Rigid.Fixed && bd.Rigid.InvMass > 0
}

// SetMass sets the mass, with 0 making the body static.
func (bd *Body) SetMass(mass float32) {
	bd.Rigid.Mass = max(mass, 0)
	if bd.Rigid.Mass > 0 && !bd.Rigid.Fixed {
		bd.Rigid.InvMass = 1 / bd.Rigid.Mass
	} else {
		bd.Rigid.InvMass = 0
	}
}

// SetFixed sets whether the body is fixed in place. Fixed bodies
// keep their mass setting, which applies again if unfixed.
func (bd *Body) SetFixed(fixed bool) {
	bd.Rigid.Fixed = fixed
	bd.SetMass(bd.Rigid.Mass)
	if fixed {
		bd.State.LinVel.SetZero()
		bd.State.AngVel.SetZero()
	}
	bd.WakeUp()
}

// ApplyImpulse applies the given impulse at the center of mass,
// changing the linear velocity. It has no effect on static bodies.
func (bd *Body) ApplyImpulse(impulse math32.Vector3) {
	if !bd.IsDynamic() {
		return
	}
	bd.State.LinVel.SetAdd(impulse.MulScalar(bd.Rigid.InvMass))
	bd.WakeUp()
}

// SetVelocity sets the linear velocity.
func (bd *Body) SetVelocity(vel math32.Vector3) {
	if !bd.IsDynamic() {
		return
	}
	bd.State.LinVel = vel
	bd.WakeUp()
}

// WakeUp makes a sleeping body active again.
func (bd *Body) WakeUp() {
	bd.Sleeping = false
	bd.sleepTime = 0
}

// Sleep puts the body to sleep, stopping its motion.
func (bd *Body) Sleep() {
	bd.Sleeping = true
	bd.State.LinVel.SetZero()
	bd.State.AngVel.SetZero()
}

// SetBBox updates the world bounding box from the shape and state.
func (bd *Body) SetBBox() {
	bd.BBox.BBox = bd.Shape.LocalBBox()
	bd.BBox.XForm(bd.State.Quat, bd.State.Pos)
	bd.BBox.VelNilProject()
}

// StepVelocity applies gravity to the velocity for given step size.
func (bd *Body) StepVelocity(step float32, gravity math32.Vector3) {
	if !bd.IsDynamic() || bd.Sleeping {
		return
	}
	bd.State.LinVel.SetAdd(gravity.MulScalar(step))
}

// StepPosition integrates the position and rotation from the
// velocities for given step size, and updates the BBox.
func (bd *Body) StepPosition(step float32) {
	if !bd.IsDynamic() || bd.Sleeping {
		bd.SetBBox()
		return
	}
	bd.State.StepByLinVel(step)
	bd.State.StepByAngVel(step)
	bd.SetBBox()
	bd.BBox.VelProject(bd.State.LinVel, step)
}

// updateSleep advances the sleep timer, putting the body to sleep
// once it has been slower than the speed limit for the time limit.
func (bd *Body) updateSleep(step, speedLimit, timeLimit float32) {
	if !bd.IsDynamic() || bd.Sleeping || timeLimit <= 0 {
		return
	}
	if bd.State.LinVel.Length() < speedLimit && bd.State.AngVel.Length() < speedLimit {
		bd.sleepTime += step
		if bd.sleepTime >= timeLimit {
			bd.Sleep()
		}
		return
	}
	bd.sleepTime = 0
}
