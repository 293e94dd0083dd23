// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics is a small rigid-body physics engine: bodies with
// box, sphere, cylinder, and compound shapes fall under gravity and
// collide with each other, stepped at a fixed tick rate.
package physics

import (
	"log/slog"
	"slices"
	"sort"

	"cogentcore.org/xyzsim/math32"
)

// World is the container of all bodies, stepped together.
type World struct {

	// Gravity is the gravity acceleration vector.
	Gravity math32.Vector3

	// Iterations is the number of contact solver iterations per step.
	Iterations int

	// SleepSpeed is the speed below which bodies become sleepy.
	SleepSpeed float32

	// SleepTime is how long a body must stay sleepy before it sleeps;
	// 0 disables sleeping.
	SleepTime float32

	// Time is the total simulated time.
	Time float32

	// DefaultMaterial is the shared material of new bodies.
	DefaultMaterial *Material

	bodies      map[int]*Body
	lastID      int
	contactMats map[materialPair]ContactMaterial
	accumulator float32
	contacts    []Contact
}

// NewWorld returns a new world with standard gravity and defaults.
func NewWorld() *World {
	w := &World{}
	w.Defaults()
	return w
}

// Defaults sets default world parameters.
func (w *World) Defaults() {
	w.Gravity = math32.Vec3(0, -9.8, 0)
	w.Iterations = 10
	w.SleepSpeed = 0.1
	w.SleepTime = 1
	w.DefaultMaterial = &Material{Name: DefaultMaterialName, Friction: 0.3, Shared: true}
	w.bodies = make(map[int]*Body)
}

// NewBody adds a new dynamic body with given name and shape, at the
// given position and rotation, with mass 1 and the default material.
// The shape is fixed for the life of the body.
func (w *World) NewBody(name string, shape Shape, pos math32.Vector3, quat math32.Quat) *Body {
	if w.bodies == nil {
		w.bodies = make(map[int]*Body)
	}
	w.lastID++
	bd := &Body{ID: w.lastID, Name: name, Shape: shape, Material: w.DefaultMaterial}
	bd.State.SetPose(pos, quat)
	bd.State.Defaults()
	bd.SetMass(1)
	bd.SetBBox()
	w.bodies[bd.ID] = bd
	return bd
}

// RemoveBody removes the given body from the world, along with any
// contact materials registered for its material if it is private.
func (w *World) RemoveBody(bd *Body) {
	if bd == nil {
		return
	}
	if _, ok := w.bodies[bd.ID]; !ok {
		return
	}
	delete(w.bodies, bd.ID)
	if bd.Material != nil && !bd.Material.Shared {
		w.RemoveContactMaterials(bd.Material.Name)
	}
	w.contacts = slices.DeleteFunc(w.contacts, func(c Contact) bool { return c.A == bd || c.B == bd })
}

// RemoveAll removes all bodies and resets the step accumulator.
func (w *World) RemoveAll() {
	clear(w.bodies)
	clear(w.contactMats)
	w.contacts = nil
	w.accumulator = 0
}

// Body returns the body with the given handle, or nil.
func (w *World) Body(id int) *Body {
	return w.bodies[id]
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns all bodies in the order they were made.
func (w *World) Bodies() []*Body {
	bs := make([]*Body, 0, len(w.bodies))
	for _, bd := range w.bodies {
		bs = append(bs, bd)
	}
	slices.SortFunc(bs, func(a, b *Body) int { return a.ID - b.ID })
	return bs
}

// Step advances the world by the given real elapsed time dt, in
// fixed sub-steps of the given size. Elapsed time accumulates across
// calls; at most maxSubSteps sub-steps are taken per call, and any
// backlog beyond one sub-step is dropped so that a slow host never
// falls further behind. It returns the number of sub-steps taken.
func (w *World) Step(fixed, dt float32, maxSubSteps int) int {
	if fixed <= 0 {
		return 0
	}
	if dt > 0 {
		w.accumulator += dt
	}
	n := 0
	for w.accumulator >= fixed && n < maxSubSteps {
		w.StepFixed(fixed)
		w.accumulator -= fixed
		n++
	}
	w.accumulator = math32.Mod(w.accumulator, fixed)
	if n == maxSubSteps && n > 0 {
		slog.Debug("physics: sub-step limit reached", "steps", n)
	}
	return n
}

// StepFixed does one physics step of the given size: contact
// detection, gravity, contact solving, and integration.
func (w *World) StepFixed(step float32) {
	bodies := w.Bodies()
	for _, bd := range bodies {
		bd.SetBBox()
	}
	w.contacts = w.Collide(bodies)
	for _, bd := range bodies {
		bd.StepVelocity(step, w.Gravity)
	}
	w.solveVelocities(w.contacts)
	for _, bd := range bodies {
		bd.StepPosition(step)
	}
	w.solvePositions(w.contacts)
	for _, bd := range bodies {
		bd.updateSleep(step, w.SleepSpeed, w.SleepTime)
	}
	w.Time += step
}

// Collide returns the contacts between all pairs of the given bodies
// where at least one is an awake dynamic body. Pairs are first filtered
// by bounding box overlap.
func (w *World) Collide(bodies []*Body) []Contact {
	var dyns, stats []*Body
	for _, bd := range bodies {
		if bd.IsDynamic() {
			dyns = append(dyns, bd)
		} else {
			stats = append(stats, bd)
		}
	}
	var cts []Contact
	for i, d := range dyns {
		for _, s := range stats {
			if c, ok := w.collidePair(d, s); ok {
				cts = append(cts, c)
			}
		}
		for di := 0; di < i; di++ {
			if c, ok := w.collidePair(dyns[di], d); ok {
				cts = append(cts, c)
			}
		}
	}
	return cts
}

func (w *World) collidePair(a, b *Body) (Contact, bool) {
	if !a.BBox.BBox.IntersectsBox(b.BBox.BBox) {
		return Contact{}, false
	}
	c, ok := BodyContact(a, b)
	if !ok {
		return c, false
	}
	w.wakeByContact(a, b)
	w.wakeByContact(b, a)
	return c, true
}

// wakeByContact wakes the sleeping body bd if the other body
// is awake and moving.
func (w *World) wakeByContact(bd, other *Body) {
	if !bd.Sleeping || !other.IsDynamic() || other.Sleeping {
		return
	}
	if other.State.LinVel.Length() > w.SleepSpeed {
		bd.WakeUp()
	}
}

// Contacts returns the contacts found in the most recent step.
func (w *World) Contacts() []Contact {
	return slices.Clone(w.contacts)
}

// ContactsOf returns the bodies in contact with the given body
// in the most recent step.
func (w *World) ContactsOf(bd *Body) []*Body {
	var bs []*Body
	for _, c := range w.contacts {
		switch bd {
		case c.A:
			bs = append(bs, c.B)
		case c.B:
			bs = append(bs, c.A)
		}
	}
	return bs
}

// BodyPoint contains a Body and a Point on that body
type BodyPoint struct {
	Body  *Body
	Point math32.Vector3
}

// RayBodyIntersections returns a list of bodies whose bounding box intersects
// with the given ray, with the point of intersection, sorted by distance.
func (w *World) RayBodyIntersections(ray math32.Ray) []*BodyPoint {
	var bs []*BodyPoint
	for _, bd := range w.Bodies() {
		bd.SetBBox()
		pt, has := ray.IntersectBox(bd.BBox.BBox)
		if !has {
			continue
		}
		bs = append(bs, &BodyPoint{bd, pt})
	}
	sort.SliceStable(bs, func(i, j int) bool {
		di := bs[i].Point.DistanceTo(ray.Origin)
		dj := bs[j].Point.DistanceTo(ray.Origin)
		return di < dj
	})
	return bs
}
