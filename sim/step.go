// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"time"

	"cogentcore.org/xyzsim/xyz"
	"cogentcore.org/xyzsim/xyz/physics/world"
)

// StepStates are the states of a [StepClock].
type StepStates int32

const (
	// Uninitialized is the state before any scene exists.
	Uninitialized StepStates = iota

	// Warming is the state after a scene is made or cleared:
	// the next step only records the time.
	Warming

	// Running is the state in which steps advance the world
	// by the time since the previous step.
	Running
)

func (st StepStates) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Warming:
		return "Warming"
	case Running:
		return "Running"
	}
	return fmt.Sprintf("StepStates(%d)", int32(st))
}

// StepClock measures the wall time between physics steps.
type StepClock struct {

	// Now returns the current time; nil uses [time.Now].
	Now func() time.Time

	// State is the current state.
	State StepStates

	// last is the time of the previous step.
	last time.Time
}

// Reset puts the clock in the Warming state.
func (sc *StepClock) Reset() {
	sc.State = Warming
	sc.last = time.Time{}
}

func (sc *StepClock) now() time.Time {
	if sc.Now != nil {
		return sc.Now()
	}
	return time.Now()
}

// Tick records the current time and returns the seconds elapsed
// since the previous tick. It returns false, without any elapsed
// time, on the first tick after a reset.
func (sc *StepClock) Tick() (float32, bool) {
	now := sc.now()
	if sc.State != Running {
		sc.State = Running
		sc.last = now
		return 0, false
	}
	dt := now.Sub(sc.last)
	sc.last = now
	return float32(max(dt, 0).Seconds()), true
}

// Step advances the physics world by the wall time since the previous
// step, in fixed ticks of at most the configured number of sub-steps,
// and then copies the pose of every body to its object.
// The first step after the scene is made or cleared only starts the
// clock. It returns the number of fixed sub-steps taken.
func (s *Sim) Step() int {
	dt, ok := s.Clock.Tick()
	if !ok {
		return 0
	}
	ps := &s.Settings.Physics
	n := s.World.Step(ps.FixedTick, dt, ps.MaxSubSteps)
	if s.bodies.Len() > 0 {
		s.walk(s.Scene.Roots(), func(nd *xyz.Node) {
			if bi, ok := s.bodies.ValueByKeyTry(nd.Name); ok {
				world.UpdatePose(s.Scene, nd, bi.Body)
			}
		})
	}
	s.Render.Request()
	return n
}

// walk calls fun on the given nodes and their descendants,
// parents before children.
func (s *Sim) walk(ids []xyz.NodeID, fun func(nd *xyz.Node)) {
	for _, id := range ids {
		nd := s.Scene.Node(id)
		if nd == nil {
			continue
		}
		fun(nd)
		s.walk(nd.Children, fun)
	}
}
