// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"log/slog"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/math32"
	"cogentcore.org/xyzsim/xyz/physics"
	"cogentcore.org/xyzsim/xyz/physics/world"
	"github.com/jinzhu/copier"
)

// BodyInfo is the physics body of an object with its settings,
// which are kept when the body is rebuilt.
type BodyInfo struct {

	// Body is the body in the physics world.
	Body *physics.Body

	// Fixed is whether the body never moves.
	Fixed bool

	// Friction is the coefficient of friction.
	Friction float32

	// Restitution is the bounciness: 0 = no bounce, 1 = fully elastic.
	Restitution float32

	// Mass is the mass used when the body is not fixed.
	Mass float32

	// OwnMaterial makes the body use its own material even with
	// the default properties, as needed for contact materials.
	OwnMaterial bool
}

// body returns the body info of the given object, or nil.
func (s *Sim) body(name string) *BodyInfo {
	bi, ok := s.bodies.ValueByKeyTry(name)
	if !ok {
		slog.Debug("sim: no physics body", "name", name)
		return nil
	}
	return bi
}

// removeBody removes the body of the given object, if any.
func (s *Sim) removeBody(name string) *BodyInfo {
	bi, ok := s.bodies.ValueByKeyTry(name)
	if !ok {
		return nil
	}
	s.World.RemoveBody(bi.Body)
	s.bodies.DeleteKey(name)
	return bi
}

// EnablePhysics gives the object a body in the physics world, with a
// shape derived from its kind and current world scale. The shape stays
// fixed until the body is rebuilt. Enabling physics again rebuilds the
// body, keeping its friction, bounciness, and mass. Lights and cameras
// cannot have physics.
func (s *Sim) EnablePhysics(name string, fixed bool) {
	ob := s.object(name)
	if ob == nil {
		return
	}
	if !ob.Kind.IsMesh() {
		slog.Debug("sim: physics is only for meshes", "name", name, "kind", ob.Kind)
		return
	}
	old := s.removeBody(name)
	bi := &BodyInfo{}
	if old != nil {
		errors.Log(copier.Copy(bi, old))
	} else {
		ps := &s.Settings.Physics
		bi.Friction, bi.Restitution, bi.Mass = ps.Friction, ps.Restitution, ps.Mass
	}
	bi.Fixed = fixed
	bi.Body = world.NewBody(s.World, s.Scene, s.Scene.Node(ob.Node))
	s.applyBody(bi)
	s.bodies.Add(name, bi)
	s.Render.Request()
}

// applyBody applies the settings of the body info to its body.
func (s *Sim) applyBody(bi *BodyInfo) {
	bd := bi.Body
	dm := s.World.DefaultMaterial
	if !bi.OwnMaterial && bi.Friction == dm.Friction && bi.Restitution == dm.Restitution {
		if bd.Material != dm {
			s.World.RemoveContactMaterials(bd.Material.Name)
			bd.Material = dm
		}
	} else {
		if bd.Material.Shared {
			mt := &physics.Material{}
			errors.Log(copier.Copy(mt, dm))
			mt.Name = bd.MaterialName()
			mt.Shared = false
			bd.Material = mt
		}
		bd.Material.Friction = bi.Friction
		bd.Material.Restitution = bi.Restitution
	}
	bd.SetMass(bi.Mass)
	bd.SetFixed(bi.Fixed)
}

// DisablePhysics removes the body of the object, leaving the object.
func (s *Sim) DisablePhysics(name string) {
	if s.removeBody(name) != nil {
		s.Render.Request()
	}
}

// RefreshPhysics rebuilds the body of the object from its current
// scale, keeping all of its settings.
func (s *Sim) RefreshPhysics(name string) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	s.EnablePhysics(name, bi.Fixed)
}

// HasPhysics returns whether the object has a body.
func (s *Sim) HasPhysics(name string) bool {
	return s.bodies.Has(name)
}

// Body returns the body info of the object, or nil if it has none.
func (s *Sim) Body(name string) *BodyInfo {
	bi, _ := s.bodies.ValueByKeyTry(name)
	return bi
}

// SetFixed sets whether the body of the object never moves.
func (s *Sim) SetFixed(name string, fixed bool) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Fixed = fixed
	s.applyBody(bi)
}

// SetFriction sets the friction of the body of the object.
func (s *Sim) SetFriction(name string, friction float32) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Friction = max(friction, 0)
	s.applyBody(bi)
}

// SetBounciness sets the restitution of the body of the object,
// clamped to [0, 1].
func (s *Sim) SetBounciness(name string, bounciness float32) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Restitution = math32.Clamp(bounciness, 0, 1)
	s.applyBody(bi)
}

// SetMass sets the mass of the body of the object.
func (s *Sim) SetMass(name string, mass float32) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Mass = max(mass, 0)
	s.applyBody(bi)
}

// ApplyImpulse applies the given impulse to the body of the object,
// waking it up.
func (s *Sim) ApplyImpulse(name string, x, y, z float32) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Body.ApplyImpulse(math32.Vec3(x, y, z))
}

// SetVelocity sets the linear velocity of the body of the object.
func (s *Sim) SetVelocity(name string, x, y, z float32) {
	bi := s.body(name)
	if bi == nil {
		return
	}
	bi.Body.SetVelocity(math32.Vec3(x, y, z))
}

// Velocity returns the linear velocity of the body of the object.
func (s *Sim) Velocity(name string) math32.Vector3 {
	bi := s.body(name)
	if bi == nil {
		return math32.Vector3{}
	}
	return bi.Body.State.LinVel
}

// Touching returns whether the bodies of the two objects were in
// contact in the last step.
func (s *Sim) Touching(a, b string) bool {
	ba := s.body(a)
	bb := s.body(b)
	if ba == nil || bb == nil {
		return false
	}
	for _, o := range s.World.ContactsOf(ba.Body) {
		if o == bb.Body {
			return true
		}
	}
	return false
}

// TouchingAny returns the names of the objects whose bodies were in
// contact with the body of the given object in the last step.
func (s *Sim) TouchingAny(name string) []string {
	bi := s.body(name)
	if bi == nil {
		return nil
	}
	var names []string
	for _, o := range s.World.ContactsOf(bi.Body) {
		names = append(names, o.Name)
	}
	return names
}

// SetContactMaterial sets the friction and bounciness used for contacts
// between the two objects, overriding their combined settings.
// Both objects must have bodies. Rebuilding either body drops it.
func (s *Sim) SetContactMaterial(a, b string, friction, bounciness float32) {
	ba := s.body(a)
	bb := s.body(b)
	if ba == nil || bb == nil {
		return
	}
	for _, bi := range []*BodyInfo{ba, bb} {
		if !bi.OwnMaterial {
			bi.OwnMaterial = true
			s.applyBody(bi)
		}
	}
	s.World.AddContactMaterial(ba.Body.Material.Name, bb.Body.Material.Name, physics.ContactMaterial{Friction: friction, Restitution: bounciness})
}

// SetGravity sets the gravity acceleration of the physics world.
func (s *Sim) SetGravity(x, y, z float32) {
	s.World.Gravity.Set(x, y, z)
	s.Settings.Physics.Gravity = s.World.Gravity
	for _, bi := range s.bodies.All() {
		bi.Body.WakeUp()
	}
}

// Gravity returns the gravity acceleration of the physics world.
func (s *Sim) Gravity() math32.Vector3 {
	return s.World.Gravity
}
