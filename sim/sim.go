// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim keeps named 3D objects consistent between an [xyz.Scene]
// scene graph and a [physics.World] rigid-body world, for a host that
// drives stepping and rendering from its own loop.
//
// Every object has a unique name, a node in the scene, and optionally
// a body in the physics world. Direct transform edits are pushed to the
// body immediately, while body motion is copied back to the object only
// by [Sim.Step]. Every mutation requests a render from the
// [RenderScheduler], which coalesces requests into one frame.
package sim

import (
	"log/slog"
	"sync"

	"cogentcore.org/xyzsim/base/ordmap"
	"cogentcore.org/xyzsim/colors"
	"cogentcore.org/xyzsim/settings"
	"cogentcore.org/xyzsim/xyz"
	"cogentcore.org/xyzsim/xyz/physics"
)

// Object is one named object in a simulation.
type Object struct {

	// Name is the unique name of the object.
	Name string

	// Kind is the kind of object.
	Kind Kinds

	// Node is the handle of the object's node in the scene.
	Node xyz.NodeID
}

// Sim is a simulation of named objects in a scene and a physics world.
// It is not safe for concurrent use: all methods must be called on the
// host goroutine, except where noted.
type Sim struct {

	// Settings are the render and physics settings in use.
	Settings *settings.Settings

	// Scene is the scene graph the objects are shown in.
	Scene *xyz.Scene

	// World is the physics world the bodies live in.
	World *physics.World

	// Clock is the wall clock of physics stepping.
	Clock StepClock

	// Render is the render scheduler.
	Render RenderScheduler

	// objects are the objects, in creation order.
	objects ordmap.Map[string, *Object]

	// bodies are the physics bodies, by object name.
	bodies ordmap.Map[string, *BodyInfo]

	// textures are the asynchronous texture loads.
	textures textureLoads

	// loadWait tracks texture loads that have not finished.
	loadWait sync.WaitGroup
}

// New returns a new simulation using the given settings,
// or the defaults if they are nil.
func New(st *settings.Settings) *Sim {
	if st == nil {
		st = settings.New()
	}
	s := &Sim{}
	s.Scene = xyz.NewScene("sim")
	s.World = physics.NewWorld()
	s.Clock.Reset()
	s.Render.Render = s.Scene.Render
	s.ApplySettings(st)
	return s
}

// ApplySettings applies the given settings to the scene and world.
// Existing bodies keep their material properties.
func (s *Sim) ApplySettings(st *settings.Settings) {
	s.Settings = st
	rs := &st.Render
	sc := s.Scene
	sc.Near, sc.Far, sc.FOV = rs.Near, rs.Far, rs.FOV
	sc.Width, sc.Height = rs.Width, rs.Height
	sc.Background = rs.BackgroundColor()
	s.World.Gravity = st.Physics.Gravity
	s.World.DefaultMaterial.Friction = st.Physics.Friction
	s.World.DefaultMaterial.Restitution = st.Physics.Restitution
	s.Render.Request()
}

// object returns the object of the given name, or nil if there is none.
func (s *Sim) object(name string) *Object {
	ob, ok := s.objects.ValueByKeyTry(name)
	if !ok {
		slog.Debug("sim: no object", "name", name)
		return nil
	}
	return ob
}

// node returns the scene node of the given object, or nil.
func (s *Sim) node(name string) *xyz.Node {
	ob := s.object(name)
	if ob == nil {
		return nil
	}
	return s.Scene.Node(ob.Node)
}

// Create creates a new object of the given kind and name at the origin,
// with no rotation, unit scale, and no physics. Any existing object of
// the same name is deleted first, including its body.
func (s *Sim) Create(name string, kind Kinds) {
	if kind < 0 || kind >= KindsN {
		slog.Warn("sim: invalid object kind", "name", name, "kind", kind)
		return
	}
	if s.objects.Has(name) {
		s.Delete(name)
	}
	var nd *xyz.Node
	switch {
	case kind.IsMesh():
		nd = s.Scene.NewSolid(name, kind.Shape())
	case kind == Light:
		nd = s.Scene.NewLight(name, 1, xyz.DirectSun)
	default:
		nd = s.Scene.NewCamera(name)
	}
	s.objects.Add(name, &Object{Name: name, Kind: kind, Node: nd.ID})
	s.Render.Request()
}

// Delete deletes the object of the given name, with its body if any.
// Shared meshes and materials are kept; a private material is disposed.
// Children of the object are moved to the scene root, keeping their
// world transforms.
func (s *Sim) Delete(name string) {
	ob := s.object(name)
	if ob == nil {
		return
	}
	s.removeBody(name)
	s.Scene.DeleteNode(ob.Node)
	s.objects.DeleteKey(name)
	s.Render.Request()
}

// DeleteAll deletes all objects and bodies, clears the active camera,
// and resets the step clock so that the next step only warms up.
func (s *Sim) DeleteAll() {
	s.World.RemoveAll()
	s.bodies.Reset()
	s.Scene.DeleteAll()
	s.objects.Reset()
	s.Clock.Reset()
	s.Render.Request()
}

// Has returns whether there is an object of the given name.
func (s *Sim) Has(name string) bool {
	return s.objects.Has(name)
}

// Names returns the names of all objects, in creation order.
func (s *Sim) Names() []string {
	return s.objects.Keys()
}

// Len returns the number of objects.
func (s *Sim) Len() int {
	return s.objects.Len()
}

// Kind returns the kind of the given object.
func (s *Sim) Kind(name string) (Kinds, bool) {
	ob := s.object(name)
	if ob == nil {
		return KindsN, false
	}
	return ob.Kind, true
}

// Object returns the object of the given name, or nil.
func (s *Sim) Object(name string) *Object {
	ob, _ := s.objects.ValueByKeyTry(name)
	return ob
}

//////// Appearance

// SetColor sets the color of the object from a packed 0xRRGGBB value.
// A mesh gets its own private material the first time.
func (s *Sim) SetColor(name string, packed int) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	switch nd.Type {
	case xyz.SolidNode:
		s.Scene.PrivateMaterial(nd.ID).Color = colors.FromPacked(packed)
	case xyz.LightNode:
		nd.Light.Color = colors.FromPacked(packed)
	default:
		return
	}
	s.Render.Request()
}

// Color returns the packed 0xRRGGBB color of the object,
// and false if it has no color.
func (s *Sim) Color(name string) (int, bool) {
	nd := s.node(name)
	if nd == nil {
		return 0, false
	}
	switch nd.Type {
	case xyz.SolidNode:
		return colors.AsPacked(nd.Material.Color), true
	case xyz.LightNode:
		return colors.AsPacked(nd.Light.Color), true
	}
	return 0, false
}

// SetVisible sets whether the object is rendered and hit by rays.
func (s *Sim) SetVisible(name string, visible bool) {
	nd := s.node(name)
	if nd == nil {
		return
	}
	nd.Visible = visible
	s.Render.Request()
}

// Visible returns whether the object is visible.
func (s *Sim) Visible(name string) bool {
	nd := s.node(name)
	return nd != nil && nd.Visible
}

// SetLight sets the brightness of a light object, turning it off at 0.
func (s *Sim) SetLight(name string, lumens float32) {
	nd := s.node(name)
	if nd == nil || nd.Type != xyz.LightNode {
		return
	}
	nd.Light.Set(lumens, nd.Light.Color)
	s.Render.Request()
}

// SetAmbient sets the ambient light of the scene.
func (s *Sim) SetAmbient(lumens float32, packed int) {
	s.Scene.SetAmbient(lumens, colors.FromPacked(packed))
	s.Render.Request()
}

// SetActiveCamera renders from the given camera object,
// or from the default camera for "".
func (s *Sim) SetActiveCamera(name string) {
	if name == "" {
		s.Scene.SetCamera(xyz.NoNode)
		s.Render.Request()
		return
	}
	ob := s.object(name)
	if ob == nil || ob.Kind != Camera {
		return
	}
	s.Scene.SetCamera(ob.Node)
	s.Render.Request()
}

// ActiveCamera returns the name of the active camera,
// or "" for the default camera.
func (s *Sim) ActiveCamera() string {
	nd := s.Scene.Node(s.Scene.Camera)
	if nd == nil {
		return ""
	}
	return nd.Name
}
