// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/xyzsim/base/errors"
	"cogentcore.org/xyzsim/base/iox/jsonx"
	"cogentcore.org/xyzsim/math32"
)

// Entry is the saved state of one object in a scene file.
// Transforms are in world coordinates, with rotations as
// Euler angles in degrees.
type Entry struct {
	Name  string         `json:"name"`
	Type  string         `json:"type"`
	Pos   math32.Vector3 `json:"pos"`
	Rot   math32.Vector3 `json:"rot"`
	Scale math32.Vector3 `json:"scale"`

	// Color is the packed 0xRRGGBB color of meshes and lights.
	Color *int `json:"color,omitempty"`

	// Physics is the body of the object, if it has one.
	Physics *PhysicsEntry `json:"physics,omitempty"`

	// Parent is the name of the parent object, if any.
	Parent string `json:"parent,omitempty"`

	// Hidden is whether the object is not visible.
	Hidden bool `json:"hidden,omitempty"`

	// Texture is the image file of the texture of a mesh, if any.
	Texture string `json:"texture,omitempty"`
}

// PhysicsEntry is the saved state of the body of an object.
type PhysicsEntry struct {
	Enabled    bool     `json:"enabled"`
	Fixed      bool     `json:"fixed"`
	Friction   float32  `json:"friction"`
	Bounciness float32  `json:"bounciness"`
	Mass       *float32 `json:"mass,omitempty"`
}

// Dump returns the entries of all objects, in creation order.
func (s *Sim) Dump() []Entry {
	ents := make([]Entry, 0, s.objects.Len())
	for name, ob := range s.objects.All() {
		nd := s.Scene.Node(ob.Node)
		pos, quat, scale := s.Scene.WorldMatrix(nd.ID).Decompose()
		ent := Entry{Name: name, Type: ob.Kind.Type(), Pos: pos, Scale: scale, Hidden: !nd.Visible}
		ent.Rot = quat.ToEuler().MulScalar(math32.RadToDegFactor)
		if c, ok := s.Color(name); ok {
			ent.Color = &c
		}
		if pn := s.Scene.Node(nd.Parent); pn != nil {
			ent.Parent = pn.Name
		}
		if nd.Material != nil && nd.Material.Texture != nil {
			ent.Texture = nd.Material.Texture.File
		}
		if bi, ok := s.bodies.ValueByKeyTry(name); ok {
			mass := bi.Mass
			ent.Physics = &PhysicsEntry{Enabled: true, Fixed: bi.Fixed, Friction: bi.Friction, Bounciness: bi.Restitution, Mass: &mass}
		}
		ents = append(ents, ent)
	}
	return ents
}

// DumpJSON returns the entries of all objects as indented JSON.
func (s *Sim) DumpJSON() ([]byte, error) {
	return jsonx.WriteBytes(s.Dump())
}

// SaveFile saves the entries of all objects to the given JSON file.
func (s *Sim) SaveFile(filename string) error {
	return jsonx.Save(s.Dump(), filename)
}

// Load replaces all objects with those of the given entries. Entries
// of unknown type or without a name are skipped with a warning.
// A missing (zero) scale is taken as unit scale.
func (s *Sim) Load(ents []Entry) {
	s.DeleteAll()
	for _, ent := range ents {
		kind, err := KindFromString(ent.Type)
		if err != nil {
			slog.Warn("sim: skipping scene entry", "name", ent.Name, "err", err)
			continue
		}
		if ent.Name == "" {
			slog.Warn("sim: skipping scene entry without a name", "type", ent.Type)
			continue
		}
		s.Create(ent.Name, kind)
		nd := s.node(ent.Name)
		nd.Pose.Pos = ent.Pos
		nd.Pose.SetEulerRotation(ent.Rot.X, ent.Rot.Y, ent.Rot.Z)
		if !ent.Scale.IsNil() {
			nd.Pose.Scale = ent.Scale
		}
		nd.Visible = !ent.Hidden
		if ent.Color != nil {
			s.SetColor(ent.Name, *ent.Color)
		}
		if ent.Texture != "" {
			s.SetTexture(ent.Name, ent.Texture)
		}
		if ph := ent.Physics; ph != nil && ph.Enabled {
			s.EnablePhysics(ent.Name, ph.Fixed)
			s.SetFriction(ent.Name, ph.Friction)
			s.SetBounciness(ent.Name, ph.Bounciness)
			if ph.Mass != nil {
				s.SetMass(ent.Name, *ph.Mass)
			}
		}
	}
	for _, ent := range ents {
		if ent.Parent != "" && s.Has(ent.Name) {
			s.Attach(ent.Name, ent.Parent)
		}
	}
	s.Render.Request()
}

// LoadJSON replaces all objects with those of the given JSON entries.
// The existing objects are always deleted: if the JSON is malformed,
// the error is returned and the scene is left empty.
func (s *Sim) LoadJSON(data []byte) error {
	s.DeleteAll()
	var ents []Entry
	if err := jsonx.ReadBytes(&ents, data); err != nil {
		return errors.Log(fmt.Errorf("sim.LoadJSON: %w", err))
	}
	s.Load(ents)
	return nil
}

// OpenFile replaces all objects with those of the given JSON file.
// The scene is unchanged if the file cannot be read.
func (s *Sim) OpenFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("sim.OpenFile: %w", err)
	}
	return s.LoadJSON(data)
}
