// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/xyzsim/math32"
)

// DefaultMaterialName is the name of the shared default material.
const DefaultMaterialName = "default"

// Material has the surface properties of a body used for contacts.
type Material struct {

	// Name is the name of the material.
	Name string

	// Friction is the coefficient of friction.
	Friction float32

	// Restitution is the bounciness: 0 = no bounce, 1 = fully elastic.
	Restitution float32

	// Shared is whether the material is shared by several bodies,
	// in which case it is never disposed with a body.
	Shared bool
}

// ContactMaterial has the combined properties used for contacts
// between bodies with a given pair of materials.
type ContactMaterial struct {
	Friction    float32
	Restitution float32
}

type materialPair struct {
	a, b string
}

func pairKey(a, b string) materialPair {
	if b < a {
		a, b = b, a
	}
	return materialPair{a, b}
}

// AddContactMaterial registers the contact properties for the given
// pair of material names, in either order.
func (w *World) AddContactMaterial(a, b string, cm ContactMaterial) {
	if w.contactMats == nil {
		w.contactMats = make(map[materialPair]ContactMaterial)
	}
	w.contactMats[pairKey(a, b)] = cm
}

// RemoveContactMaterials removes all registered contact properties
// involving the given material name.
func (w *World) RemoveContactMaterials(name string) {
	for k := range w.contactMats {
		if k.a == name || k.b == name {
			delete(w.contactMats, k)
		}
	}
}

// ContactMaterial returns the contact properties for the given pair of
// materials: the registered ones if present, otherwise the geometric
// mean of the frictions and the larger restitution.
func (w *World) ContactMaterial(a, b *Material) ContactMaterial {
	if cm, ok := w.contactMats[pairKey(a.Name, b.Name)]; ok {
		return cm
	}
	return ContactMaterial{
		Friction:    math32.Sqrt(a.Friction * b.Friction),
		Restitution: math32.Max(a.Restitution, b.Restitution),
	}
}

// NumContactMaterials returns the number of registered contact materials.
func (w *World) NumContactMaterials() int {
	return len(w.contactMats)
}
