// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/xyzsim/math32"
)

// Shapes are the unit geometry shapes available for solids.
type Shapes int32

const (
	// Box is a unit cube, centered at the origin.
	Box Shapes = iota

	// Sphere is a sphere of radius 0.5.
	Sphere

	// Cone is a cone of base radius 0.5 and height 1 along Y,
	// with its apex at the top.
	Cone

	// Cylinder is a cylinder of radius 0.5 and height 1 along Y.
	Cylinder

	// Torus is a torus in the XY plane with ring radius 0.5
	// and tube radius 0.2.
	Torus

	ShapesN
)

var shapeNames = [...]string{"Box", "Sphere", "Cone", "Cylinder", "Torus"}

func (s Shapes) String() string {
	if s < 0 || s >= ShapesN {
		return fmt.Sprintf("Shapes(%d)", int32(s))
	}
	return shapeNames[s]
}

// Standard unit dimensions of the shapes.
const (
	UnitRadius    float32 = 0.5
	TorusRadius   float32 = 0.5
	TorusTube     float32 = 0.2
	ConeTopRadius float32 = 0.01
)

// Segment counts of the curved shapes.
const (
	TorusSegments  = 16
	SphereSegments = 32
)

// Mesh is the shape information used for rendering and ray
// intersection of a solid. Meshes are shared across all solids of
// the same shape and are owned by the [Scene].
type Mesh struct {

	// Name is the name of the mesh, used as its key on the Scene.
	Name string

	// Shape is the unit geometry of the mesh.
	Shape Shapes

	// BBox is the local bounding box of the unit geometry.
	BBox math32.Box3

	// Shared is true for meshes shared across solids,
	// which are never disposed when a solid is deleted.
	Shared bool
}

// NewMesh returns a new mesh for the given shape, with its bounding box set.
func NewMesh(name string, shape Shapes) *Mesh {
	ms := &Mesh{Name: name, Shape: shape}
	ms.BBox = ShapeBBox(shape)
	return ms
}

// ShapeBBox returns the local bounding box of the given unit shape.
func ShapeBBox(shape Shapes) math32.Box3 {
	switch shape {
	case Torus:
		r := TorusRadius + TorusTube
		return math32.B3(-r, -r, -TorusTube, r, r, TorusTube)
	default:
		return math32.B3Half(math32.Vector3Scalar(UnitRadius))
	}
}
