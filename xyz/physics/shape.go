// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"

	"cogentcore.org/xyzsim/math32"
)

// Shape is the collision shape of a body, in body-local coordinates
// centered on the body position.
type Shape interface {
	fmt.Stringer

	// LocalBBox returns the bounding box of the shape
	// in body-local coordinates.
	LocalBBox() math32.Box3
}

// Box is a box shape with given half extents.
type Box struct {

	// Half is the half size of the box in each dimension.
	Half math32.Vector3
}

func (bx *Box) LocalBBox() math32.Box3 {
	return math32.B3Half(bx.Half)
}

func (bx *Box) String() string {
	return fmt.Sprintf("Box(half=%v)", bx.Half)
}

// Sphere is a sphere shape.
type Sphere struct {

	// Radius is the radius of the sphere.
	Radius float32
}

func (sp *Sphere) LocalBBox() math32.Box3 {
	return math32.B3Half(math32.Vector3Scalar(sp.Radius))
}

func (sp *Sphere) String() string {
	return fmt.Sprintf("Sphere(r=%g)", sp.Radius)
}

// Cylinder is a generalized cylinder shape along the Y axis,
// with separate radii for top and bottom: a small top radius
// makes a cone.
type Cylinder struct {

	// Height is the height of the cylinder.
	Height float32

	// TopRad is the radius of the top.
	TopRad float32

	// BotRad is the radius of the bottom.
	BotRad float32
}

func (cy *Cylinder) LocalBBox() math32.Box3 {
	r := math32.Max(cy.TopRad, cy.BotRad)
	h2 := cy.Height / 2
	return math32.B3(-r, -h2, -r, r, h2, r)
}

func (cy *Cylinder) String() string {
	return fmt.Sprintf("Cylinder(h=%g top=%g bot=%g)", cy.Height, cy.TopRad, cy.BotRad)
}

// CompoundChild is one shape within a [Compound], at an offset
// from the body position.
type CompoundChild struct {
	Offset math32.Vector3
	Shape  Shape
}

// Compound is a shape made of several child shapes.
type Compound struct {
	Children []CompoundChild
}

// Add adds the given child shape at the given offset.
func (cp *Compound) Add(offset math32.Vector3, sh Shape) {
	cp.Children = append(cp.Children, CompoundChild{Offset: offset, Shape: sh})
}

func (cp *Compound) LocalBBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, c := range cp.Children {
		bb.ExpandByBox(c.Shape.LocalBBox().Translate(c.Offset))
	}
	return bb
}

func (cp *Compound) String() string {
	return fmt.Sprintf("Compound(%d)", len(cp.Children))
}

// NewRing returns a compound of n spheres of the given radius placed
// evenly around a ring of the given radius in the XY plane.
func NewRing(ringRadius, sphereRadius float32, n int) *Compound {
	cp := &Compound{}
	for i := 0; i < n; i++ {
		a := 2 * math32.Pi * float32(i) / float32(n)
		cp.Add(math32.Vec3(ringRadius*math32.Cos(a), ringRadius*math32.Sin(a), 0), &Sphere{Radius: sphereRadius})
	}
	return cp
}
