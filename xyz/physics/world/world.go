// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world connects physics bodies with the xyz scene solids
// that show them: it derives body shapes from solids and copies poses
// between the two in world coordinates.
package world

import (
	"cogentcore.org/xyzsim/math32"
	"cogentcore.org/xyzsim/xyz"
	"cogentcore.org/xyzsim/xyz/physics"
)

// ShapeFor returns the physics shape matching a solid of the given
// unit shape at the given scale:
//   - Box: half extents of half the scale.
//   - Sphere: radius of half the largest scale component.
//   - Cylinder: radius of half the larger of the X and Z scales,
//     and height of the Y scale.
//   - Cone: as Cylinder, with a nearly zero top radius.
//   - Torus: a ring of spheres scaled by the X scale.
func ShapeFor(shape xyz.Shapes, scale math32.Vector3) physics.Shape {
	scale = scale.Abs()
	switch shape {
	case xyz.Sphere:
		return &physics.Sphere{Radius: xyz.UnitRadius * scale.MaxComponent()}
	case xyz.Cylinder, xyz.Cone:
		r := xyz.UnitRadius * math32.Max(scale.X, scale.Z)
		cy := &physics.Cylinder{Height: scale.Y, TopRad: r, BotRad: r}
		if shape == xyz.Cone {
			cy.TopRad = xyz.ConeTopRadius
		}
		return cy
	case xyz.Torus:
		return physics.NewRing(xyz.TorusRadius*scale.X, xyz.TorusTube*scale.X, xyz.TorusSegments)
	}
	return &physics.Box{Half: scale.MulScalar(0.5)}
}

// NewBody adds a new body to the world for the given solid, with a
// shape derived from its current world scale, at its world pose.
// It returns nil if the node is not a solid.
func NewBody(w *physics.World, sc *xyz.Scene, nd *xyz.Node) *physics.Body {
	if nd == nil || !nd.IsSolid() || nd.Mesh == nil {
		return nil
	}
	pos, quat, scale := sc.WorldMatrix(nd.ID).Decompose()
	return w.NewBody(nd.Name, ShapeFor(nd.Mesh.Shape, scale), pos, quat)
}

// UpdateBody sets the body pose to the world pose of the node,
// stopping its motion and waking it up.
func UpdateBody(sc *xyz.Scene, nd *xyz.Node, bd *physics.Body) {
	if nd == nil || bd == nil {
		return
	}
	pos, quat, _ := sc.WorldMatrix(nd.ID).Decompose()
	bd.State.SetPose(pos, quat)
	bd.SetBBox()
	bd.WakeUp()
}

// UpdatePose sets the node pose from the body pose, converting
// from world coordinates into those of the node's parent.
func UpdatePose(sc *xyz.Scene, nd *xyz.Node, bd *physics.Body) {
	if nd == nil || bd == nil {
		return
	}
	sc.SetWorldPose(nd.ID, bd.State.Pos, bd.State.Quat)
}
