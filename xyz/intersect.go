// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/xyzsim/math32"
)

// Hit is one intersection of a ray with a solid.
type Hit struct {

	// Node is the solid hit.
	Node *Node

	// Dist is the distance along the ray to the hit point.
	Dist float32

	// Point is the world position of the hit.
	Point math32.Vector3
}

// RayIntersect returns all visible solids intersected by the given
// world ray, other than the excluded node, sorted by increasing distance.
// Only hits with distances in [near, far] are returned.
// Boxes and spheres are tested against their exact shape, and other
// shapes against their local bounding box.
func (sc *Scene) RayIntersect(ray math32.Ray, exclude NodeID, near, far float32) []Hit {
	ray.Dir = ray.Dir.Normal()
	var hits []Hit
	for _, nd := range sc.Nodes() {
		if nd.ID == exclude || !nd.IsSolid() || !nd.Visible || nd.Mesh == nil {
			continue
		}
		var inv math32.Matrix4
		if inv.SetInverse(sc.WorldMatrix(nd.ID)) != nil {
			continue // zero scale
		}
		lray := ray.MulMatrix4(&inv)
		t, ok := intersectShape(lray, nd.Mesh)
		if !ok || t < near || t > far {
			continue
		}
		hits = append(hits, Hit{Node: nd, Dist: t, Point: ray.At(t)})
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Dist < b.Dist:
			return -1
		case a.Dist > b.Dist:
			return 1
		}
		return 0
	})
	return hits
}

// intersectShape returns the ray parameter of the first hit of the
// given local-space ray with the mesh shape.
func intersectShape(lray *math32.Ray, ms *Mesh) (float32, bool) {
	switch ms.Shape {
	case Sphere:
		return lray.IntersectSphereT(math32.Vector3{}, UnitRadius)
	default:
		return lray.IntersectBoxT(ms.BBox)
	}
}
