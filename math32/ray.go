// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// MulMatrix4 returns this ray transformed by the given matrix: the origin
// as a point and the direction as a vector (not renormalized, so that t
// parameters are preserved across the transform).
func (ray *Ray) MulMatrix4(m *Matrix4) *Ray {
	return &Ray{Origin: ray.Origin.MulMatrix4(m), Dir: ray.Dir.MulMatrix4AsVector4(m, 0)}
}

// IntersectBox returns the first intersection point of this ray with the
// specified box, and whether there is one. The origin inside the box
// counts as an intersection at the origin.
func (ray *Ray) IntersectBox(box Box3) (Vector3, bool) {
	t, ok := ray.IntersectBoxT(box)
	if !ok {
		return Vector3{}, false
	}
	return ray.At(t), true
}

// IntersectBoxT returns the ray parameter t of the first intersection
// with the box, using the slab method.
func (ray *Ray) IntersectBoxT(box Box3) (float32, bool) {
	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / ray.Dir.X
	invdiry := 1 / ray.Dir.Y
	invdirz := 1 / ray.Dir.Z

	origin := ray.Origin

	if invdirx >= 0 {
		tmin = (box.Min.X - origin.X) * invdirx
		tmax = (box.Max.X - origin.X) * invdirx
	} else {
		tmin = (box.Max.X - origin.X) * invdirx
		tmax = (box.Min.X - origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - origin.Y) * invdiry
		tymax = (box.Max.Y - origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - origin.Y) * invdiry
		tymax = (box.Min.Y - origin.Y) * invdiry
	}

	if (tmin > tymax) || (tymin > tmax) {
		return 0, false
	}

	// These lines also handle the case where tmin or tmax is NaN
	// (result of 0 * Infinity). x !== x returns true if x is NaN
	if tymin > tmin || IsNaN(tmin) {
		tmin = tymin
	}
	if tymax < tmax || IsNaN(tmax) {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - origin.Z) * invdirz
		tzmax = (box.Max.Z - origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - origin.Z) * invdirz
		tzmax = (box.Min.Z - origin.Z) * invdirz
	}

	if (tmin > tzmax) || (tzmin > tmax) {
		return 0, false
	}

	if tzmin > tmin || IsNaN(tmin) {
		tmin = tzmin
	}
	if tzmax < tmax || IsNaN(tmax) {
		tmax = tzmax
	}

	// return point closest to the ray (positive side)
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return 0, true
}

// IntersectSphereT returns the ray parameter t of the first intersection
// with the sphere of given center and radius.
func (ray *Ray) IntersectSphereT(center Vector3, radius float32) (float32, bool) {
	oc := center.Sub(ray.Origin)
	dd := ray.Dir.LengthSquared()
	if dd == 0 {
		return 0, false
	}
	tca := oc.Dot(ray.Dir) / dd
	d2 := oc.LengthSquared() - tca*tca*dd
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := Sqrt((r2 - d2) / dd)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return 0, true
	}
	return t0, true
}
