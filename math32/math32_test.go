// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
	assert.InDelta(t, vt.Z, va.Z, float64(tol))
}

func TestQuatEulerRoundTrip(t *testing.T) {
	angles := []Vector3{
		Vec3(0, 0, 0),
		Vec3(30, 0, 0),
		Vec3(0, 45, 0),
		Vec3(0, 0, -60),
		Vec3(10, 20, 30),
		Vec3(-120, 35, 170),
	}
	for _, a := range angles {
		q := NewQuatEuler(a.MulScalar(DegToRadFactor))
		back := q.ToEuler().MulScalar(RadToDegFactor)
		TolAssertEqualVector(t, 1e-3, a, back)
	}
}

func TestMulQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	// rotating -Z by 90 degrees about +Y points to -X
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 0), Vec3(0, 0, -1).MulQuat(q))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), Vec3(0, 0, -1).MulQuat(NewQuatIdentity()))
}

func TestTransformDecompose(t *testing.T) {
	pos := Vec3(1, 2, 3)
	q := NewQuatEuler(Vec3(0.3, -0.2, 1.1))
	sc := Vec3(2, 0.5, 1.5)
	m := NewTransform(pos, q, sc)
	dp, dq, ds := m.Decompose()
	TolAssertEqualVector(t, StandardTol, pos, dp)
	TolAssertEqualVector(t, 1e-4, sc, ds)
	assert.True(t, q.IsEqualTol(dq, 1e-4))

	inv := m.Inverse()
	id := m.Mul(inv)
	for i, v := range Identity4() {
		assert.InDelta(t, v, id[i], 1e-4)
	}
	pt := Vec3(-4, 5, 0.25)
	TolAssertEqualVector(t, 1e-4, pt, pt.MulMatrix4(m).MulMatrix4(inv))
}

func TestLookAt(t *testing.T) {
	var q Quat
	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 0), Vec3(0, 0, -5), Vec3(0, 1, 0)))
	// +Z points from target toward eye
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, 1), Vec3(0, 0, 1).MulQuat(q))

	q.SetFromRotationMatrix(NewLookAt(Vec3(0, 0, 0), Vec3(3, 0, 0), Vec3(0, 1, 0)))
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 0), Vec3(0, 0, 1).MulQuat(q))
}

func TestRay(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 0), Vec3(0, 0, -1))
	tb, ok := ray.IntersectBoxT(B3(-0.5, -0.5, -5.5, 0.5, 0.5, -4.5))
	assert.True(t, ok)
	assert.InDelta(t, 4.5, tb, 1e-5)

	_, ok = ray.IntersectBoxT(B3(-0.5, -0.5, 4.5, 0.5, 0.5, 5.5))
	assert.False(t, ok)

	ts, ok := ray.IntersectSphereT(Vec3(0, 0, -5), 0.5)
	assert.True(t, ok)
	assert.InDelta(t, 4.5, ts, 1e-5)

	_, ok = ray.IntersectSphereT(Vec3(0, 2, -5), 0.5)
	assert.False(t, ok)
}

func TestBox3(t *testing.T) {
	b := B3Half(Vec3(1, 2, 3))
	assert.Equal(t, Vec3(2, 4, 6), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0.5, -1, 2)))
	assert.True(t, b.IntersectsBox(B3(0.5, 0, 0, 4, 4, 4)))
	assert.False(t, b.IntersectsBox(B3(1.5, 0, 0, 4, 4, 4)))
	rb := b.XForm(NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90)), Vec3(10, 0, 0))
	TolAssertEqualVector(t, 1e-4, Vec3(8, -1, -3), rb.Min)
	TolAssertEqualVector(t, 1e-4, Vec3(12, 1, 3), rb.Max)
	e := B3Empty()
	assert.True(t, e.IsEmpty())
}
