// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/xyzsim/math32"
)

// Contact is one contact between two bodies.
type Contact struct {

	// A and B are the bodies in contact.
	A, B *Body

	// Normal is the contact normal, pointing from A toward B.
	Normal math32.Vector3

	// Point is the world contact point.
	Point math32.Vector3

	// Depth is the penetration depth.
	Depth float32

	// accumulated normal impulse
	jn float32

	// target normal velocity from restitution
	bias float32
}

const (
	// ContactSlop is the penetration allowed before position correction.
	ContactSlop = 0.001

	// ContactCorrection is the fraction of penetration corrected per step.
	ContactCorrection = 0.8

	// BounceThreshold is the closing speed below which there is no bounce.
	BounceThreshold = 0.2
)

// piece is a primitive collision part of a body in world coordinates:
// either a sphere or an axis-aligned box.
type piece struct {
	sphere bool
	center math32.Vector3
	radius float32
	box    math32.Box3
}

// appendPieces adds the world pieces of the given shape at the given pose.
func appendPieces(ps []piece, sh Shape, pos math32.Vector3, quat math32.Quat) []piece {
	switch s := sh.(type) {
	case *Sphere:
		return append(ps, piece{sphere: true, center: pos, radius: s.Radius})
	case *Compound:
		for _, c := range s.Children {
			ps = appendPieces(ps, c.Shape, pos.Add(c.Offset.MulQuat(quat)), quat)
		}
		return ps
	default:
		bb := sh.LocalBBox().XForm(quat, pos)
		return append(ps, piece{center: bb.Center(), box: bb})
	}
}

// BodyContact returns the deepest contact between two bodies, if any.
func BodyContact(a, b *Body) (Contact, bool) {
	pa := appendPieces(nil, a.Shape, a.State.Pos, a.State.Quat)
	pb := appendPieces(nil, b.Shape, b.State.Pos, b.State.Quat)
	best := Contact{A: a, B: b}
	found := false
	for _, ia := range pa {
		for _, ib := range pb {
			n, pt, depth, ok := pieceContact(ia, ib)
			if !ok || (found && depth <= best.Depth) {
				continue
			}
			best.Normal, best.Point, best.Depth = n, pt, depth
			found = true
		}
	}
	return best, found
}

// pieceContact returns the contact normal from a to b, the contact
// point, and the penetration depth of two pieces.
func pieceContact(a, b piece) (math32.Vector3, math32.Vector3, float32, bool) {
	switch {
	case a.sphere && b.sphere:
		d := b.center.Sub(a.center)
		dist := d.Length()
		depth := a.radius + b.radius - dist
		if depth <= 0 {
			return math32.Vector3{}, math32.Vector3{}, 0, false
		}
		n := math32.Vec3(0, 1, 0)
		if dist > 0 {
			n = d.DivScalar(dist)
		}
		return n, a.center.Add(n.MulScalar(a.radius)), depth, true
	case a.sphere:
		return sphereBox(a, b)
	case b.sphere:
		n, pt, depth, ok := sphereBox(b, a)
		return n.Negate(), pt, depth, ok
	}
	return boxBox(a.box, b.box)
}

// sphereBox returns the contact from sphere s toward box b.
func sphereBox(s, b piece) (math32.Vector3, math32.Vector3, float32, bool) {
	q := s.center
	q.SetMax(b.box.Min)
	q.SetMin(b.box.Max)
	d := q.Sub(s.center)
	dist := d.Length()
	if dist > s.radius {
		return math32.Vector3{}, math32.Vector3{}, 0, false
	}
	if dist > 0 {
		return d.DivScalar(dist), q, s.radius - dist, true
	}
	// center inside the box
	sb := math32.B3Half(math32.Vector3Scalar(s.radius)).Translate(s.center)
	return boxBox(sb, b.box)
}

// boxBox returns the contact from box a toward box b, along the
// axis of least overlap.
func boxBox(a, b math32.Box3) (math32.Vector3, math32.Vector3, float32, bool) {
	ov := a.Intersect(b)
	sz := ov.Size()
	if sz.X <= 0 || sz.Y <= 0 || sz.Z <= 0 {
		return math32.Vector3{}, math32.Vector3{}, 0, false
	}
	dc := b.Center().Sub(a.Center())
	sign := func(v float32) float32 {
		if v < 0 {
			return -1
		}
		return 1
	}
	var n math32.Vector3
	depth := sz.X
	n.X = sign(dc.X)
	if sz.Y < depth {
		depth = sz.Y
		n = math32.Vec3(0, sign(dc.Y), 0)
	}
	if sz.Z < depth {
		depth = sz.Z
		n = math32.Vec3(0, 0, sign(dc.Z))
	}
	return n, ov.Center(), depth, true
}

// solverInvMass is the inverse mass used by the contact solver,
// which treats sleeping bodies as static.
func (bd *Body) solverInvMass() float32 {
	if !bd.IsDynamic() || bd.Sleeping {
		return 0
	}
	return bd.Rigid.InvMass
}

// solveVelocities applies contact impulses to the body velocities,
// using sequential impulses with restitution and friction.
func (w *World) solveVelocities(cts []Contact) {
	for i := range cts {
		c := &cts[i]
		cm := w.ContactMaterial(c.A.Material, c.B.Material)
		vn := c.B.State.LinVel.Sub(c.A.State.LinVel).Dot(c.Normal)
		c.bias = 0
		if vn < -BounceThreshold {
			c.bias = -cm.Restitution * vn
		}
		c.jn = 0
	}
	for it := 0; it < max(w.Iterations, 1); it++ {
		for i := range cts {
			c := &cts[i]
			ia, ib := c.A.solverInvMass(), c.B.solverInvMass()
			inv := ia + ib
			if inv == 0 {
				continue
			}
			vn := c.B.State.LinVel.Sub(c.A.State.LinVel).Dot(c.Normal)
			nj := max(c.jn+(c.bias-vn)/inv, 0)
			dj := nj - c.jn
			c.jn = nj
			c.A.State.LinVel.SetSub(c.Normal.MulScalar(dj * ia))
			c.B.State.LinVel.SetAdd(c.Normal.MulScalar(dj * ib))
		}
	}
	for i := range cts {
		c := &cts[i]
		ia, ib := c.A.solverInvMass(), c.B.solverInvMass()
		inv := ia + ib
		if inv == 0 || c.jn == 0 {
			continue
		}
		cm := w.ContactMaterial(c.A.Material, c.B.Material)
		vr := c.B.State.LinVel.Sub(c.A.State.LinVel)
		vt := vr.Sub(c.Normal.MulScalar(vr.Dot(c.Normal)))
		st := vt.Length()
		if st < 1e-6 {
			continue
		}
		jt := math32.Min(st/inv, cm.Friction*c.jn)
		t := vt.DivScalar(st)
		c.A.State.LinVel.SetAdd(t.MulScalar(jt * ia))
		c.B.State.LinVel.SetSub(t.MulScalar(jt * ib))
	}
}

// solvePositions pushes penetrating bodies apart.
func (w *World) solvePositions(cts []Contact) {
	for i := range cts {
		c := &cts[i]
		ia, ib := c.A.solverInvMass(), c.B.solverInvMass()
		inv := ia + ib
		if inv == 0 {
			continue
		}
		corr := max(c.Depth-ContactSlop, 0) * ContactCorrection / inv
		if corr == 0 {
			continue
		}
		c.A.State.Pos.SetSub(c.Normal.MulScalar(corr * ia))
		c.B.State.Pos.SetAdd(c.Normal.MulScalar(corr * ib))
		c.A.SetBBox()
		c.B.SetBBox()
	}
}
