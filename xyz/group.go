// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"slices"

	"cogentcore.org/xyzsim/math32"
)

// SetParent moves the given node under the given parent, or to the
// scene root for [NoNode], keeping its world transform unchanged.
// It returns an error if either node does not exist or if the move
// would make a node its own ancestor.
func (sc *Scene) SetParent(id, parent NodeID) error {
	nd := sc.Node(id)
	if nd == nil {
		return fmt.Errorf("xyz.Scene.SetParent: node %d not found", id)
	}
	if parent != NoNode {
		if sc.Node(parent) == nil {
			return fmt.Errorf("xyz.Scene.SetParent: parent %d not found", parent)
		}
		if sc.IsAncestor(id, parent) {
			return fmt.Errorf("xyz.Scene.SetParent: %v is an ancestor of %v", nd, sc.Node(parent))
		}
	}
	if nd.Parent == parent {
		return nil
	}
	world := sc.WorldMatrix(id)
	sc.unlink(nd)
	nd.Parent = parent
	if pn := sc.Node(parent); pn != nil {
		pn.Children = append(pn.Children, id)
	} else {
		sc.roots = append(sc.roots, id)
	}
	local := world
	if parent != NoNode {
		local = sc.WorldMatrix(parent).Inverse().Mul(world)
	}
	nd.Pose.SetMatrix(local)
	return nil
}

// unlink removes the node from its parent's children or the roots.
func (sc *Scene) unlink(nd *Node) {
	if pn := sc.Node(nd.Parent); pn != nil {
		pn.Children = slices.DeleteFunc(pn.Children, func(c NodeID) bool { return c == nd.ID })
	} else {
		sc.roots = slices.DeleteFunc(sc.roots, func(c NodeID) bool { return c == nd.ID })
	}
	nd.Parent = NoNode
}

// IsAncestor returns whether anc is the given node or one of its ancestors.
func (sc *Scene) IsAncestor(anc, id NodeID) bool {
	for cur := id; cur != NoNode; {
		if cur == anc {
			return true
		}
		nd := sc.Node(cur)
		if nd == nil {
			return false
		}
		cur = nd.Parent
	}
	return false
}

// WorldMatrix returns the world transform matrix of the given node,
// combining its local Pose with those of all its parents.
func (sc *Scene) WorldMatrix(id NodeID) *math32.Matrix4 {
	nd := sc.Node(id)
	if nd == nil {
		return math32.Identity4()
	}
	local := nd.Pose.Matrix()
	if nd.Parent == NoNode {
		return local
	}
	return sc.WorldMatrix(nd.Parent).Mul(local)
}

// ParentWorldMatrix returns the world matrix of the parent of the node.
func (sc *Scene) ParentWorldMatrix(id NodeID) *math32.Matrix4 {
	nd := sc.Node(id)
	if nd == nil {
		return math32.Identity4()
	}
	return sc.WorldMatrix(nd.Parent)
}

// WorldPos returns the current world position of the node.
func (sc *Scene) WorldPos(id NodeID) math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(sc.WorldMatrix(id))
	return pos
}

// WorldQuat returns the current world rotation of the node.
func (sc *Scene) WorldQuat(id NodeID) math32.Quat {
	_, quat, _ := sc.WorldMatrix(id).Decompose()
	return quat
}

// WorldScale returns the current world scale of the node.
func (sc *Scene) WorldScale(id NodeID) math32.Vector3 {
	_, _, scale := sc.WorldMatrix(id).Decompose()
	return scale
}

// WorldForward returns the world direction of the node's -Z forward axis.
func (sc *Scene) WorldForward(id NodeID) math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(sc.WorldQuat(id)).Normal()
}

// SetWorldPose sets the local Pos and Quat of the node so that its
// world position and rotation match the given ones.
// The local Scale is unchanged.
func (sc *Scene) SetWorldPose(id NodeID, pos math32.Vector3, quat math32.Quat) {
	nd := sc.Node(id)
	if nd == nil {
		return
	}
	if nd.Parent == NoNode {
		nd.Pose.Pos = pos
		nd.Pose.Quat = quat
		return
	}
	pw := sc.WorldMatrix(nd.Parent)
	ppos, pquat, pscale := pw.Decompose()
	rel := pos.Sub(ppos).MulQuat(pquat.Inverse())
	if !pscale.IsNil() {
		rel = rel.Div(pscale)
	}
	nd.Pose.Pos = rel
	nd.Pose.Quat = pquat.Inverse().Mul(quat).Normal()
}
