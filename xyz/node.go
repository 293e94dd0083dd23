// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
)

// NodeID is a handle to a node in a [Scene].
// Handles are never reused within a scene.
type NodeID int

// NoNode is the null node handle, which as a parent means the scene root.
const NoNode NodeID = 0

// NodeTypes are the types of nodes in a scene.
type NodeTypes int32

const (
	// SolidNode is a visible solid with a mesh and material.
	SolidNode NodeTypes = iota

	// LightNode is a point light.
	LightNode

	// CameraNode is a camera that frames can be rendered from.
	CameraNode
)

func (nt NodeTypes) String() string {
	switch nt {
	case SolidNode:
		return "Solid"
	case LightNode:
		return "Light"
	case CameraNode:
		return "Camera"
	}
	return fmt.Sprintf("NodeTypes(%d)", int32(nt))
}

// Node is one element of the scene graph: a solid, light, or camera,
// with a Pose relative to its parent.
type Node struct {

	// ID is the handle of this node in its scene.
	ID NodeID

	// Name is the name of the node.
	Name string

	// Type is the type of node.
	Type NodeTypes

	// Pose is the position, rotation, and scale relative to the parent.
	Pose Pose

	// Parent is the parent node, or [NoNode] for the scene root.
	Parent NodeID

	// Children are the child nodes, in the order added.
	Children []NodeID

	// Visible is whether the node is rendered and hit by rays.
	Visible bool

	// Mesh is the shape of a solid.
	Mesh *Mesh

	// Material is the material of a solid: either the shared
	// default material or a private one.
	Material *Material

	// Light has the light properties of a light node.
	Light LightBase
}

// IsSolid returns whether the node is a solid.
func (nd *Node) IsSolid() bool {
	return nd.Type == SolidNode
}

func (nd *Node) String() string {
	return fmt.Sprintf("%s %s (%d)", nd.Type, nd.Name, nd.ID)
}
