// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"image/color"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/xyzsim/base/ordmap"
)

// Scene is the overall scenegraph containing solid, light, and camera
// nodes, along with the meshes, materials, and textures they use.
// It renders to its own offscreen frame image.
//
// Nodes are held in an arena and referenced by [NodeID] handles,
// with parent / child links between handles.
type Scene struct {

	// Name is the name of the scene.
	Name string

	// Background is the background color of rendered frames.
	Background color.RGBA

	// Width and Height are the size of rendered frames, in pixels.
	Width, Height int

	// Near and Far are the clipping distances for rendering and rays.
	Near, Far float32

	// FOV is the vertical field of view of cameras, in degrees.
	FOV float32

	// Ambient is the ambient light of the scene.
	Ambient LightBase

	// Camera is the active camera node, or [NoNode] for the default
	// camera at (0, 0, 10) looking down -Z.
	Camera NodeID

	// Meshes holds all the meshes, by name.
	Meshes ordmap.Map[string, *Mesh]

	// Materials holds all the live materials, by name.
	Materials ordmap.Map[string, *Material]

	// Textures holds all the textures, by name.
	Textures ordmap.Map[string, *Texture]

	// nodes is the node arena.
	nodes map[NodeID]*Node

	// roots are the top-level nodes, in order added.
	roots []NodeID

	// lastID is the most recently allocated node handle.
	lastID NodeID

	// frame is the most recently rendered frame.
	frame *image.RGBA

	// RenderMu is the mutex on rendering and the frame image.
	RenderMu sync.Mutex `json:"-"`
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Defaults()
	return sc
}

// Defaults sets default scene params (camera, bg = white)
func (sc *Scene) Defaults() {
	sc.Background = color.RGBA{255, 255, 255, 255}
	sc.Width = 480
	sc.Height = 360
	sc.Near = 0.1
	sc.Far = 1000
	sc.FOV = 60
	sc.Ambient.Set(0.5, LightColorMap[DirectSun])
	sc.nodes = make(map[NodeID]*Node)
}

// Node returns the node for the given handle, or nil.
func (sc *Scene) Node(id NodeID) *Node {
	if id == NoNode {
		return nil
	}
	return sc.nodes[id]
}

// Len returns the number of nodes in the scene.
func (sc *Scene) Len() int {
	return len(sc.nodes)
}

// Nodes returns all nodes in the order they were made.
func (sc *Scene) Nodes() []*Node {
	ids := make([]NodeID, 0, len(sc.nodes))
	for id := range sc.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	nds := make([]*Node, len(ids))
	for i, id := range ids {
		nds[i] = sc.nodes[id]
	}
	return nds
}

// Roots returns the top-level nodes.
func (sc *Scene) Roots() []NodeID {
	return slices.Clone(sc.roots)
}

func (sc *Scene) newNode(name string, typ NodeTypes) *Node {
	if sc.nodes == nil {
		sc.nodes = make(map[NodeID]*Node)
	}
	sc.lastID++
	nd := &Node{ID: sc.lastID, Name: name, Type: typ, Visible: true}
	nd.Pose.Defaults()
	sc.nodes[nd.ID] = nd
	sc.roots = append(sc.roots, nd.ID)
	return nd
}

// NewSolid adds a new solid of the given shape to the scene root,
// using the shared mesh for the shape and the shared default material.
func (sc *Scene) NewSolid(name string, shape Shapes) *Node {
	nd := sc.newNode(name, SolidNode)
	nd.Mesh = sc.MeshFor(shape)
	nd.Material = sc.DefaultMaterial()
	return nd
}

// NewCamera adds a new camera node to the scene root.
func (sc *Scene) NewCamera(name string) *Node {
	return sc.newNode(name, CameraNode)
}

// DeleteNode deletes the given node, disposing of any private material
// and the textures no longer used by any material.
// Children are moved to the scene root, keeping their world transform.
// Shared meshes and materials are never disposed.
func (sc *Scene) DeleteNode(id NodeID) {
	nd := sc.Node(id)
	if nd == nil {
		return
	}
	for _, kid := range slices.Clone(nd.Children) {
		sc.SetParent(kid, NoNode)
	}
	sc.unlink(nd)
	sc.disposeMaterial(nd)
	sc.DeleteUnusedTextures()
	if sc.Camera == id {
		sc.Camera = NoNode
	}
	delete(sc.nodes, id)
	slog.Debug("xyz: deleted node", "node", nd.Name)
}

// DeleteAll deletes all nodes, disposing of private materials and
// resetting the active camera.
func (sc *Scene) DeleteAll() {
	for _, nd := range sc.nodes {
		sc.disposeMaterial(nd)
	}
	clear(sc.nodes)
	sc.roots = nil
	sc.Camera = NoNode
	sc.DeleteUnusedTextures()
}

// SetCamera sets the active camera to the given camera node,
// or the default camera for [NoNode]. It returns false if the node
// is not a camera.
func (sc *Scene) SetCamera(id NodeID) bool {
	if id == NoNode {
		sc.Camera = NoNode
		return true
	}
	nd := sc.Node(id)
	if nd == nil || nd.Type != CameraNode {
		return false
	}
	sc.Camera = id
	return true
}
