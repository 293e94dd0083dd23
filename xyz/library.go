// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"strconv"
	"strings"
)

// MeshFor returns the shared mesh for the given shape,
// making it the first time it is needed.
func (sc *Scene) MeshFor(shape Shapes) *Mesh {
	name := strings.ToLower(shape.String())
	if ms, ok := sc.Meshes.ValueByKeyTry(name); ok {
		return ms
	}
	ms := NewMesh(name, shape)
	ms.Shared = true
	sc.Meshes.Add(name, ms)
	return ms
}

// MeshByName returns the mesh of the given name, or nil.
func (sc *Scene) MeshByName(name string) *Mesh {
	ms, _ := sc.Meshes.ValueByKeyTry(name)
	return ms
}

// LiveMeshes returns the number of meshes currently held by the scene.
func (sc *Scene) LiveMeshes() int {
	return sc.Meshes.Len()
}

// DefaultMaterial returns the shared default material,
// making it the first time it is needed.
func (sc *Scene) DefaultMaterial() *Material {
	if mt, ok := sc.Materials.ValueByKeyTry(DefaultMaterialName); ok {
		return mt
	}
	mt := NewMaterial(DefaultMaterialName)
	mt.Shared = true
	sc.Materials.Add(DefaultMaterialName, mt)
	return mt
}

// PrivateMaterial returns a material owned only by the given solid,
// cloning its current shared material the first time. It returns nil
// if the node is not a solid.
func (sc *Scene) PrivateMaterial(id NodeID) *Material {
	nd := sc.Node(id)
	if nd == nil || !nd.IsSolid() {
		return nil
	}
	if !nd.Material.Shared {
		return nd.Material
	}
	mt := nd.Material.Clone(nd.Name)
	nd.Material = mt
	sc.Materials.Add(materialKey(nd), mt)
	return mt
}

// LiveMaterials returns the number of materials currently held by the scene.
func (sc *Scene) LiveMaterials() int {
	return sc.Materials.Len()
}

// disposeMaterial removes the given node's material if it is private.
func (sc *Scene) disposeMaterial(nd *Node) {
	if nd.Material == nil || nd.Material.Shared {
		return
	}
	key := materialKey(nd)
	if mt, ok := sc.Materials.ValueByKeyTry(key); ok && mt == nd.Material {
		sc.Materials.DeleteKey(key)
	}
	nd.Material = nil
}

func materialKey(nd *Node) string {
	return nd.Name + "#" + strconv.Itoa(int(nd.ID))
}
