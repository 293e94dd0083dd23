// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"cogentcore.org/xyzsim/math32"
	"cogentcore.org/xyzsim/xyz"
	"cogentcore.org/xyzsim/xyz/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFor(t *testing.T) {
	sc := math32.Vec3(2, 4, 6)
	bx := ShapeFor(xyz.Box, sc).(*physics.Box)
	assert.Equal(t, math32.Vec3(1, 2, 3), bx.Half)

	sp := ShapeFor(xyz.Sphere, sc).(*physics.Sphere)
	assert.Equal(t, float32(3), sp.Radius)

	cy := ShapeFor(xyz.Cylinder, sc).(*physics.Cylinder)
	assert.Equal(t, &physics.Cylinder{Height: 4, TopRad: 3, BotRad: 3}, cy)

	cn := ShapeFor(xyz.Cone, math32.Vec3(1, 2, 1)).(*physics.Cylinder)
	assert.Equal(t, float32(0.5), cn.BotRad)
	assert.Equal(t, float32(xyz.ConeTopRadius), cn.TopRad)
	assert.Equal(t, float32(2), cn.Height)

	rg := ShapeFor(xyz.Torus, math32.Vec3(2, 1, 1)).(*physics.Compound)
	require.Len(t, rg.Children, xyz.TorusSegments)
	assert.InDelta(t, 1, rg.Children[0].Offset.X, 1e-5)
	assert.InDelta(t, 0.4, rg.Children[0].Shape.(*physics.Sphere).Radius, 1e-5)

	neg := ShapeFor(xyz.Box, math32.Vec3(-2, 2, 2)).(*physics.Box)
	assert.Equal(t, math32.Vec3(1, 1, 1), neg.Half)
}

func TestBodySync(t *testing.T) {
	sc := xyz.NewScene("test")
	w := physics.NewWorld()
	grp := sc.NewSolid("group", xyz.Box)
	grp.Pose.Pos.Set(0, 10, 0)
	nd := sc.NewSolid("a", xyz.Sphere)
	require.NoError(t, sc.SetParent(nd.ID, grp.ID))
	nd.Pose.Pos.Set(1, 0, 0)

	bd := NewBody(w, sc, nd)
	require.NotNil(t, bd)
	assert.Equal(t, "a", bd.Name)
	assert.Equal(t, math32.Vec3(1, 10, 0), bd.State.Pos)
	assert.Nil(t, NewBody(w, sc, sc.NewCamera("cam")))

	bd.State.Pos.Set(2, 5, 0)
	UpdatePose(sc, nd, bd)
	assert.InDelta(t, 2, nd.Pose.Pos.X, 1e-5)
	assert.InDelta(t, -5, nd.Pose.Pos.Y, 1e-5)

	bd.State.LinVel.Set(1, 2, 3)
	bd.Sleep()
	nd.Pose.Pos.Set(0, 0, 0)
	UpdateBody(sc, nd, bd)
	assert.Equal(t, math32.Vec3(0, 10, 0), bd.State.Pos)
	assert.Equal(t, math32.Vector3{}, bd.State.LinVel)
	assert.False(t, bd.Sleeping)
}
